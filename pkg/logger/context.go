package logger

import (
	"context"
	"log/slog"
)

type fileKey struct{}

// WithFileContext returns a context carrying the source file being processed.
// Loggers built with WithFileFromContext add it to every record.
func WithFileContext(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, fileKey{}, path)
}

// FileFromContext returns the path stored by WithFileContext.
func FileFromContext(ctx context.Context) (string, bool) {
	path, ok := ctx.Value(fileKey{}).(string)
	return path, ok && path != ""
}

// WithFileFromContext registers an extractor that logs the file stored in the
// context under the "file" key.
func WithFileFromContext() Option {
	return WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
		path, ok := FileFromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return File(path), true
	})
}
