package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor pulls one attribute out of a record's context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// ContextHandler adds attributes extracted from the record's context before
// passing the record on. An extracted attribute is dropped when its key is
// already present, either on the record or from logger.With at the current
// group level, so an explicit file attribute wins over the context one.
type ContextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
	// keys set through WithAttrs since the last WithGroup.
	preset map[string]struct{}
}

// NewContextHandler wraps next. Nil extractors are dropped; with none left,
// next is returned unwrapped.
func NewContextHandler(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	if len(clean) == 0 {
		return next
	}
	return &ContextHandler{next: next, extractors: clean}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range h.extractors {
		attr, ok := ex(ctx)
		if !ok || attr.Key == "" || h.has(rec, attr.Key) {
			continue
		}
		rec.AddAttrs(attr)
	}
	return h.next.Handle(ctx, rec)
}

func (h *ContextHandler) has(rec slog.Record, key string) bool {
	if _, ok := h.preset[key]; ok {
		return true
	}
	found := false
	rec.Attrs(func(a slog.Attr) bool {
		found = a.Key == key
		return !found
	})
	return found
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	preset := make(map[string]struct{}, len(h.preset)+len(attrs))
	for k := range h.preset {
		preset[k] = struct{}{}
	}
	for _, a := range attrs {
		preset[a.Key] = struct{}{}
	}
	return &ContextHandler{
		next:       h.next.WithAttrs(attrs),
		extractors: h.extractors,
		preset:     preset,
	}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &ContextHandler{
		next:       h.next.WithGroup(name),
		extractors: h.extractors,
	}
}
