package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a group attribute.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups non-nil errors under "errors", keyed by their index.
// Returns an empty attribute when every error is nil.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error returns an "error" attribute, or an empty one for a nil error.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func File(path string) slog.Attr {
	return slog.String("file", path)
}

func Struct(name string) slog.Attr {
	return slog.String("struct", name)
}

// Field is the name of a validated struct field or binding key.
func Field(key string) slog.Attr {
	return slog.String("field", key)
}

func Count(name string, n int) slog.Attr {
	return slog.Int(name, n)
}

func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
