package gen

import "errors"

var (
	// ErrParse is returned when the input is not valid Go source.
	ErrParse = errors.New("failed to parse source file")

	// ErrMalformedTag is returned when a check tag cannot be split or parsed.
	ErrMalformedTag = errors.New("malformed check tag")

	// ErrNoTaggedTypes is returned when the input declares no tagged struct.
	ErrNoTaggedTypes = errors.New("no tagged struct types")

	// ErrDrift is returned by Check when the file on disk differs from the
	// regenerated output.
	ErrDrift = errors.New("generated file is out of date")
)
