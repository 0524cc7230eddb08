package validator

import (
	"strings"
	"unicode"
)

// Required rejects strings that are empty after trimming whitespace.
func Required[S ~string]() Rule[S] {
	return newRule("required", "field is required", ErrFieldRequired, func(v S) bool {
		return strings.TrimSpace(string(v)) != ""
	})
}

// ASCII accepts strings made only of ASCII characters.
func ASCII[S ~string]() Rule[S] {
	return newRule("ascii", "must contain only ASCII characters", ErrInvalidFormat, func(v S) bool {
		for _, r := range string(v) {
			if r > unicode.MaxASCII {
				return false
			}
		}
		return true
	})
}

// NoWhitespace rejects strings containing any Unicode whitespace.
func NoWhitespace[S ~string]() Rule[S] {
	return newRule("no_whitespace", "must not contain whitespace", ErrInvalidFormat, func(v S) bool {
		return !strings.ContainsFunc(string(v), unicode.IsSpace)
	})
}

// Printable rejects strings with control or other non-printable characters.
func Printable[S ~string]() Rule[S] {
	return newRule("printable", "must contain only printable characters", ErrInvalidFormat, func(v S) bool {
		for _, r := range string(v) {
			if !unicode.IsPrint(r) {
				return false
			}
		}
		return true
	})
}
