package validator

import (
	"fmt"
	"slices"
	"strings"
)

// OneOf accepts only the listed values.
func OneOf[T comparable](allowed ...T) Rule[T] {
	allowed = slices.Clone(allowed)
	return newRule("one_of", fmt.Sprintf("must be one of: %v", allowed), ErrInvalidValue, func(v T) bool {
		return slices.Contains(allowed, v)
	})
}

// NoneOf rejects the listed values.
func NoneOf[T comparable](forbidden ...T) Rule[T] {
	forbidden = slices.Clone(forbidden)
	return newRule("none_of", fmt.Sprintf("must not be one of: %v", forbidden), ErrInvalidValue, func(v T) bool {
		return !slices.Contains(forbidden, v)
	})
}

// OneOfFold is OneOf for strings compared case-insensitively.
func OneOfFold[S ~string](allowed ...string) Rule[S] {
	allowed = slices.Clone(allowed)
	return newRule("one_of", fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")), ErrInvalidValue, func(v S) bool {
		return slices.ContainsFunc(allowed, func(a string) bool {
			return strings.EqualFold(a, string(v))
		})
	})
}
