package validator

import "github.com/dmitrymomot/validex"

// Numeric is the constraint used by the numeric helpers.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rule is the shape returned by every helper: a validex Verifier that also
// implements Checker, so it composes under Not, All and Any.
type Rule[T any] = validex.PredicateRule[T]

// newRule builds a Rule whose failures are Violations with a fixed message.
func newRule[T any](code, message string, category error, test func(T) bool) Rule[T] {
	return validex.Predicate(test, func(T) error {
		return &Violation{Code: code, Message: message, Err: category}
	})
}
