package validex

import (
	"fmt"
	"slices"
)

// NotRule inverts a Verifier.
type NotRule[T any] struct {
	inner Verifier[T]
}

// Not passes when v fails. Its error wraps the description v gives of what
// matched, so v.Error must be total.
//
// Not(Any(a, b)) verifies like All(Not(a), Not(b)), and Not(All(a, b)) like
// Any(Not(a), Not(b)).
func Not[T any](v Verifier[T]) NotRule[T] {
	if v == nil {
		panic("validex: Not requires a non-nil rule")
	}
	return NotRule[T]{inner: v}
}

func (r NotRule[T]) Verify(v T) bool {
	return !r.inner.Verify(v)
}

func (r NotRule[T]) Error(v T) error {
	return &UnexpectedError{Err: errorOf(r.inner, v)}
}

func (r NotRule[T]) Check(v T) error {
	return check[T](r, v)
}

// AllRule passes when every entry passes. Entries run in order and evaluation
// stops at the first failure.
type AllRule[T any] struct {
	rules []Verifier[T]
}

// All builds a conjunction. It panics when called without rules or with a
// nil rule.
func All[T any](rules ...Verifier[T]) AllRule[T] {
	return AllRule[T]{rules: verifiers("All", rules)}
}

func (r AllRule[T]) Verify(v T) bool {
	for _, rule := range r.rules {
		if !rule.Verify(v) {
			return false
		}
	}
	return true
}

// Error returns the error of the first failing entry. When every entry passes
// it returns the last entry's error.
func (r AllRule[T]) Error(v T) error {
	last := len(r.rules) - 1
	for _, rule := range r.rules[:last] {
		if !rule.Verify(v) {
			return errorOf(rule, v)
		}
	}
	return errorOf(r.rules[last], v)
}

func (r AllRule[T]) Check(v T) error {
	for _, rule := range r.rules {
		if !rule.Verify(v) {
			return errorOf(rule, v)
		}
	}
	return nil
}

// AnyRule passes when at least one entry passes. When every entry fails the
// error is an Errors aggregate with one entry per rule, in order.
type AnyRule[T any] struct {
	rules []Verifier[T]
}

// Any builds a disjunction. It panics when called without rules or with a nil
// rule.
func Any[T any](rules ...Verifier[T]) AnyRule[T] {
	return AnyRule[T]{rules: verifiers("Any", rules)}
}

func (r AnyRule[T]) Verify(v T) bool {
	for _, rule := range r.rules {
		if rule.Verify(v) {
			return true
		}
	}
	return false
}

func (r AnyRule[T]) Error(v T) error {
	errs := make(Errors, len(r.rules))
	for i, rule := range r.rules {
		errs[i] = errorOf(rule, v)
	}
	return errs
}

func (r AnyRule[T]) Check(v T) error {
	return check[T](r, v)
}

// MaybeRule applies a Checker to an optional value.
type MaybeRule[T any] struct {
	inner Checker[T]
}

// Maybe skips nil values and checks the pointed-to value otherwise.
func Maybe[T any](c Checker[T]) MaybeRule[T] {
	if c == nil {
		panic("validex: Maybe requires a non-nil rule")
	}
	return MaybeRule[T]{inner: c}
}

func (r MaybeRule[T]) Check(v *T) error {
	if v == nil {
		return nil
	}
	return r.inner.Check(*v)
}

// SeqRule runs plain Checkers in order and returns the first error.
// Unlike All it accepts any Checker, including CheckFunc values.
type SeqRule[T any] struct {
	checks []Checker[T]
}

// Seq builds an ordered sequence. It panics when called without checks or
// with a nil check.
func Seq[T any](checks ...Checker[T]) SeqRule[T] {
	if len(checks) == 0 {
		panic("validex: Seq requires at least one check")
	}
	for i, c := range checks {
		if c == nil {
			panic(fmt.Sprintf("validex: Seq check %d is nil", i))
		}
	}
	return SeqRule[T]{checks: slices.Clone(checks)}
}

func (r SeqRule[T]) Check(v T) error {
	for _, c := range r.checks {
		if err := c.Check(v); err != nil {
			return err
		}
	}
	return nil
}

func verifiers[T any](name string, rules []Verifier[T]) []Verifier[T] {
	if len(rules) == 0 {
		panic("validex: " + name + " requires at least one rule")
	}
	for i, rule := range rules {
		if rule == nil {
			panic(fmt.Sprintf("validex: %s rule %d is nil", name, i))
		}
	}
	return slices.Clone(rules)
}
