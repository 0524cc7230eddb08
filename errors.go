package validex

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyErrors is reported by an Errors value that holds no entries.
// Aggregates produced by this package are never empty.
var ErrEmptyErrors = errors.New("validex: empty error aggregate")

// ErrRejected stands in for the error of a Verifier whose Error returned nil
// for a value it rejected.
var ErrRejected = errors.New("rejected")

// RangeError reports a value outside its allowed interval.
type RangeError[T cmp.Ordered] struct {
	Value T
	Range Interval[T]
}

func (e *RangeError[T]) Error() string {
	return fmt.Sprintf("expected value %v in %v", e.Value, e.Range)
}

// LengthError reports a length outside its allowed interval.
type LengthError struct {
	Len   int
	Range Interval[int]
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("expected length %d in %v", e.Len, e.Range)
}

// EqualError reports a value that differs from the expected literal.
//
// The plain form only names the expectation. Format with %+v to include the
// actual value: "expected 100, found 45".
type EqualError[T any] struct {
	Actual   T
	Expected T
}

func (e *EqualError[T]) Error() string {
	return fmt.Sprintf("expected %v", e.Expected)
}

// Format implements fmt.Formatter so that %+v renders the verbose form.
func (e *EqualError[T]) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'v' && f.Flag('+'):
		fmt.Fprintf(f, "expected %v, found %v", e.Expected, e.Actual)
	case verb == 'q':
		fmt.Fprintf(f, "%q", e.Error())
	default:
		fmt.Fprint(f, e.Error())
	}
}

// UnexpectedError is returned by Not when its inner validator matched.
// Err describes what matched.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string {
	return "Not: " + e.Err.Error()
}

func (e *UnexpectedError) Unwrap() error { return e.Err }

// PredicateError reports a value rejected by a named predicate.
type PredicateError[T any] struct {
	Name  string
	Value T
}

func (e *PredicateError[T]) Error() string {
	return fmt.Sprintf("expected %v to satisfy %s", e.Value, e.Name)
}

// FieldError attaches a field name to the error of the field's checks.
type FieldError struct {
	Key string
	Err error
}

// NewFieldError builds a FieldError for key.
func NewFieldError(key string, err error) *FieldError {
	return &FieldError{Key: key, Err: err}
}

func (e *FieldError) Error() string {
	return e.Key + " -> " + e.Err.Error()
}

func (e *FieldError) Unwrap() error { return e.Err }

// MarshalJSON renders the error as {"field": key, "error": message}.
func (e *FieldError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Field string `json:"field"`
		Error string `json:"error"`
	}{
		Field: e.Key,
		Error: e.Err.Error(),
	})
}

// Errors is the ordered aggregate produced by Any when every branch failed.
type Errors []error

func (es Errors) Error() string {
	if len(es) == 0 {
		return ErrEmptyErrors.Error()
	}
	parts := make([]string, len(es))
	for i, err := range es {
		if err == nil {
			err = ErrRejected
		}
		parts[i] = err.Error()
	}
	return strings.Join(parts, "; ")
}

// Unwrap exposes every entry to errors.Is and errors.As.
func (es Errors) Unwrap() []error {
	return es
}

// AsFieldError extracts the first FieldError from err's chain.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
