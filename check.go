package validex

// Checker runs a validate-and-report pass over one value.
// A nil error means the value passed.
type Checker[T any] interface {
	Check(v T) error
}

// Verifier splits a check into a predicate and an error constructor.
//
// Error is only called when a caller needs a diagnostic, so expensive
// descriptions are never built for passing values. Error must be total and
// deterministic: it describes what would be reported for v even when Verify(v)
// is true. Combinators such as Not rely on that.
type Verifier[T any] interface {
	Verify(v T) bool
	Error(v T) error
}

// CheckFunc adapts a plain function to the Checker interface.
type CheckFunc[T any] func(v T) error

// Check calls f(v).
func (f CheckFunc[T]) Check(v T) error {
	return f(v)
}

// Func wraps fn as a Checker. It panics if fn is nil.
func Func[T any](fn func(v T) error) CheckFunc[T] {
	if fn == nil {
		panic("validex: Func requires a non-nil function")
	}
	return CheckFunc[T](fn)
}

// check is the bridge every Verifier in this package uses for its Check method.
func check[T any](v Verifier[T], x T) error {
	if !v.Verify(x) {
		return errorOf(v, x)
	}
	return nil
}

// errorOf returns v.Error(x), or ErrRejected when a misbehaving Verifier
// returns nil.
func errorOf[T any](v Verifier[T], x T) error {
	if err := v.Error(x); err != nil {
		return err
	}
	return ErrRejected
}
