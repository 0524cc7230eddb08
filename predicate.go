package validex

// PredicateRule is a Verifier assembled from a boolean test and an error
// constructor. It is how ad hoc rules join Not, All and Any.
type PredicateRule[T any] struct {
	test func(T) bool
	fail func(T) error
}

// Predicate builds a Verifier from test and fail. fail should return a non-nil
// error for every input, including inputs that pass test; a nil result is
// reported as ErrRejected. It panics if either function is nil.
func Predicate[T any](test func(v T) bool, fail func(v T) error) PredicateRule[T] {
	if test == nil || fail == nil {
		panic("validex: Predicate requires non-nil test and fail functions")
	}
	return PredicateRule[T]{test: test, fail: fail}
}

// Satisfies builds a Verifier that reports failures as PredicateError with name.
//
//	even := validex.Satisfies("even", func(n int) bool { return n%2 == 0 })
func Satisfies[T any](name string, test func(v T) bool) PredicateRule[T] {
	return Predicate(test, func(v T) error {
		return &PredicateError[T]{Name: name, Value: v}
	})
}

func (r PredicateRule[T]) Verify(v T) bool {
	return r.test(v)
}

func (r PredicateRule[T]) Error(v T) error {
	if err := r.fail(v); err != nil {
		return err
	}
	return ErrRejected
}

func (r PredicateRule[T]) Check(v T) error {
	return check[T](r, v)
}
