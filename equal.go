package validex

// EqualRule requires a value equal to a fixed literal.
type EqualRule[T comparable] struct {
	expected T
}

// Eq builds an EqualRule that accepts only expected.
func Eq[T comparable](expected T) EqualRule[T] {
	return EqualRule[T]{expected: expected}
}

func (r EqualRule[T]) Verify(v T) bool {
	return v == r.expected
}

func (r EqualRule[T]) Error(v T) error {
	return &EqualError[T]{Actual: v, Expected: r.expected}
}

func (r EqualRule[T]) Check(v T) error {
	return check[T](r, v)
}
