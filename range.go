package validex

import "cmp"

// RangeRule checks that a value lies inside an interval.
type RangeRule[T cmp.Ordered] struct {
	interval Interval[T]
}

// Range builds a RangeRule over iv.
//
//	validex.Range(validex.Between(18, 65))
func Range[T cmp.Ordered](iv Interval[T]) RangeRule[T] {
	return RangeRule[T]{interval: iv}
}

func (r RangeRule[T]) Verify(v T) bool {
	return r.interval.Contains(v)
}

func (r RangeRule[T]) Error(v T) error {
	return &RangeError[T]{Value: v, Range: r.interval}
}

func (r RangeRule[T]) Check(v T) error {
	return check[T](r, v)
}
