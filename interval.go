package validex

import (
	"cmp"
	"fmt"
)

// Interval is a possibly open-ended range over an ordered type.
// The zero value is the unbounded interval.
type Interval[T cmp.Ordered] struct {
	lo, hi       T
	hasLo, hasHi bool
	exclusiveHi  bool
}

// Between returns the closed interval lo..=hi.
func Between[T cmp.Ordered](lo, hi T) Interval[T] {
	return Interval[T]{lo: lo, hi: hi, hasLo: true, hasHi: true}
}

// HalfOpen returns lo..hi, which excludes hi.
func HalfOpen[T cmp.Ordered](lo, hi T) Interval[T] {
	return Interval[T]{lo: lo, hi: hi, hasLo: true, hasHi: true, exclusiveHi: true}
}

// AtLeast returns lo.. with no upper bound.
func AtLeast[T cmp.Ordered](lo T) Interval[T] {
	return Interval[T]{lo: lo, hasLo: true}
}

// AtMost returns ..=hi with no lower bound.
func AtMost[T cmp.Ordered](hi T) Interval[T] {
	return Interval[T]{hi: hi, hasHi: true}
}

// Below returns ..hi, which excludes hi.
func Below[T cmp.Ordered](hi T) Interval[T] {
	return Interval[T]{hi: hi, hasHi: true, exclusiveHi: true}
}

// Unbounded returns the interval containing every ordered value. NaN is not
// ordered, so even this interval rejects it; use a Predicate to accept NaN.
func Unbounded[T cmp.Ordered]() Interval[T] {
	return Interval[T]{}
}

// Lower returns the lower bound and whether there is one.
func (i Interval[T]) Lower() (T, bool) { return i.lo, i.hasLo }

// Upper returns the upper bound, whether there is one and whether it is excluded.
func (i Interval[T]) Upper() (bound T, ok, exclusive bool) { return i.hi, i.hasHi, i.exclusiveHi }

// Contains reports whether v lies inside the interval.
// Unordered values such as NaN are never contained, even in the unbounded interval.
func (i Interval[T]) Contains(v T) bool {
	if v != v { // NaN
		return false
	}
	if i.hasLo && v < i.lo {
		return false
	}
	if i.hasHi {
		if i.exclusiveHi {
			return v < i.hi
		}
		return v <= i.hi
	}
	return true
}

// String renders the interval in range notation: "18..=65", "..20", "3..".
func (i Interval[T]) String() string {
	var lo, hi string
	if i.hasLo {
		lo = fmt.Sprint(i.lo)
	}
	if i.hasHi {
		hi = fmt.Sprint(i.hi)
		if !i.exclusiveHi {
			hi = "=" + hi
		}
	}
	return lo + ".." + hi
}
