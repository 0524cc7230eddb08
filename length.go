package validex

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// LengthRule checks that the length of a value lies inside an interval.
// How length is measured depends on the constructor.
type LengthRule[T any] struct {
	interval Interval[int]
	measure  func(T) int
}

// Length measures strings in bytes.
func Length[S ~string](iv Interval[int]) LengthRule[S] {
	return LengthRule[S]{interval: iv, measure: func(s S) int { return len(s) }}
}

// CharLength measures strings in Unicode code points after NFC normalisation,
// so "é" counts as one character whether it arrived composed or decomposed.
func CharLength[S ~string](iv Interval[int]) LengthRule[S] {
	return LengthRule[S]{interval: iv, measure: func(s S) int {
		return utf8.RuneCountInString(norm.NFC.String(string(s)))
	}}
}

// SliceLength measures slices by element count.
func SliceLength[S ~[]E, E any](iv Interval[int]) LengthRule[S] {
	return LengthRule[S]{interval: iv, measure: func(s S) int { return len(s) }}
}

// MapLength measures maps by entry count.
func MapLength[M ~map[K]V, K comparable, V any](iv Interval[int]) LengthRule[M] {
	return LengthRule[M]{interval: iv, measure: func(m M) int { return len(m) }}
}

// LengthOf measures any type exposing a Len method.
func LengthOf[T interface{ Len() int }](iv Interval[int]) LengthRule[T] {
	return LengthRule[T]{interval: iv, measure: func(v T) int { return v.Len() }}
}

func (r LengthRule[T]) Verify(v T) bool {
	return r.interval.Contains(r.measure(v))
}

func (r LengthRule[T]) Error(v T) error {
	return &LengthError{Len: r.measure(v), Range: r.interval}
}

func (r LengthRule[T]) Check(v T) error {
	return check[T](r, v)
}
