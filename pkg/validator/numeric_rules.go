package validator

import "fmt"

// NonZero rejects the zero value of any comparable type.
func NonZero[T comparable]() Rule[T] {
	return newRule("required", "field is required", ErrFieldRequired, func(v T) bool {
		var zero T
		return v != zero
	})
}

// Positive accepts values greater than zero.
func Positive[T Numeric]() Rule[T] {
	return newRule("positive", "must be greater than zero", ErrOutOfRange, func(v T) bool {
		return v > 0
	})
}

// NonNegative accepts zero and positive values.
func NonNegative[T Numeric]() Rule[T] {
	return newRule("non_negative", "must not be negative", ErrOutOfRange, func(v T) bool {
		return v >= 0
	})
}

// MultipleOf accepts integers divisible by n. It panics if n is zero.
func MultipleOf[T ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](n T) Rule[T] {
	if n == 0 {
		panic("validator: MultipleOf requires a non-zero divisor")
	}
	return newRule("multiple_of", fmt.Sprintf("must be a multiple of %d", n), ErrInvalidValue, func(v T) bool {
		return v%n == 0
	})
}
