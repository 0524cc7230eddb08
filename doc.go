// Package validex provides composable, type-safe field validation for Go structs.
//
// A record binds each field to one or more checks. Checks are small values that
// implement Checker (check and report in one call) and usually Verifier (a
// predicate plus a lazily built error). Combinators compose them into trees that
// are built once and reused; nothing is resolved through reflection.
//
// Key Features:
//
//   - Generic leaf rules: Range, Length, CharLength, SliceLength, MapLength, Eq, Satisfies
//   - Boolean combinators: Not, All, Any, Maybe, plus the plain sequence Seq
//   - Heterogeneous composition: one All may hold a range, a literal and a predicate
//   - Structured errors that keep the leaf type reachable through errors.As
//   - Fail-fast record validation that names the failing field
//
// Basic Usage:
//
//	type Signup struct {
//		Age  int
//		Name string
//	}
//
//	func (s Signup) Validate() error {
//		return validex.Validate(
//			validex.Bind("age", validex.Range(validex.Between(18, 65)), s.Age),
//			validex.Bind("name", validex.Length[string](validex.Between(3, 64)), s.Name),
//		)
//	}
//
//	err := Signup{Age: 17, Name: "Alice"}.Validate()
//	// age -> expected value 17 in 18..=65
//
// Methods like the one above can be generated from struct tags with
// "validex gen" (see cmd/validex).
//
// # Combinators
//
// All runs its rules in order and stops at the first failure, returning that
// rule's error. Any stops at the first success; when every rule fails it returns
// an Errors aggregate holding one error per rule, in declaration order. Not
// inverts a Verifier and wraps what matched in an UnexpectedError. Maybe accepts
// a pointer and skips nil. Seq is an ordered list of arbitrary Checkers,
// including plain functions wrapped with Func.
//
//	id := validex.Any[int](
//		validex.Range(validex.Between(10, 20)),
//		validex.All[int](validex.Not[int](validex.Eq(45)), validex.Range(validex.Between(40, 50))),
//		validex.Eq(100),
//	)
//
// De Morgan's laws hold for Verify:
//
//	Not(Any(a, b)) == All(Not(a), Not(b))
//	Not(All(a, b)) == Any(Not(a), Not(b))
//
// # Errors
//
// Every failure is an ordinary error. Field wraps it in a FieldError rendered as
// "<field> -> <cause>". Leaf errors (RangeError, LengthError, EqualError,
// PredicateError) and wrappers (UnexpectedError, Errors) implement Unwrap, so
// errors.As finds the leaf that failed:
//
//	var re *validex.RangeError[int]
//	if errors.As(err, &re) {
//		fmt.Println(re.Value, re.Range)
//	}
//
// # Concurrency
//
// Rules hold configuration only and never mutate it, so a rule tree can be
// shared by any number of goroutines.
package validex
