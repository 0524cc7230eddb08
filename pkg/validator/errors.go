package validator

import "errors"

// Rule categories. Every Violation unwraps to one of these.
var (
	// ErrFieldRequired is returned when a value is empty.
	ErrFieldRequired = errors.New("field is required")

	// ErrInvalidValue is returned when a value is not among the allowed ones.
	ErrInvalidValue = errors.New("invalid value")

	// ErrOutOfRange is returned when a numeric or date value is outside its bounds.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidFormat is returned when a string does not have the expected shape.
	ErrInvalidFormat = errors.New("invalid format")
)

// Violation is the error produced by every rule in this package.
type Violation struct {
	// Code is a stable rule identifier such as "email" or "uuid".
	Code string
	// Message is the human-readable description.
	Message string
	// Err is the rule category.
	Err error
}

func (v *Violation) Error() string {
	return v.Message
}

func (v *Violation) Unwrap() error {
	return v.Err
}

// Code returns the rule code of the first Violation in err's chain, or "" if
// there is none.
func Code(err error) string {
	var v *Violation
	if errors.As(err, &v) {
		return v.Code
	}
	return ""
}
