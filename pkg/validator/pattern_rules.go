package validator

import (
	"fmt"
	"regexp"
)

var (
	slugRegex         = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	phoneRegex        = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
)

// Matches accepts strings matching re. description names the expected shape
// in the error message.
func Matches[S ~string](re *regexp.Regexp, description string) Rule[S] {
	if re == nil {
		panic("validator: Matches requires a non-nil regexp")
	}
	return newRule("pattern", fmt.Sprintf("must match %s pattern", description), ErrInvalidFormat, func(v S) bool {
		return re.MatchString(string(v))
	})
}

// Slug accepts lowercase alphanumeric words separated by single hyphens.
func Slug[S ~string]() Rule[S] {
	return newRule("slug", "must be a valid slug", ErrInvalidFormat, func(v S) bool {
		return slugRegex.MatchString(string(v))
	})
}

// Alphanumeric accepts non-empty strings of ASCII letters and digits.
func Alphanumeric[S ~string]() Rule[S] {
	return newRule("alphanumeric", "must contain only letters and numbers", ErrInvalidFormat, func(v S) bool {
		return alphanumericRegex.MatchString(string(v))
	})
}

// Phone accepts E.164 international phone numbers such as +1234567890.
func Phone[S ~string]() Rule[S] {
	return newRule("phone", "must be a valid phone number", ErrInvalidFormat, func(v S) bool {
		return phoneRegex.MatchString(string(v))
	})
}
