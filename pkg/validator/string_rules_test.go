package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validex/pkg/validator"
)

func TestRequired(t *testing.T) {
	rule := validator.Required[string]()

	assert.NoError(t, rule.Check("value"))
	for _, value := range []string{"", "   ", "\t\n"} {
		err := rule.Check(value)
		require.Error(t, err, "value %q", value)
		assert.Equal(t, "field is required", err.Error())
		assert.ErrorIs(t, err, validator.ErrFieldRequired)
		assert.Equal(t, "required", validator.Code(err))
	}
}

func TestASCII(t *testing.T) {
	rule := validator.ASCII[string]()
	assert.NoError(t, rule.Check("Alice"))
	assert.NoError(t, rule.Check(""))
	assert.Error(t, rule.Check("Zoë"))
}

func TestNoWhitespace(t *testing.T) {
	rule := validator.NoWhitespace[string]()
	assert.NoError(t, rule.Check("personal-blog.net"))
	assert.Error(t, rule.Check("personal blog"))
	assert.Error(t, rule.Check("tab\there"))
}

func TestPrintable(t *testing.T) {
	rule := validator.Printable[string]()
	assert.NoError(t, rule.Check("Hello, world!"))
	assert.Error(t, rule.Check("bell\a"))
}

func TestViolation(t *testing.T) {
	v := &validator.Violation{Code: "email", Message: "must be a valid email address", Err: validator.ErrInvalidFormat}
	assert.Equal(t, "must be a valid email address", v.Error())
	assert.True(t, errors.Is(v, validator.ErrInvalidFormat))
	assert.Equal(t, "email", validator.Code(v))
	assert.Equal(t, "", validator.Code(errors.New("plain")))
	assert.Equal(t, "", validator.Code(nil))
}
