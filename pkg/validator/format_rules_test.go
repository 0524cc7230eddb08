package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validex/pkg/validator"
)

func TestEmail(t *testing.T) {
	rule := validator.Email[string]()

	t.Run("valid emails", func(t *testing.T) {
		validEmails := []string{
			"test@example.com",
			"user.name@domain.co.uk",
			"user+tag@example.org",
			"alice.smith@example.com",
			"1234567890@example.com",
			"email@example-one.com",
			"_______@example.com",
		}

		for _, email := range validEmails {
			assert.NoError(t, rule.Check(email), "Email should be valid: %s", email)
		}
	})

	t.Run("invalid emails", func(t *testing.T) {
		invalidEmails := []string{
			"",
			"   ",
			"plainaddress",
			"@missingdomain.com",
			"missing@.com",
			"missing@domain",
			"spaces @domain.com",
			"email@domain..com",
			"Alice <alice@example.com>",
		}

		for _, email := range invalidEmails {
			err := rule.Check(email)
			require.Error(t, err, "Email should be invalid: %s", email)
			assert.Equal(t, "email", validator.Code(err))
			assert.ErrorIs(t, err, validator.ErrInvalidFormat)
		}
	})
}

func TestURL(t *testing.T) {
	rule := validator.URL[string]()

	t.Run("valid URLs", func(t *testing.T) {
		for _, u := range []string{
			"https://example.com",
			"http://localhost:8080/path?q=1",
			"ftp://files.example.com/file.txt",
		} {
			assert.NoError(t, rule.Check(u), "URL should be valid: %s", u)
		}
	})

	t.Run("invalid URLs", func(t *testing.T) {
		for _, u := range []string{
			"",
			"   ",
			"personal-blog.net",
			"/relative/path",
			"https://exa mple.com",
			"https://",
		} {
			err := rule.Check(u)
			require.Error(t, err, "URL should be invalid: %s", u)
			assert.Equal(t, "must be a valid URL", err.Error())
		}
	})
}

func TestURLWithScheme(t *testing.T) {
	rule := validator.URLWithScheme[string]("https", "wss")

	assert.NoError(t, rule.Check("https://example.com"))
	assert.NoError(t, rule.Check("wss://example.com/socket"))

	err := rule.Check("http://example.com")
	require.Error(t, err)
	assert.Equal(t, "must be a valid URL with scheme: https, wss", err.Error())
}
