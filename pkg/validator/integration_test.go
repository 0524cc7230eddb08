package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validex"
	"github.com/dmitrymomot/validex/pkg/validator"
)

type account struct {
	Email    string
	Username string
	Role     string
	Website  *string
	Age      int
}

func (a account) Validate() error {
	return validex.Validate(
		validex.Bind("email", validex.All[string](validator.Required[string](), validator.Email[string]()), a.Email),
		validex.Bind("username", validex.All[string](
			validex.Length[string](validex.Between(3, 32)),
			validator.Slug[string](),
			validex.Not[string](validator.OneOfFold[string]("root", "admin")),
		), a.Username),
		validex.Bind("role", validator.OneOf("owner", "member"), a.Role),
		validex.Bind("website", validex.Maybe[string](validator.URL[string]()), a.Website),
		validex.Bind("age", validex.Range(validex.AtLeast(13)), a.Age),
	)
}

func TestAccountValidation(t *testing.T) {
	site := "https://alice.dev"
	valid := account{Email: "alice@example.com", Username: "alice", Role: "owner", Website: &site, Age: 30}

	t.Run("valid account", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("nil optional field", func(t *testing.T) {
		a := valid
		a.Website = nil
		assert.NoError(t, a.Validate())
	})

	t.Run("reserved username", func(t *testing.T) {
		a := valid
		a.Username = "admin"
		err := a.Validate()
		require.Error(t, err)
		assert.Equal(t, "username -> Not: must be one of: root, admin", err.Error())

		fe, ok := validex.AsFieldError(err)
		require.True(t, ok)
		assert.Equal(t, "username", fe.Key)
	})

	t.Run("first failing field wins", func(t *testing.T) {
		a := valid
		a.Email = "broken"
		a.Age = 5
		err := a.Validate()
		require.Error(t, err)
		assert.Equal(t, "email", validator.Code(err))
		assert.ErrorIs(t, err, validator.ErrInvalidFormat)
	})

	t.Run("range error stays reachable", func(t *testing.T) {
		a := valid
		a.Age = 5
		err := a.Validate()
		require.Error(t, err)

		var re *validex.RangeError[int]
		require.True(t, errors.As(err, &re))
		assert.Equal(t, 5, re.Value)
		assert.Equal(t, "age -> expected value 5 in 13..", err.Error())
	})
}

func TestAnyOfFormats(t *testing.T) {
	contact := validex.Any[string](validator.Email[string](), validator.Phone[string]())
	assert.NoError(t, contact.Check("alice@example.com"))
	assert.NoError(t, contact.Check("+441234567890"))

	err := contact.Check("nope")
	require.Error(t, err)

	var agg validex.Errors
	require.True(t, errors.As(err, &agg))
	assert.Len(t, agg, 2)
}
