package validator_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validex/pkg/validator"
)

func TestUUID(t *testing.T) {
	rule := validator.UUID[string]()

	t.Run("valid UUIDs", func(t *testing.T) {
		assert.NoError(t, rule.Check(uuid.NewString()))
		assert.NoError(t, rule.Check(strings.ToUpper(uuid.NewString())))
		assert.NoError(t, rule.Check(uuid.Nil.String()))
	})

	t.Run("invalid UUIDs", func(t *testing.T) {
		for _, v := range []string{
			"",
			"not-a-uuid",
			"{" + uuid.NewString() + "}",
			"urn:uuid:" + uuid.NewString(),
			strings.ReplaceAll(uuid.NewString(), "-", ""),
			"g2345678-1234-1234-1234-123456789abc",
		} {
			err := rule.Check(v)
			require.Error(t, err, "UUID should be invalid: %s", v)
			assert.Equal(t, "uuid", validator.Code(err))
		}
	})
}

func TestNonNilUUID(t *testing.T) {
	rule := validator.NonNilUUID()
	assert.NoError(t, rule.Check(uuid.New()))
	assert.EqualError(t, rule.Check(uuid.Nil), "UUID cannot be nil")
}

func TestUUIDVersion(t *testing.T) {
	v4 := validator.UUIDVersion(4)
	assert.NoError(t, v4.Check(uuid.New()))

	v7, err := uuid.NewV7()
	require.NoError(t, err)
	assert.EqualError(t, v4.Check(v7), "must be a UUID version 4")
	assert.NoError(t, validator.UUIDVersion(7).Check(v7))
}
