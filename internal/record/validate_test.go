package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateContact(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		rec := Record{
			"first_name": "Ada",
			"last_name":  "Lovelace",
			"email":      "ada@example.com",
		}
		assert.NoError(t, ValidateContact(rec))
	})

	t.Run("missing fields are named", func(t *testing.T) {
		err := ValidateContact(Record{"email": "ada@example.com"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid record")
		assert.Contains(t, err.Error(), "first_name is required")
		assert.Contains(t, err.Error(), "last_name is required")
	})

	t.Run("invalid email", func(t *testing.T) {
		err := ValidateContact(Record{
			"first_name": "Ada",
			"last_name":  "Lovelace",
			"email":      "not-an-email",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "email is not a valid email address")
	})

	t.Run("non-string values count as missing", func(t *testing.T) {
		err := ValidateContact(Record{
			"first_name": 42,
			"last_name":  "Lovelace",
			"email":      "ada@example.com",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "first_name is required")
	})
}
