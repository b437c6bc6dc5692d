package secrets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "cafepos/pkg/domain-errors"
)

func TestPasswordHashing(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	require.Len(t, salt, 2*saltBytes)

	hash, err := HashPassword("s3cret-pass", salt)
	require.NoError(t, err)
	assert.NotContains(t, hash, "s3cret-pass")

	t.Run("accepts the original password", func(t *testing.T) {
		assert.NoError(t, VerifyPassword("s3cret-pass", salt, hash))
	})

	t.Run("rejects a different password", func(t *testing.T) {
		err := VerifyPassword("wrong", salt, hash)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalid))
	})

	t.Run("rejects the right password with another salt", func(t *testing.T) {
		other, err := GenerateSalt()
		require.NoError(t, err)
		assert.Error(t, VerifyPassword("s3cret-pass", other, hash))
	})

	t.Run("rejects empty and oversized passwords", func(t *testing.T) {
		_, err := HashPassword("", salt)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalid))

		_, err = HashPassword(strings.Repeat("x", 80), salt)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalid))
	})
}

func TestGenerateToken(t *testing.T) {
	a, err := GenerateToken()
	require.NoError(t, err)
	b, err := GenerateToken()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 43)
}
