package utils

import (
	"os"
	"path/filepath"
	"testing"

	"kinovzor/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "viewer123!secret"

func loadTestConfig(t *testing.T) {
	t.Helper()

	content := `app:
  name: kinovzor-test
jwt:
  secret: unit-test-secret
  expire_hours: 1
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	_, err := config.Load(path)
	require.NoError(t, err)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword(testPassword)

	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, testPassword, hash, "plaintext must never be stored")
	assert.Contains(t, hash, "$2a$", "hash should be bcrypt")
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	h1, err := HashPassword(testPassword)
	require.NoError(t, err)
	h2, err := HashPassword(testPassword)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "each hash should carry its own salt")
	assert.True(t, VerifyPassword(testPassword, h1))
	assert.True(t, VerifyPassword(testPassword, h2))
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword(testPassword)
	require.NoError(t, err)

	assert.True(t, VerifyPassword(testPassword, hash))
	assert.False(t, VerifyPassword("wrong-password", hash))
	assert.False(t, VerifyPassword("", hash))
}

func TestGenerateAndParseToken(t *testing.T) {
	loadTestConfig(t)

	token, err := GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "kinovzor-test", claims.Issuer)
}

func TestParseToken_Invalid(t *testing.T) {
	loadTestConfig(t)

	_, err := ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Signed with a different secret.
	token, err := GenerateToken(7)
	require.NoError(t, err)
	config.Get().JWT.Secret = "another-secret"
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenHash(t *testing.T) {
	h1 := TokenHash("token-a")
	h2 := TokenHash("token-a")
	h3 := TokenHash("token-b")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1, 64, "hex sha-256")
	assert.NotContains(t, h1, "token-a")
}
