package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("3f8e7a9c-0000-0000-0000-000000000001", "customer", "test-secret", 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "3f8e7a9c-0000-0000-0000-000000000001", claims.Subject)
	assert.Equal(t, "customer", claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("user-1", "customer", "secret-a", 1)
	require.NoError(t, err)

	_, err = ParseToken(token, "secret-b")
	require.Error(t, err)
}

func TestTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken("user-1", "customer", "test-secret", -1)
	require.NoError(t, err)

	_, err = ParseToken(token, "test-secret")
	require.Error(t, err)
}

func TestTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-jwt", "test-secret")
	require.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}
