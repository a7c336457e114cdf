package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront_back_end/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	user := models.User{ID: "user_1", Email: "jean@x.com", Name: "Jean", Role: models.RoleUser}

	token, err := GenerateToken(user)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user_1", claims["user_id"])
	assert.Equal(t, "jean@x.com", claims["email"])
	assert.Equal(t, models.RoleUser, claims["role"])
	assert.NotEmpty(t, claims["jti"])
}

func TestTokensAreUnique(t *testing.T) {
	user := models.User{ID: "user_1", Email: "jean@x.com"}

	a, err := GenerateToken(user)
	require.NoError(t, err)
	b, err := GenerateToken(user)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("pas-un-jwt")
	assert.Error(t, err)
}

func TestPasswordPlaceholder(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	assert.True(t, CheckPassword(hash, "secret"))
	assert.False(t, CheckPassword(hash, "autre"))
}
