package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParseToken(t *testing.T) {
	claims := NewTokenClaims("user-1", "test", time.Now().Add(time.Hour).Unix())

	token, err := SignToken(claims, "secret")
	require.NoError(t, err)

	parsed, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", parsed.User)
	assert.Equal(t, "test", parsed.Appid)
}

func TestParseTokenWrongSecret(t *testing.T) {
	claims := NewTokenClaims("user-1", "test", time.Now().Add(time.Hour).Unix())
	token, err := SignToken(claims, "secret")
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	claims := NewTokenClaims("user-1", "test", time.Now().Add(-time.Hour).Unix())
	token, err := SignToken(claims, "secret")
	require.NoError(t, err)

	_, err = ParseToken(token, "secret")
	assert.Error(t, err)
}
