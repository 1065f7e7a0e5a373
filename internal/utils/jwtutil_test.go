package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	secret := []byte("unit-test-secret")

	token, exp, err := GenerateSessionToken(secret, 42, "open-42", "admin", time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := ParseSessionToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "open-42", claims.OpenID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "open-42", claims.Subject)
}

func TestParseSessionTokenRejects(t *testing.T) {
	secret := []byte("unit-test-secret")

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := GenerateSessionToken(secret, 1, "o", "user", time.Hour)
		require.NoError(t, err)

		_, err = ParseSessionToken([]byte("other-secret"), token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, _, err := GenerateSessionToken(secret, 1, "o", "user", -time.Minute)
		require.NoError(t, err)

		_, err = ParseSessionToken(secret, token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseSessionToken(secret, "not-a-token")
		assert.Error(t, err)
	})
}
