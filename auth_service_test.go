package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Passwords(t *testing.T) {
	auth := NewAuthService("secret")

	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, auth.CheckPassword(hash, "hunter2"))
	assert.False(t, auth.CheckPassword(hash, "hunter3"))
	assert.False(t, auth.CheckPassword("!", "hunter2"))
}

func TestAuthService_Tokens(t *testing.T) {
	auth := NewAuthService("secret")

	t.Run("RoundTrip", func(t *testing.T) {
		token, err := auth.GenerateToken("user_1")
		require.NoError(t, err)

		userID, err := auth.UserIDFromToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user_1", userID)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := auth.UserIDFromToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("WrongKey", func(t *testing.T) {
		token, err := auth.GenerateToken("user_1")
		require.NoError(t, err)

		other := NewAuthService("other-secret")
		_, err = other.UserIDFromToken(token)
		assert.Error(t, err)
	})
}
