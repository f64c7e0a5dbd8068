package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosala-labs/mosala-backend/dao/model"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 1, 24)

	msg := &JWTMessage{UserID: 42, Username: "amina", Role: model.RoleUser}
	access, refresh, err := tm.CreateTokens(msg)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	got, err := tm.CheckToken(access)
	require.NoError(t, err)
	assert.Equal(t, *msg, got)
}

func TestCheckTokenRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret-a", 1, 1)
	access, _, err := tm.CreateTokens(&JWTMessage{UserID: 7, Username: "ngouabi", Role: model.RoleAdmin})
	require.NoError(t, err)

	other := NewTokenManager("secret-b", 1, 1)
	_, err = other.CheckToken(access)
	assert.Error(t, err)
}

func TestCheckTokenRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("secret", 1, 1)
	_, err := tm.CheckToken("not-a-jwt")
	assert.Error(t, err)
}
