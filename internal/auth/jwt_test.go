package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateJWT(42, "admin", secret)
	require.NoError(t, err)

	userID, role, err := VerifyJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), userID)
	assert.Equal(t, "admin", role)
}

func TestVerifyJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(42, "admin", []byte("one-secret"))
	require.NoError(t, err)

	_, _, err = VerifyJWT(token, []byte("other-secret"))
	assert.Error(t, err)
}

func TestVerifyJWT_Garbage(t *testing.T) {
	_, _, err := VerifyJWT("not-a-token", []byte("secret"))
	assert.Error(t, err)
}
