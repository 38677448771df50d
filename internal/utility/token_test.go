package utility

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	os.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	token, err := GenerateToken("64f1b2a3c4d5e6f7a8b9c0d1", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, errMsg := ValidateToken(token)
	require.Empty(t, errMsg)
	assert.Equal(t, "64f1b2a3c4d5e6f7a8b9c0d1", claims.Uid)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	os.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	claims, errMsg := ValidateToken("not-a-token")
	assert.Nil(t, claims)
	assert.NotEmpty(t, errMsg)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	os.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	token, err := GenerateToken("64f1b2a3c4d5e6f7a8b9c0d1", "user")
	require.NoError(t, err)

	os.Setenv("ACCESS_TOKEN_SECRET", "another-secret")
	claims, errMsg := ValidateToken(token)
	assert.Nil(t, claims)
	assert.NotEmpty(t, errMsg)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	os.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	token, err := GenerateToken("64f1b2a3c4d5e6f7a8b9c0d1", "user")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	claims, errMsg := ValidateToken(tampered)
	assert.Nil(t, claims)
	assert.NotEmpty(t, errMsg)
}
