package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	m := NewManager("test-secret", 1)

	token, err := m.GenerateToken(7, "dhaka5", "candidate")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "dhaka5", claims.Username)
	assert.Equal(t, "candidate", claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", 1).GenerateToken(1, "admin", "super_admin")
	require.NoError(t, err)

	_, err = NewManager("secret-b", 1).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := NewManager("test-secret", 1).ValidateToken("not.a.token")
	assert.Error(t, err)
}
