package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager("test-secret-at-least-16", time.Hour)

	token, err := m.GenerateAccessToken("u1", "reader@example.com", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "reader@example.com", claims.Email)
	assert.True(t, claims.Admin)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewManager("issuer-secret-123456", time.Hour)
	verifier := NewManager("another-secret-123456", time.Hour)

	token, err := issuer.GenerateAccessToken("u1", "reader@example.com", false)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	m := NewManager("test-secret-at-least-16", -time.Minute)

	token, err := m.GenerateAccessToken("u1", "reader@example.com", false)
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret-at-least-16", time.Hour)

	_, err := m.ValidateToken("not.a.token")
	assert.Error(t, err)
}
