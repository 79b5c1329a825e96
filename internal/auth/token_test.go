package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/agrilink/internal/domain"
)

func TestGenerateAndParseToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 1)

	token, expiresAt, err := tm.GenerateToken("user-1", "farmer@example.com", domain.RoleFarmer)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.SubjectID)
	assert.Equal(t, "farmer@example.com", claims.Email)
	assert.Equal(t, domain.RoleFarmer, claims.Role)
}

func TestGenerateTokenRejectsUnknownRole(t *testing.T) {
	tm := NewTokenManager("test-secret", 1)

	_, _, err := tm.GenerateToken("user-1", "x@example.com", domain.Role("admin"))
	require.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestParseTokenWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret-a", 1)
	other := NewTokenManager("secret-b", 1)

	token, _, err := tm.GenerateToken("user-1", "x@example.com", domain.RoleOfficer)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	require.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	tm := &TokenManager{secret: []byte("test-secret"), ttl: -time.Minute}

	token, _, err := tm.GenerateToken("user-1", "x@example.com", domain.RoleFarmer)
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	require.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", 1)

	_, err := tm.ParseToken("not-a-jwt")
	require.Error(t, err)
}

func TestTokenManagerDefaultTTL(t *testing.T) {
	tm := NewTokenManager("test-secret", 0)
	assert.Equal(t, 7*24*time.Hour, tm.TTL())
}
