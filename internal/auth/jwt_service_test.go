package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateAccessToken(7, "user@example.com", "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Empty(t, claims.ID)
}

func TestJWTService_RefreshTokenCarriesID(t *testing.T) {
	svc := NewJWTService("test-secret")

	tokenID, token, err := svc.GenerateRefreshToken(7, "user@example.com", "user")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenID)

	extracted, err := svc.ExtractTokenID(token)
	assert.NoError(t, err)
	assert.Equal(t, tokenID, extracted)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc := NewJWTService("test-secret")
	other := NewJWTService("other-secret")

	token, err := svc.GenerateAccessToken(7, "user@example.com", "user")
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}
