package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medilink/config"
)

func newTestService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	svc := newTestService("secret")
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "clinic@example.com", "hospital")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "clinic@example.com", claims.Email)
	assert.Equal(t, "hospital", claims.Role)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateRefreshToken_Type(t *testing.T) {
	svc := newTestService("secret")

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "worker@example.com", "worker")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
	assert.Equal(t, "worker", claims.Role)
}

func TestValidateToken_Invalid(t *testing.T) {
	svc := newTestService("secret")

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc1 := newTestService("secret-one")
	svc2 := newTestService("secret-two")

	token, _, err := svc1.GenerateAccessToken(uuid.New(), "worker@example.com", "worker")
	require.NoError(t, err)

	_, err = svc2.ValidateToken(token)
	assert.Error(t, err)
}
