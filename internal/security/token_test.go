package security_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleansweep-backend/internal/security"
)

const testSecret = "test-secret-that-is-at-least-32-chars!!"

func TestTokenManager_AccessToken(t *testing.T) {
	tm := security.NewTokenManager(testSecret, 60, 0)

	token, err := tm.GenerateAccessToken(42, "alice@b.com", "member")
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int32(42), claims.UserID)
	assert.Equal(t, "alice@b.com", claims.Email)
	assert.Equal(t, security.TokenTypeAccess, claims.Type)
	assert.Equal(t, "member", claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenManager_RefreshToken(t *testing.T) {
	tm := security.NewTokenManager(testSecret, 0, 0)

	token, err := tm.GenerateRefreshToken(42, "alice@b.com")
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, security.TokenTypeRefresh, claims.Type)
	assert.Empty(t, claims.Role)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := security.NewTokenManager(testSecret, 60, 0)
	other := security.NewTokenManager("another-secret-that-is-32-chars-long!!", 60, 0)

	token, err := tm.GenerateAccessToken(1, "a@b.com", "member")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	tm := security.NewTokenManager(testSecret, 60, 0)

	claims := security.UserClaims{
		UserID: 1,
		Type:   security.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tm.ValidateToken(expired)
	assert.ErrorIs(t, err, security.ErrExpiredToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	tm := security.NewTokenManager(testSecret, 60, 0)

	_, err := tm.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}
