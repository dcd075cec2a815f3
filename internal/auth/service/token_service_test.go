package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService(t *testing.T) {
	tests := []struct {
		name           string
		accessSecret   string
		refreshSecret  string
		accessMinutes  int
		refreshMinutes int
	}{
		{
			name:           "valid parameters",
			accessSecret:   "access-secret-key",
			refreshSecret:  "refresh-secret-key",
			accessMinutes:  15,
			refreshMinutes: 10080,
		},
		{
			name:           "empty secrets",
			accessSecret:   "",
			refreshSecret:  "",
			accessMinutes:  30,
			refreshMinutes: 2880,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService(tt.accessSecret, tt.refreshSecret, tt.accessMinutes, tt.refreshMinutes)

			assert.NotNil(t, ts)
			assert.Equal(t, tt.accessSecret, ts.AccessTokenSecret)
			assert.Equal(t, tt.refreshSecret, ts.RefreshTokenSecret)
			assert.Equal(t, time.Duration(tt.accessMinutes)*time.Minute, ts.AccessTokenExpiry)
			assert.Equal(t, time.Duration(tt.refreshMinutes)*time.Minute, ts.RefreshTokenExpiry)
		})
	}
}

func TestTokenService_GenerateAndVerify(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 10080)

	access, refresh, expiresAt, err := ts.Generate("user-123", "user")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

	claims, err := ts.VerifyAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.AccountID)
	assert.Equal(t, "user", claims.Role)

	refreshClaims, err := ts.VerifyRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-123", refreshClaims.AccountID)

	// The two flavors are signed with different keys; they must not
	// cross-verify.
	_, err = ts.VerifyAccessToken(refresh)
	assert.Error(t, err)
	_, err = ts.VerifyRefreshToken(access)
	assert.Error(t, err)
}

func TestTokenService_VerifyAccessToken_WrongSecret(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 10080)
	other := NewTokenService("different-secret", "refresh-secret", 15, 10080)

	access, _, _, err := ts.Generate("user-123", "user")
	require.NoError(t, err)

	_, err = other.VerifyAccessToken(access)
	assert.Error(t, err)
}

func TestTokenService_VerifyAccessToken_Expired(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", -1, 10080)

	access, _, _, err := ts.Generate("user-123", "user")
	require.NoError(t, err)

	_, err = ts.VerifyAccessToken(access)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenService_VerifyAccessToken_Malformed(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 10080)

	_, err := ts.VerifyAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenService_ClaimsIgnoringExpiry(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", -1, -1)

	access, refresh, _, err := ts.Generate("user-123", "user")
	require.NoError(t, err)

	// Both tokens are already expired, but the lenient reader still returns
	// their claims.
	claims, err := ts.ClaimsIgnoringExpiry(access)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.AccountID)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.Time.Before(time.Now()))

	refreshClaims, err := ts.ClaimsIgnoringExpiry(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-123", refreshClaims.AccountID)

	// A bad signature is still rejected.
	forged := NewTokenService("forged-secret", "forged-secret", -1, -1)
	forgedToken, _, _, err := forged.Generate("user-123", "user")
	require.NoError(t, err)
	_, err = ts.ClaimsIgnoringExpiry(forgedToken)
	assert.Error(t, err)
}

func TestTokenService_SubjectOf(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 10080)

	access, _, _, err := ts.Generate("user-123", "user")
	require.NoError(t, err)

	subject, err := ts.SubjectOf(access)
	require.NoError(t, err)
	assert.Equal(t, "user-123", subject)

	_, err = ts.SubjectOf("garbage")
	assert.Error(t, err)
}
