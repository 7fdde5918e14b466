package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/victorucama-create/nexasuite-erp/token"
	"github.com/victorucama-create/nexasuite-erp/users"
)

const (
	accessSecret  = "test-access-secret"
	refreshSecret = "test-refresh-secret"
)

func testUser() *users.User {
	return &users.User{
		ID:          1,
		Name:        "Super Admin",
		Email:       "admin@nexasuite.com",
		Roles:       []users.RoleType{users.RoleSuperAdmin},
		Permissions: users.Permissions{"*"},
	}
}

func newManager(options ...token.ManagerOption) *token.Manager {
	return token.New(
		token.NewHMACSigner(accessSecret),
		token.NewHMACSigner(refreshSecret),
		options...,
	)
}

func TestGeneratePairRoundTrip(t *testing.T) {
	m := newManager()

	pair, err := m.GeneratePair(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	accessClaims, err := m.VerifyAccessToken(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, 1, accessClaims.UserID)
	require.Equal(t, "admin@nexasuite.com", accessClaims.Email)
	require.Equal(t, []string{"SUPER_ADMIN"}, accessClaims.Roles)
	require.NotEmpty(t, accessClaims.TokenID)

	refreshClaims, err := m.VerifyRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, 1, refreshClaims.UserID)
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	m := newManager()

	pair, err := m.GeneratePair(testUser())
	require.NoError(t, err)

	_, err = m.VerifyAccessToken(pair.RefreshToken)
	require.Error(t, err, "refresh token must not verify as an access token")

	_, err = m.VerifyRefreshToken(pair.AccessToken)
	require.Error(t, err, "access token must not verify as a refresh token")
}

func TestTokenTypesRejectedEvenWithSharedSecret(t *testing.T) {
	// With one secret for both domains the "typ" claim is the last line of
	// defence, and it must hold on its own.
	m := token.New(
		token.NewHMACSigner(accessSecret),
		token.NewHMACSigner(accessSecret),
	)

	pair, err := m.GeneratePair(testUser())
	require.NoError(t, err)

	_, err = m.VerifyAccessToken(pair.RefreshToken)
	require.Error(t, err)

	_, err = m.VerifyRefreshToken(pair.AccessToken)
	require.Error(t, err)
}

func TestExpiredTokensAreRejected(t *testing.T) {
	issued := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	now := issued

	m := newManager(
		token.WithTokenExpiry(24*time.Hour, 7*24*time.Hour),
		token.WithNowFunc(func() time.Time { return now }),
	)

	pair, err := m.GeneratePair(testUser())
	require.NoError(t, err)
	require.Equal(t, issued.Add(24*time.Hour), pair.AccessExpiresAt)
	require.Equal(t, issued.Add(7*24*time.Hour), pair.RefreshExpiresAt)

	// Past the access expiry, before the refresh expiry
	now = issued.Add(25 * time.Hour)
	_, err = m.VerifyAccessToken(pair.AccessToken)
	require.Error(t, err)
	_, err = m.VerifyRefreshToken(pair.RefreshToken)
	require.NoError(t, err)

	// Past both
	now = issued.Add(8 * 24 * time.Hour)
	_, err = m.VerifyRefreshToken(pair.RefreshToken)
	require.Error(t, err)
}

func TestGarbageTokensAreRejected(t *testing.T) {
	m := newManager()

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		_, err := m.VerifyAccessToken(raw)
		require.Error(t, err)
		_, err = m.VerifyRefreshToken(raw)
		require.Error(t, err)
	}
}

func TestDifferentSecretRejected(t *testing.T) {
	m := newManager()
	other := token.New(
		token.NewHMACSigner("another-secret"),
		token.NewHMACSigner("yet-another-secret"),
	)

	pair, err := other.GeneratePair(testUser())
	require.NoError(t, err)

	_, err = m.VerifyAccessToken(pair.AccessToken)
	require.Error(t, err)
	_, err = m.VerifyRefreshToken(pair.RefreshToken)
	require.Error(t, err)
}
