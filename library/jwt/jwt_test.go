package jwt

import (
	"testing"
	"time"

	jwtLib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func newClaims(role string, expiresIn time.Duration) *UserClaims {
	now := time.Now()
	return &UserClaims{
		RegisteredClaims: jwtLib.RegisteredClaims{
			Subject:   "507f1f77bcf86cd799439011",
			Issuer:    "test",
			IssuedAt:  jwtLib.NewNumericDate(now),
			ExpiresAt: jwtLib.NewNumericDate(now.Add(expiresIn)),
		},
		Email: "admin@example.com",
		Role:  role,
	}
}

func TestNewRequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := New(nil)
	require.Error(t, err)

	_, err = New([]byte(""))
	require.Error(t, err)

	_, err = New([]byte("secret"))
	require.NoError(t, err)
}

func TestSignParseRoundTrip(t *testing.T) {
	t.Parallel()

	j, err := New([]byte("test-secret"))
	require.NoError(t, err)

	token, err := j.Sign(newClaims(RoleAdmin, time.Hour))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	uc, err := j.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "507f1f77bcf86cd799439011", uc.Subject)
	require.Equal(t, "admin@example.com", uc.Email)
	require.True(t, uc.IsAdmin())
}

func TestParseRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signer, err := New([]byte("secret-a"))
	require.NoError(t, err)
	verifier, err := New([]byte("secret-b"))
	require.NoError(t, err)

	token, err := signer.Sign(newClaims(RoleAdmin, time.Hour))
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	require.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	t.Parallel()

	j, err := New([]byte("test-secret"))
	require.NoError(t, err)

	token, err := j.Sign(newClaims(RoleAdmin, -time.Minute))
	require.NoError(t, err)

	_, err = j.Parse(token)
	require.Error(t, err)
}

func TestParseRejectsMissingExpiry(t *testing.T) {
	t.Parallel()

	j, err := New([]byte("test-secret"))
	require.NoError(t, err)

	uc := newClaims(RoleAdmin, time.Hour)
	uc.ExpiresAt = nil
	token, err := j.Sign(uc)
	require.NoError(t, err)

	_, err = j.Parse(token)
	require.Error(t, err)
}

func TestNonAdminRole(t *testing.T) {
	t.Parallel()

	j, err := New([]byte("test-secret"))
	require.NoError(t, err)

	token, err := j.Sign(newClaims("user", time.Hour))
	require.NoError(t, err)

	uc, err := j.Parse(token)
	require.NoError(t, err)
	require.False(t, uc.IsAdmin())
}
