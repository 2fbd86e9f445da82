package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
)

func TestNewTokenService_EmptySecret(t *testing.T) {
	svc, err := NewTokenService("")
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc, err := NewTokenService("test-secret")
	require.NoError(t, err)

	token, err := svc.Issue(42, "admin@example.com", model.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	issuer, err := NewTokenService("secret-a")
	require.NoError(t, err)
	verifier, err := NewTokenService("secret-b")
	require.NoError(t, err)

	token, err := issuer.Issue(1, "user@example.com", model.RoleUser)
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	svc, err := NewTokenService("test-secret")
	require.NoError(t, err)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		claims, err := svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc, err := NewTokenService("test-secret")
	require.NoError(t, err)

	// Sign an already-expired token with the same secret.
	past := time.Now().Add(-time.Hour)
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: 1,
		Email:  "user@example.com",
		Role:   model.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past),
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Hour)),
		},
	})
	tokenString, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	claims, err := svc.Verify(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestTokenService_Verify_WrongSigningMethod(t *testing.T) {
	svc, err := NewTokenService("test-secret")
	require.NoError(t, err)

	// An unsigned token must never verify, even with valid claims.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID: 1,
		Email:  "user@example.com",
		Role:   model.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := svc.Verify(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}
