package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	secretKey := "test-secret-key"
	service := NewService(secretKey)

	assert.NotNil(t, service)
	assert.Equal(t, []byte(secretKey), service.secretKey)
	assert.Equal(t, DefaultExpiration, service.expiration)
}

func TestGenerateAndValidateToken_RoundTrip(t *testing.T) {
	service := NewService("test-secret-key")

	token, err := service.GenerateToken("user-456", "ana@blog.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-456", claims.UserID)
	assert.Equal(t, "ana@blog.com", claims.Username)
	assert.Equal(t, "ana@blog.com", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, time.Now().Before(claims.ExpiresAt.Time))
}

func TestValidateToken_Expiration(t *testing.T) {
	service := NewService("test-secret-key", WithExpiration(30*time.Minute))

	token, err := service.GenerateToken("user-1", "ana@blog.com")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	service := NewService("test-secret-key", WithExpiration(-time.Minute))

	token, err := service.GenerateToken("user-123", "ana@blog.com")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_ExpiresWithClock(t *testing.T) {
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewService("test-secret-key", WithClock(func() time.Time { return issuedAt }))
	token, err := issuer.GenerateToken("user-123", "ana@blog.com")
	require.NoError(t, err)

	later := NewService("test-secret-key", WithClock(func() time.Time { return issuedAt.Add(3 * time.Hour) }))
	_, err = later.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)

	sooner := NewService("test-secret-key", WithClock(func() time.Time { return issuedAt.Add(time.Hour) }))
	_, err = sooner.ValidateToken(token)
	assert.NoError(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service1 := NewService("secret-key-1")
	service2 := NewService("secret-key-2")

	token, err := service1.GenerateToken("user-123", "ana@blog.com")
	require.NoError(t, err)

	_, err = service2.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestValidateToken_InvalidToken(t *testing.T) {
	service := NewService("test-secret-key")

	_, err := service.ValidateToken("invalid-token")
	assert.ErrorIs(t, err, ErrMalformedToken)

	_, err = service.ValidateToken("")
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestValidateToken_UnexpectedSigningMethod(t *testing.T) {
	service := NewService("test-secret-key")

	claims := &Claims{
		Username: "ana@blog.com",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims).SignedString([]byte("test-secret-key"))
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestValidateToken_MissingExpiry(t *testing.T) {
	service := NewService("test-secret-key")

	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, &Claims{Username: "ana@blog.com"}).SignedString([]byte("test-secret-key"))
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_IgnoresIssuerAndAudience(t *testing.T) {
	service := NewService("test-secret-key")

	claims := &Claims{
		Username: "ana@blog.com",
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    "someone-else",
			Audience:  gojwt.ClaimStrings{"another-api"},
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("test-secret-key"))
	require.NoError(t, err)

	got, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ana@blog.com", got.Username)
}
