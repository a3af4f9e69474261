package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})

	token, err := svc.GenerateToken("4SF22CS001", "Rakshith V", "student")
	require.NoError(t, err)

	claims, err := svc.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "4SF22CS001", claims.Username)
	assert.Equal(t, "Rakshith V", claims.Name)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, "4SF22CS001", claims.Subject)
}

func TestValidateRejectsForeignSignature(t *testing.T) {
	issuer := NewJWTService(JWTConfig{SecretKey: "secret-a", AccessTokenExp: time.Hour, TokenIssuer: "test"})
	verifier := NewJWTService(JWTConfig{SecretKey: "secret-b", AccessTokenExp: time.Hour, TokenIssuer: "test"})

	token, err := issuer.GenerateToken("FA001", "Priya Shenoy", "placement")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "test-secret", AccessTokenExp: -time.Minute, TokenIssuer: "test"})

	token, err := svc.GenerateToken("4SF22CS001", "Rakshith V", "student")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestVerifiers(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, BcryptVerifier{}.Verify(hash, "correct horse battery staple"))
	assert.False(t, BcryptVerifier{}.Verify(hash, "wrong"))

	// Demo mode only checks the shared classroom password.
	assert.True(t, DemoVerifier{}.Verify(hash, DemoPassword))
	assert.False(t, DemoVerifier{}.Verify(hash, "wrong"))
}
