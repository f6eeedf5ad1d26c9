package jwt

import (
	"testing"
	"time"

	"github.com/NeuralTrust/LegalGuard/pkg/common"
	"github.com/NeuralTrust/LegalGuard/pkg/config"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManagerWithSecret(secret string) Manager {
	return NewJwtManager(&config.ServerConfig{SecretKey: secret})
}

func signTokenWithSecret(t *testing.T, method jwtlib.SigningMethod, secret string, claims jwtlib.Claims) string {
	t.Helper()
	signed, err := jwtlib.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestCreateToken_AndValidate_Success(t *testing.T) {
	mgr := newManagerWithSecret("test-secret")

	token, err := mgr.CreateToken(time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, mgr.ValidateToken(token))

	claims, err := mgr.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, common.AdminSubject, claims.Subject)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestCreateToken_NoExpiry(t *testing.T) {
	mgr := newManagerWithSecret("test-secret")

	token, err := mgr.CreateToken(0)
	require.NoError(t, err)

	claims, err := mgr.DecodeToken(token)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestCreateToken_MissingSecret(t *testing.T) {
	_, err := newManagerWithSecret("").CreateToken(time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)
	assert.ErrorIs(t, newManagerWithSecret("").ValidateToken("a.b.c"), ErrMissingSecret)
}

func TestValidateToken_InvalidSignature(t *testing.T) {
	signed := signTokenWithSecret(t, jwtlib.SigningMethodHS256, "other-secret", &Claims{Role: RoleAdmin})

	assert.Equal(t, ErrInvalidToken, newManagerWithSecret("test-secret").ValidateToken(signed))
}

func TestValidateToken_Expired(t *testing.T) {
	secret := "expire-secret"
	signed := signTokenWithSecret(t, jwtlib.SigningMethodHS256, secret, &Claims{
		Role: RoleAdmin,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-1 * time.Hour)),
		},
	})

	assert.Equal(t, ErrExpiredToken, newManagerWithSecret(secret).ValidateToken(signed))
}

func TestValidateToken_WrongRole(t *testing.T) {
	secret := "role-secret"
	signed := signTokenWithSecret(t, jwtlib.SigningMethodHS256, secret, &Claims{Role: "viewer"})

	assert.Equal(t, ErrInvalidToken, newManagerWithSecret(secret).ValidateToken(signed))
}

func TestValidateToken_RejectsOtherAlgorithms(t *testing.T) {
	secret := "alg-secret"
	signed := signTokenWithSecret(t, jwtlib.SigningMethodHS512, secret, &Claims{Role: RoleAdmin})

	assert.Equal(t, ErrInvalidToken, newManagerWithSecret(secret).ValidateToken(signed))
}

func TestValidateToken_Malformed(t *testing.T) {
	mgr := newManagerWithSecret("test-secret")

	assert.Equal(t, ErrInvalidToken, mgr.ValidateToken("not-a-token"))
	assert.Equal(t, ErrInvalidToken, mgr.ValidateToken("a.b.c"))
}

func TestDecodeToken_Invalid(t *testing.T) {
	signed := signTokenWithSecret(t, jwtlib.SigningMethodHS256, "wrong", &Claims{Role: RoleAdmin})

	claims, err := newManagerWithSecret("right").DecodeToken(signed)

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
