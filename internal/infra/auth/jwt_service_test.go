package auth

import (
	"testing"
	"time"

	"quill/config"
	domainerrors "quill/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Minute * 15}

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	userID := uuid.New()

	token, err := svc.Issue(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	assert.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := &jwtService{
		secret: []byte("test_secret_key_very_long_for_testing"),
		ttl:    -time.Minute,
	}

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("issuer_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("another_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := svc.Verify("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_RejectsUnsignedAlgorithm(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	// A "none"-algorithm token must never pass verification, regardless of claims.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := svc.Verify(tokenString)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt signing secret must be provided")
}

func TestJWTService_MissingSubject(t *testing.T) {
	secret := []byte("test_secret_key_very_long_for_testing")
	svc := &jwtService{secret: secret, ttl: time.Minute}

	// A structurally valid token without a user ID must be rejected.
	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tokenString, err := anonymous.SignedString(secret)
	require.NoError(t, err)

	claims, verifyErr := svc.Verify(tokenString)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(verifyErr, domainerrors.ErrTokenInvalid))
}
