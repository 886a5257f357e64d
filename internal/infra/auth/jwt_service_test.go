package auth

import (
	"testing"
	"time"

	"workgroup/config"
	"workgroup/internal/domain/service"
	"workgroup/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: 30 * time.Minute, BcryptCost: 4}

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	groupID := int64(7)
	token, err := svc.GenerateAccessToken(service.Claims{
		UserID:           9,
		Role:             "admin",
		WorkingGroupID:   &groupID,
		GroupName:        "north",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(9), claims.UserID)
	assert.Equal(t, "alice", claims.Username())
	assert.Equal(t, "admin", claims.Role)
	require.NotNil(t, claims.WorkingGroupID)
	assert.Equal(t, int64(7), *claims.WorkingGroupID)
	assert.Equal(t, "north", claims.GroupName)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	other := newTestConfig()
	other.SecretKey.Access = "another_secret_entirely_for_signing"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := otherSvc.GenerateAccessToken(service.Claims{UserID: 1})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := newTestConfig()
	raw, err := NewJWTService(cfg)
	require.NoError(t, err)

	svc := raw.(*jwtService)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := svc.GenerateAccessToken(service.Claims{UserID: 1})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, &service.Claims{
		UserID:           1,
		RegisteredClaims: jwt.RegisteredClaims{Issuer: issuer},
	})
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(unsigned)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := newTestConfig()
	cfg.SecretKey.Access = ""

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_AccessTokenTTL(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth.AccessTokenTTL = 2 * time.Hour

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, svc.AccessTokenTTL())
}
