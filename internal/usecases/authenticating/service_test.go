package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-automation/internal/config"
	"github.com/vfg2006/creator-automation/internal/domain"
	"github.com/vfg2006/creator-automation/pkg/apiErrors"
)

func newTestService(secret string) *Service {
	cfg := &config.Config{}
	cfg.Auth.Secret = secret
	return NewService(cfg).(*Service)
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService("test-secret")

	token, err := svc.GenerateToken("ops@example.com", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, "ops@example.com", claims.Subject)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestService("test-secret")
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.GenerateToken("ops", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExpiredToken))
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))

	var tokenErr *TokenError
	require.ErrorAs(t, err, &tokenErr)
	assert.Equal(t, apiErrors.ErrExpiredToken, tokenErr.APICode())
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := newTestService("one").GenerateToken("ops", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	_, err = newTestService("two").ValidateToken(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestValidateTokenRejectsOtherAlgorithms(t *testing.T) {
	claims := &domain.OperatorClaims{Role: domain.RoleAdmin}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newTestService("secret").ValidateToken(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestMissingSecret(t *testing.T) {
	svc := newTestService("")

	_, err := svc.GenerateToken("ops", domain.RoleAdmin, time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = svc.ValidateToken("anything")
	assert.ErrorIs(t, err, ErrMissingSecret)
}
