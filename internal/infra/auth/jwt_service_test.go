package auth

import (
	"testing"
	"time"

	"taskboard/config"
	"taskboard/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	if ttl > 0 {
		cfg.Auth = &config.AuthConfig{TokenTTL: ttl}
	}

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)

	token, expiresIn, err := svc.Issue("alice@example.com", entity.RoleUser)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, time.Hour.Milliseconds(), expiresIn)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "alice@example.com", claims.Subject)
	assert.Equal(t, entity.RoleUser, claims.Role)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(0))
	require.NoError(t, err)

	_, expiresIn, err := svc.Issue("alice@example.com", entity.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, (24 * time.Hour).Milliseconds(), expiresIn)
}

func TestJWTService_RejectsMissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)

	token, _, err := svc.Issue("alice@example.com", entity.RoleUser)
	require.NoError(t, err)

	claims, err := svc.Validate(token + "x")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)

	otherCfg := newTestJWTConfig(time.Hour)
	otherCfg.SecretKey.Access = "different-secret"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, _, err := issuer.Issue("alice@example.com", entity.RoleUser)
	require.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := &jwtService{secret: []byte("test-secret"), ttl: -time.Minute}

	token, _, err := svc.Issue("alice@example.com", entity.RoleUser)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
