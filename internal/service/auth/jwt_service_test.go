package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biswa069/backend-intern-task/internal/config"
)

const testSecret = "test-secret-key-thats-long-enough-for-hmac"

func newTestService(t *testing.T) *hmacJWTService {
	t.Helper()

	svc, err := NewJWTService(config.AuthConfig{
		JWTSecret:            testSecret,
		TokenLifetimeMinutes: 15 * 24 * 60,
	})
	require.NoError(t, err)

	return svc.(*hmacJWTService)
}

func TestNewJWTServiceRejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{
		JWTSecret:            "too-short",
		TokenLifetimeMinutes: 60,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32 characters")
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	userID := uuid.New()
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t,
		time.Now().Add(15*24*time.Hour), claims.ExpiresAt, time.Minute,
		"token should be valid for 15 days")
}

func TestValidateTokenExpired(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	userID := uuid.New()
	ctx := context.Background()

	// Issue a token in the past, beyond lifetime plus clock skew.
	issuedAt := time.Now().Add(-16 * 24 * time.Hour)
	svc.timeFunc = func() time.Time { return issuedAt }

	token, err := svc.GenerateToken(ctx, userID)
	require.NoError(t, err)

	svc.timeFunc = time.Now

	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWithinClockSkew(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	// Token issued one minute in the future must still validate:
	// the 2-minute leeway absorbs minor clock drift between hosts.
	svc.timeFunc = func() time.Time { return time.Now().Add(time.Minute) }
	token, err := svc.GenerateToken(ctx, uuid.New())
	require.NoError(t, err)

	svc.timeFunc = time.Now
	_, err = svc.ValidateToken(ctx, token)
	assert.NoError(t, err)
}

func TestValidateTokenInvalid(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	otherSvc, err := NewJWTService(config.AuthConfig{
		JWTSecret:            "another-secret-key-thats-long-enough!!",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	foreignToken, err := otherSvc.GenerateToken(ctx, uuid.New())
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty string", ""},
		{"malformed token", "not.a.jwt"},
		{"garbage", "xxxxxxxxxxxxxxxx"},
		{"wrong signing key", foreignToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(ctx, tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestIdentityIsAdmin(t *testing.T) {
	t.Parallel()

	assert.True(t, Identity{UserID: uuid.New(), Role: "admin"}.IsAdmin())
	assert.False(t, Identity{UserID: uuid.New(), Role: "user"}.IsAdmin())
	assert.False(t, Identity{UserID: uuid.New()}.IsAdmin())
}
