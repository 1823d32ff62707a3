package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spbu-ops/setoran-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunOnce_ExecutesEveryRegisteredJob(t *testing.T) {
	s := NewScheduler()

	var first, second int
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		first++
		return nil
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		second++
		return errors.New("transient")
	})

	s.RunOnce(context.Background())

	// A failing job must not stop the remaining jobs.
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestTokenCleanupJob_PurgesExpiredRevocations(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", "1h", "168h")
	_, refreshToken, err := jwtService.JWTAuth().Encode(map[string]interface{}{"type": "refresh"})
	require.NoError(t, err)

	jwtService.RevokeToken(refreshToken)
	require.True(t, jwtService.IsTokenRevoked(refreshToken))

	// A negative lifetime puts the cutoff in the future, so the entry just
	// revoked is already past it.
	s := NewScheduler()
	NewTokenJobs(jwtService, -time.Second).Register(s)
	s.RunOnce(context.Background())

	assert.False(t, jwtService.IsTokenRevoked(refreshToken))
}
