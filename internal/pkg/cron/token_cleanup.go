package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/spbu-ops/setoran-backend-go/internal/pkg/jwt"
)

// TokenJobs holds maintenance jobs for the in-memory token revocation list.
type TokenJobs struct {
	jwtService      jwt.Service
	refreshLifetime time.Duration
}

func NewTokenJobs(jwtService jwt.Service, refreshLifetime time.Duration) *TokenJobs {
	return &TokenJobs{
		jwtService:      jwtService,
		refreshLifetime: refreshLifetime,
	}
}

// Register adds the cleanup job to the scheduler.
func (t *TokenJobs) Register(s *Scheduler) {
	s.AddJob("revoked-token-cleanup", time.Hour, t.cleanupRevokedTokens)
}

func (t *TokenJobs) cleanupRevokedTokens(ctx context.Context) error {
	purged := t.jwtService.PurgeRevokedTokens(t.refreshLifetime)
	if purged > 0 {
		slog.Info("Purged expired token revocations", "count", purged)
	}
	return nil
}
