package commands

import (
	"context"
	"log/slog"
	"time"

	"stayaccess/internal/pkg/clock"
)

type CredentialSweeper interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// CleanupCommands removes credential rows past expiry, used or not.
// Deleting a row revokes its token even while the signature would still
// verify. Idempotent: a second sweep with no new expirations removes zero.
type CleanupCommands interface {
	Sweep(ctx context.Context) (int64, error)
}

type cleanupCommandsImpl struct {
	sweeper CredentialSweeper
	clock   clock.Clock
}

func NewCleanupCommands(sweeper CredentialSweeper, clock clock.Clock) CleanupCommands {
	return &cleanupCommandsImpl{
		sweeper: sweeper,
		clock:   clock,
	}
}

func (u *cleanupCommandsImpl) Sweep(ctx context.Context) (int64, error) {
	count, err := u.sweeper.DeleteExpired(ctx, u.clock.Now())
	if err != nil {
		return 0, err
	}

	if count > 0 {
		slog.Info("swept expired access credentials", "deleted", count)
	}

	return count, nil
}
