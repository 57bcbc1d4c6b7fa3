// Package tx runs units of work inside SERIALIZABLE transactions and
// absorbs serialization conflicts by restarting the work from scratch.
package tx

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"stayaccess/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

const (
	DefaultMaxRetries = 3

	backoffBase = 100 * time.Millisecond
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// Beginner is satisfied by *pgxpool.Pool.
type Beginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type Coordinator struct {
	db         Beginner
	maxRetries int
}

func NewCoordinator(db Beginner, maxRetries int) *Coordinator {
	if maxRetries < 0 {
		maxRetries = DefaultMaxRetries
	}
	return &Coordinator{
		db:         db,
		maxRetries: maxRetries,
	}
}

// Run executes fn inside one serializable transaction. When the database
// aborts a non-serializable interleaving, the whole unit of work restarts on
// a fresh transaction after an exponential wait; fn must therefore contain
// no non-idempotent side effects. Non-conflict failures propagate
// immediately.
//
// Avoids defer accumulation in the retry loop to prevent connection leaks.
func (c *Coordinator) Run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	retries := 0

	for {
		err := c.runOnce(ctx, fn)
		if err == nil {
			return nil
		}

		if !IsSerializationConflict(err) {
			return err
		}

		retries++
		if retries > c.maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", retries,
				"error", err.Error())
			return errs.Mark(err, ErrMaxRetriesExceeded)
		}

		waitTime := backoffBase * (1 << retries)
		slog.Warn("retrying transaction after serialization conflict",
			"retry", retries,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}
}

func (c *Coordinator) runOnce(ctx context.Context, fn func(tx pgx.Tx) error) error {
	pgxTx, err := c.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return errs.Mark(err, ErrTransactionBegin)
	}

	err = fn(pgxTx)
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, ErrTransactionCommit)
	}

	if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
		if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rollbackErr.Error())
		}
	}

	return err
}

// Run executes fn through coord and carries a typed result out of the
// transaction. The result from an aborted attempt is discarded along with
// the attempt itself.
func Run[T any](ctx context.Context, coord *Coordinator, fn func(tx pgx.Tx) (T, error)) (T, error) {
	var result T

	err := coord.Run(ctx, func(pgxTx pgx.Tx) error {
		var fnErr error
		result, fnErr = fn(pgxTx)
		return fnErr
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}

// IsSerializationConflict reports whether the database aborted the
// transaction because a concurrent one made the outcome non-serializable.
// Deadlock aborts are the same transient class surfaced under a different
// code.
func IsSerializationConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}
