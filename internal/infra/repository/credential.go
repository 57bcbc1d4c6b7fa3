package repository

import (
	"context"
	"time"

	"stayaccess/internal/domain/credential"
	"stayaccess/internal/infra"
	"stayaccess/internal/infra/db"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CredentialRepository owns all writes to guest_access_credentials. Insert
// runs on the caller's transaction; MarkUsed and DeleteExpired are
// standalone statements on the pool.
type CredentialRepository struct {
	pool *pgxpool.Pool
}

func NewCredentialRepository(pool *pgxpool.Pool) *CredentialRepository {
	return &CredentialRepository{
		pool: pool,
	}
}

func (r *CredentialRepository) Insert(ctx context.Context, dbtx db.DBTX, cred *credential.AccessCredential) error {
	const q = `
		INSERT INTO guest_access_credentials (id, booking_id, email, token, expires_at, used, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := dbtx.Exec(ctx, q,
		cred.ID(), cred.BookingID(), cred.Email(), cred.Token(),
		cred.ExpiresAt(), cred.Used(), cred.CreatedAt(),
	)
	if err != nil {
		// token collides on the unique constraint only if two signatures
		// ever produce the same string; terminal, never retried
		return infra.WrapRepoErr("failed to insert access credential", err)
	}

	return nil
}

// MarkUsed consumes a credential. A missing token is a no-op, matching the
// repeatable-consume contract.
func (r *CredentialRepository) MarkUsed(ctx context.Context, tokenStr string) error {
	const q = `UPDATE guest_access_credentials SET used = TRUE WHERE token = $1`

	_, err := r.pool.Exec(ctx, q, tokenStr)
	if err != nil {
		return infra.WrapRepoErr("failed to mark credential used", err)
	}

	return nil
}

func (r *CredentialRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	const q = `DELETE FROM guest_access_credentials WHERE expires_at < $1`

	tag, err := r.pool.Exec(ctx, q, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired credentials", err)
	}

	return tag.RowsAffected(), nil
}
