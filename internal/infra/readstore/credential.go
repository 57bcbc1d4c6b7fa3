package readstore

import (
	"context"
	"errors"
	"time"

	"stayaccess/internal/domain/credential"
	"stayaccess/internal/infra"
	"stayaccess/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CredentialReadStore serves the issuer's reuse check and the verifier's
// row lookup. Absence is reported as a nil credential, not an error, because
// both callers branch on it as a normal outcome.
type CredentialReadStore struct{}

func NewCredentialReadStore() *CredentialReadStore {
	return &CredentialReadStore{}
}

// FindValid returns the most recently created credential for the pair that
// is unexpired at now and unconsumed, or nil. Expiry is evaluated against
// the caller's clock so the whole unit of work sees one instant.
func (s *CredentialReadStore) FindValid(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID, email string, now time.Time) (*credential.AccessCredential, error) {
	const q = `
		SELECT id, booking_id, email, token, expires_at, used, created_at
		FROM guest_access_credentials
		WHERE booking_id = $1 AND email = $2 AND used = FALSE AND expires_at > $3
		ORDER BY created_at DESC
		LIMIT 1
	`

	cred, err := scanCredential(dbtx.QueryRow(ctx, q, bookingID, email, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find valid credential", err)
	}

	return cred, nil
}

// FindByToken looks a credential up by exact token string.
func (s *CredentialReadStore) FindByToken(ctx context.Context, dbtx db.DBTX, tokenStr string) (*credential.AccessCredential, error) {
	const q = `
		SELECT id, booking_id, email, token, expires_at, used, created_at
		FROM guest_access_credentials
		WHERE token = $1
	`

	cred, err := scanCredential(dbtx.QueryRow(ctx, q, tokenStr))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find credential by token", err)
	}

	return cred, nil
}

func scanCredential(row pgx.Row) (*credential.AccessCredential, error) {
	var (
		id        uuid.UUID
		bookingID uuid.UUID
		email     string
		tokenStr  string
		expiresAt time.Time
		used      bool
		createdAt time.Time
	)

	if err := row.Scan(&id, &bookingID, &email, &tokenStr, &expiresAt, &used, &createdAt); err != nil {
		return nil, err
	}

	return credential.Restore(id, bookingID, email, tokenStr, expiresAt, used, createdAt), nil
}
