//go:generate mockgen -destination=../../../tests/mock/queries/queries_mock.go -package=queriesmock stayaccess/internal/usecase/queries CredentialQueries,CredentialReadStore,BookingReadStore

package queries

import (
	"context"
	"time"

	"stayaccess/internal/domain/booking"
	"stayaccess/internal/domain/credential"
	"stayaccess/internal/infra/db"
	"stayaccess/internal/pkg/clock"
	"stayaccess/internal/pkg/token"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VerifyReason string

const (
	ReasonInvalidToken VerifyReason = "invalid_token"
	ReasonNotFound     VerifyReason = "not_found"
	ReasonExpired      VerifyReason = "expired"
	ReasonUsed         VerifyReason = "used"
)

// VerificationResult classifies one presented token. Invalid outcomes carry
// a reason for the caller's own policy; nothing here decides how much of
// that reason is exposed.
type VerificationResult struct {
	Valid       bool
	Reason      VerifyReason
	BookingID   uuid.UUID
	Email       string
	ContactKind booking.ContactKind
}

type BookingView struct {
	ID        uuid.UUID
	Room      string
	CheckIn   time.Time
	CheckOut  time.Time
	Status    string
	CreatedAt time.Time
}

type CredentialReadStore interface {
	FindByToken(ctx context.Context, dbtx db.DBTX, tokenStr string) (*credential.AccessCredential, error)
}

type BookingReadStore interface {
	FindContact(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) (booking.Contact, error)
	FindByID(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) (*BookingView, error)
}

type CredentialQueries interface {
	Verify(ctx context.Context, tokenStr string) (*VerificationResult, error)
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*BookingView, error)
}

type credentialQueriesImpl struct {
	signer       *token.Signer
	credStore    CredentialReadStore
	bookingStore BookingReadStore
	pool         *pgxpool.Pool
	clock        clock.Clock
}

func NewCredentialQueries(
	signer *token.Signer,
	credStore CredentialReadStore,
	bookingStore BookingReadStore,
	pool *pgxpool.Pool,
	clock clock.Clock,
) CredentialQueries {
	return &credentialQueriesImpl{
		signer:       signer,
		credStore:    credStore,
		bookingStore: bookingStore,
		pool:         pool,
		clock:        clock,
	}
}

// Verify never mutates state; it is safe to call repeatedly for the same
// token. Consumption is a separate explicit command.
func (q *credentialQueriesImpl) Verify(ctx context.Context, tokenStr string) (*VerificationResult, error) {
	if _, err := q.signer.Validate(tokenStr); err != nil {
		return invalid(ReasonInvalidToken), nil
	}

	// The persisted row is the single source of truth from here on: a token
	// whose row was swept or never existed is dead no matter what its
	// signature says, and the stored expiry overrides the embedded one.
	cred, err := q.credStore.FindByToken(ctx, q.pool, tokenStr)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return invalid(ReasonNotFound), nil
	}

	if cred.ExpiredAt(q.clock.Now()) {
		return invalid(ReasonExpired), nil
	}
	if cred.Used() {
		return invalid(ReasonUsed), nil
	}

	// Contact kind reflects the booking's current ownership, not what was
	// true at issuance.
	contact, err := q.bookingStore.FindContact(ctx, q.pool, cred.BookingID())
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return invalid(ReasonNotFound), nil
	}

	return &VerificationResult{
		Valid:       true,
		BookingID:   cred.BookingID(),
		Email:       cred.Email(),
		ContactKind: contact.Kind(),
	}, nil
}

func (q *credentialQueriesImpl) GetBooking(ctx context.Context, bookingID uuid.UUID) (*BookingView, error) {
	return q.bookingStore.FindByID(ctx, q.pool, bookingID)
}

func invalid(reason VerifyReason) *VerificationResult {
	return &VerificationResult{Valid: false, Reason: reason}
}
