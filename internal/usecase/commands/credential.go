//go:generate mockgen -destination=../../../tests/mock/commands/commands_mock.go -package=commandsmock stayaccess/internal/usecase/commands CredentialCommands,CredentialWriter,CredentialReads,BookingReads,Notifier,CredentialSweeper

package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"stayaccess/internal/domain/booking"
	"stayaccess/internal/domain/credential"
	"stayaccess/internal/infra/db"
	"stayaccess/internal/infra/tx"
	"stayaccess/internal/pkg/clock"
	"stayaccess/internal/pkg/errs"
	"stayaccess/internal/pkg/token"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrInvalidInput    = errs.New("invalid access request")
	ErrBookingNotFound = errs.New("booking not found or email does not match")
	ErrDeliveryFailed  = errs.New("access credential delivery failed")
)

type IssueResult struct {
	Token     string
	Reused    bool
	ExpiresAt time.Time
}

type CredentialWriter interface {
	Insert(ctx context.Context, dbtx db.DBTX, cred *credential.AccessCredential) error
	MarkUsed(ctx context.Context, tokenStr string) error
}

type CredentialReads interface {
	FindValid(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID, email string, now time.Time) (*credential.AccessCredential, error)
}

type BookingReads interface {
	FindContactForEmail(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID, email string) (booking.Contact, error)
}

// Notifier delivers a committed credential to its contact. Implementations
// are external channels (email today) and are never called inside a
// transaction.
type Notifier interface {
	DeliverAccess(ctx context.Context, contact booking.Contact, tokenStr string, bookingID uuid.UUID) error
}

type CredentialCommands interface {
	Issue(ctx context.Context, bookingID uuid.UUID, email string) (*IssueResult, error)
	Consume(ctx context.Context, tokenStr string) error
}

type credentialCommandsImpl struct {
	coordinator  *tx.Coordinator
	credWriter   CredentialWriter
	credReads    CredentialReads
	bookingReads BookingReads
	notifier     Notifier
	signer       *token.Signer
	clock        clock.Clock
}

func NewCredentialCommands(
	coordinator *tx.Coordinator,
	credWriter CredentialWriter,
	credReads CredentialReads,
	bookingReads BookingReads,
	notifier Notifier,
	signer *token.Signer,
	clock clock.Clock,
) CredentialCommands {
	return &credentialCommandsImpl{
		coordinator:  coordinator,
		credWriter:   credWriter,
		credReads:    credReads,
		bookingReads: bookingReads,
		notifier:     notifier,
		signer:       signer,
		clock:        clock,
	}
}

type issueOutcome struct {
	result  *IssueResult
	contact booking.Contact
}

// Issue resolves the booking's contact, reuses the newest still-valid
// credential for the pair, or mints and persists a new one — all as one
// serializable unit of work. Under concurrent requests for the same pair
// the database aborts the losers, which restart, observe the winner's row,
// and reuse it: at most one valid credential per pair survives.
//
// Delivery happens strictly after commit. The coordinator re-executes the
// unit of work from the top on conflict, so nothing non-idempotent may live
// inside it.
func (u *credentialCommandsImpl) Issue(ctx context.Context, bookingID uuid.UUID, email string) (*IssueResult, error) {
	if bookingID == uuid.Nil || strings.TrimSpace(email) == "" {
		return nil, ErrInvalidInput
	}

	outcome, err := tx.Run(ctx, u.coordinator, func(pgxTx pgx.Tx) (issueOutcome, error) {
		return u.resolveOrMint(ctx, pgxTx, bookingID, email)
	})
	if err != nil {
		return nil, err
	}

	// A failed delivery does not roll anything back: the credential is
	// committed, stays valid, and a retried Issue reuses it instead of
	// minting a duplicate.
	if err := u.notifier.DeliverAccess(ctx, outcome.contact, outcome.result.Token, bookingID); err != nil {
		slog.Warn("access credential delivery failed",
			"booking_id", bookingID,
			"reused", outcome.result.Reused,
			"error", err.Error())
		return nil, errs.Mark(err, ErrDeliveryFailed)
	}

	return outcome.result, nil
}

func (u *credentialCommandsImpl) resolveOrMint(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID, email string) (issueOutcome, error) {
	var zero issueOutcome

	contact, err := u.bookingReads.FindContactForEmail(ctx, dbtx, bookingID, email)
	if err != nil {
		return zero, err
	}
	if contact == nil {
		return zero, ErrBookingNotFound
	}

	now := u.clock.Now()

	existing, err := u.credReads.FindValid(ctx, dbtx, bookingID, email, now)
	if err != nil {
		return zero, err
	}
	if existing != nil {
		return issueOutcome{
			result: &IssueResult{
				Token:     existing.Token(),
				Reused:    true,
				ExpiresAt: existing.ExpiresAt(),
			},
			contact: contact,
		}, nil
	}

	signed, err := u.signer.Mint(bookingID, email, now)
	if err != nil {
		return zero, err
	}

	cred, err := credential.New(bookingID, email, signed, now, u.signer.TTL())
	if err != nil {
		return zero, err
	}

	if err := u.credWriter.Insert(ctx, dbtx, cred); err != nil {
		return zero, err
	}

	return issueOutcome{
		result: &IssueResult{
			Token:     signed,
			Reused:    false,
			ExpiresAt: cred.ExpiresAt(),
		},
		contact: contact,
	}, nil
}

// Consume flips the used flag. Verification never does this implicitly;
// call sites that need single-use semantics opt in here.
func (u *credentialCommandsImpl) Consume(ctx context.Context, tokenStr string) error {
	if tokenStr == "" {
		return ErrInvalidInput
	}
	return u.credWriter.MarkUsed(ctx, tokenStr)
}
