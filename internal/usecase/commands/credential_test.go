//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stayaccess/internal/domain/booking"
	"stayaccess/internal/domain/credential"
	"stayaccess/internal/infra/tx"
	"stayaccess/internal/pkg/clock"
	"stayaccess/internal/pkg/token"
	"stayaccess/internal/usecase/commands"
	commandsmock "stayaccess/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeTx embeds pgx.Tx for the methods the coordinator never touches.
type fakeTx struct {
	pgx.Tx
}

func (f *fakeTx) Commit(_ context.Context) error   { return nil }
func (f *fakeTx) Rollback(_ context.Context) error { return pgx.ErrTxClosed }

type fakeBeginner struct{}

func (f *fakeBeginner) BeginTx(_ context.Context, _ pgx.TxOptions) (pgx.Tx, error) {
	return &fakeTx{}, nil
}

type CredentialCommandsTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockCredWriter   *commandsmock.MockCredentialWriter
	mockCredReads    *commandsmock.MockCredentialReads
	mockBookingReads *commandsmock.MockBookingReads
	mockNotifier     *commandsmock.MockNotifier
	clock            *clock.MockClock
	signer           *token.Signer
	uc               commands.CredentialCommands

	bookingID uuid.UUID
	email     string
	contact   booking.Contact
}

func (s *CredentialCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCredWriter = commandsmock.NewMockCredentialWriter(s.mockCtrl)
	s.mockCredReads = commandsmock.NewMockCredentialReads(s.mockCtrl)
	s.mockBookingReads = commandsmock.NewMockBookingReads(s.mockCtrl)
	s.mockNotifier = commandsmock.NewMockNotifier(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	s.signer = token.NewSigner("test-guest-access-secret", 24*time.Hour)

	coordinator := tx.NewCoordinator(&fakeBeginner{}, 3)
	s.uc = commands.NewCredentialCommands(
		coordinator,
		s.mockCredWriter,
		s.mockCredReads,
		s.mockBookingReads,
		s.mockNotifier,
		s.signer,
		s.clock,
	)

	s.bookingID = uuid.New()
	s.email = "guest@example.com"
	s.contact = booking.GuestContact{
		FirstName: "Ana",
		LastName:  "Silva",
		Email:     s.email,
	}
}

func (s *CredentialCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCredentialCommandsSuite(t *testing.T) {
	suite.Run(t, new(CredentialCommandsTestSuite))
}

func (s *CredentialCommandsTestSuite) TestIssue_MintsWhenNoValidCredentialExists() {
	now := s.clock.Now()

	s.mockBookingReads.EXPECT().
		FindContactForEmail(gomock.Any(), gomock.Any(), s.bookingID, s.email).
		Return(s.contact, nil)
	s.mockCredReads.EXPECT().
		FindValid(gomock.Any(), gomock.Any(), s.bookingID, s.email, now).
		Return(nil, nil)

	var inserted *credential.AccessCredential
	s.mockCredWriter.EXPECT().
		Insert(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, cred *credential.AccessCredential) error {
			inserted = cred
			return nil
		})
	s.mockNotifier.EXPECT().
		DeliverAccess(gomock.Any(), s.contact, gomock.Any(), s.bookingID).
		Return(nil)

	result, err := s.uc.Issue(context.Background(), s.bookingID, s.email)
	s.Require().NoError(err)

	s.False(result.Reused)
	s.Equal(now.Add(24*time.Hour), result.ExpiresAt)
	s.Require().NotNil(inserted)
	s.Equal(result.Token, inserted.Token())
	s.Equal(s.bookingID, inserted.BookingID())

	claims, err := s.signer.Validate(result.Token)
	s.Require().NoError(err)
	s.Equal(s.bookingID, claims.BookingID)
	s.Equal(s.email, claims.Email)
}

func (s *CredentialCommandsTestSuite) TestIssue_ReusesExistingValidCredential() {
	now := s.clock.Now()
	existing := credential.Restore(
		uuid.New(), s.bookingID, s.email, "existing-token",
		now.Add(6*time.Hour), false, now.Add(-18*time.Hour))

	s.mockBookingReads.EXPECT().
		FindContactForEmail(gomock.Any(), gomock.Any(), s.bookingID, s.email).
		Return(s.contact, nil)
	s.mockCredReads.EXPECT().
		FindValid(gomock.Any(), gomock.Any(), s.bookingID, s.email, now).
		Return(existing, nil)
	// A reused credential is still delivered.
	s.mockNotifier.EXPECT().
		DeliverAccess(gomock.Any(), s.contact, "existing-token", s.bookingID).
		Return(nil)

	result, err := s.uc.Issue(context.Background(), s.bookingID, s.email)
	s.Require().NoError(err)

	s.True(result.Reused)
	s.Equal("existing-token", result.Token)
	s.Equal(existing.ExpiresAt(), result.ExpiresAt)
}

func (s *CredentialCommandsTestSuite) TestIssue_InvalidInput() {
	cases := []struct {
		name      string
		bookingID uuid.UUID
		email     string
	}{
		{name: "nil booking id", bookingID: uuid.Nil, email: s.email},
		{name: "empty email", bookingID: s.bookingID, email: ""},
		{name: "whitespace email", bookingID: s.bookingID, email: "   "},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.uc.Issue(context.Background(), tc.bookingID, tc.email)
			s.ErrorIs(err, commands.ErrInvalidInput)
		})
	}
}

func (s *CredentialCommandsTestSuite) TestIssue_BookingNotFound() {
	s.mockBookingReads.EXPECT().
		FindContactForEmail(gomock.Any(), gomock.Any(), s.bookingID, s.email).
		Return(nil, nil)

	_, err := s.uc.Issue(context.Background(), s.bookingID, s.email)
	s.ErrorIs(err, commands.ErrBookingNotFound)
}

func (s *CredentialCommandsTestSuite) TestIssue_DeliveryFailureAfterCommit() {
	now := s.clock.Now()

	s.mockBookingReads.EXPECT().
		FindContactForEmail(gomock.Any(), gomock.Any(), s.bookingID, s.email).
		Return(s.contact, nil)
	s.mockCredReads.EXPECT().
		FindValid(gomock.Any(), gomock.Any(), s.bookingID, s.email, now).
		Return(nil, nil)
	s.mockCredWriter.EXPECT().
		Insert(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	s.mockNotifier.EXPECT().
		DeliverAccess(gomock.Any(), s.contact, gomock.Any(), s.bookingID).
		Return(errors.New("smtp unreachable"))

	_, err := s.uc.Issue(context.Background(), s.bookingID, s.email)
	s.ErrorIs(err, commands.ErrDeliveryFailed)
	s.NotErrorIs(err, commands.ErrBookingNotFound)
}

func (s *CredentialCommandsTestSuite) TestIssue_StoreFailurePropagates() {
	boom := errors.New("connection reset")

	s.mockBookingReads.EXPECT().
		FindContactForEmail(gomock.Any(), gomock.Any(), s.bookingID, s.email).
		Return(nil, boom)

	_, err := s.uc.Issue(context.Background(), s.bookingID, s.email)
	s.ErrorIs(err, boom)
}

func (s *CredentialCommandsTestSuite) TestConsume() {
	s.Run("marks the token used", func() {
		s.mockCredWriter.EXPECT().MarkUsed(gomock.Any(), "some-token").Return(nil)
		s.NoError(s.uc.Consume(context.Background(), "some-token"))
	})

	s.Run("rejects an empty token", func() {
		err := s.uc.Consume(context.Background(), "")
		s.ErrorIs(err, commands.ErrInvalidInput)
	})
}
