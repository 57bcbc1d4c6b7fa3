//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stayaccess/internal/domain/booking"
	"stayaccess/internal/domain/credential"
	"stayaccess/internal/pkg/clock"
	"stayaccess/internal/pkg/token"
	"stayaccess/internal/usecase/queries"
	queriesmock "stayaccess/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CredentialQueriesTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockCredStore    *queriesmock.MockCredentialReadStore
	mockBookingStore *queriesmock.MockBookingReadStore
	clock            *clock.MockClock
	signer           *token.Signer
	uc               queries.CredentialQueries

	bookingID uuid.UUID
	email     string
}

func (s *CredentialQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCredStore = queriesmock.NewMockCredentialReadStore(s.mockCtrl)
	s.mockBookingStore = queriesmock.NewMockBookingReadStore(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	s.signer = token.NewSigner("test-guest-access-secret", 24*time.Hour)

	s.uc = queries.NewCredentialQueries(s.signer, s.mockCredStore, s.mockBookingStore, nil, s.clock)

	s.bookingID = uuid.New()
	s.email = "guest@example.com"
}

func (s *CredentialQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCredentialQueriesSuite(t *testing.T) {
	suite.Run(t, new(CredentialQueriesTestSuite))
}

func (s *CredentialQueriesTestSuite) mintToken() string {
	signed, err := s.signer.Mint(s.bookingID, s.email, s.clock.Now())
	s.Require().NoError(err)
	return signed
}

func (s *CredentialQueriesTestSuite) storedCredential(tokenStr string, expiresAt time.Time, used bool) *credential.AccessCredential {
	return credential.Restore(uuid.New(), s.bookingID, s.email, tokenStr, expiresAt, used, s.clock.Now())
}

func (s *CredentialQueriesTestSuite) TestVerify_Valid() {
	tokenStr := s.mintToken()
	cred := s.storedCredential(tokenStr, s.clock.Now().Add(24*time.Hour), false)

	s.mockCredStore.EXPECT().
		FindByToken(gomock.Any(), gomock.Any(), tokenStr).
		Return(cred, nil)
	s.mockBookingStore.EXPECT().
		FindContact(gomock.Any(), gomock.Any(), s.bookingID).
		Return(booking.GuestContact{FirstName: "Ana", Email: s.email}, nil)

	result, err := s.uc.Verify(context.Background(), tokenStr)
	s.Require().NoError(err)

	expected := &queries.VerificationResult{
		Valid:       true,
		BookingID:   s.bookingID,
		Email:       s.email,
		ContactKind: booking.ContactKindGuest,
	}
	if diff := cmp.Diff(expected, result); diff != "" {
		s.Failf("verification result mismatch", "(-want +got):\n%s", diff)
	}
}

func (s *CredentialQueriesTestSuite) TestVerify_ContactKindReflectsCurrentOwnership() {
	tokenStr := s.mintToken()
	cred := s.storedCredential(tokenStr, s.clock.Now().Add(24*time.Hour), false)

	s.mockCredStore.EXPECT().
		FindByToken(gomock.Any(), gomock.Any(), tokenStr).
		Return(cred, nil)
	// The booking was claimed by an account after issuance.
	s.mockBookingStore.EXPECT().
		FindContact(gomock.Any(), gomock.Any(), s.bookingID).
		Return(booking.CustomerContact{Username: "ana", Email: s.email}, nil)

	result, err := s.uc.Verify(context.Background(), tokenStr)
	s.Require().NoError(err)

	s.True(result.Valid)
	s.Equal(booking.ContactKindCustomer, result.ContactKind)
}

func (s *CredentialQueriesTestSuite) TestVerify_InvalidSignature() {
	other := token.NewSigner("different-secret", 24*time.Hour)
	forged, err := other.Mint(s.bookingID, s.email, s.clock.Now())
	s.Require().NoError(err)

	for _, tokenStr := range []string{"", "garbage", forged} {
		result, err := s.uc.Verify(context.Background(), tokenStr)
		s.Require().NoError(err)
		s.False(result.Valid)
		s.Equal(queries.ReasonInvalidToken, result.Reason)
	}
}

// A well-signed token whose row was swept or never persisted is dead.
func (s *CredentialQueriesTestSuite) TestVerify_RowGone() {
	tokenStr := s.mintToken()

	s.mockCredStore.EXPECT().
		FindByToken(gomock.Any(), gomock.Any(), tokenStr).
		Return(nil, nil)

	result, err := s.uc.Verify(context.Background(), tokenStr)
	s.Require().NoError(err)
	s.False(result.Valid)
	s.Equal(queries.ReasonNotFound, result.Reason)
}

// The persisted expiry overrides the embedded one.
func (s *CredentialQueriesTestSuite) TestVerify_Expired() {
	tokenStr := s.mintToken()
	cred := s.storedCredential(tokenStr, s.clock.Now().Add(24*time.Hour), false)

	s.mockCredStore.EXPECT().
		FindByToken(gomock.Any(), gomock.Any(), tokenStr).
		Return(cred, nil)

	s.clock.Add(25 * time.Hour)

	result, err := s.uc.Verify(context.Background(), tokenStr)
	s.Require().NoError(err)
	s.False(result.Valid)
	s.Equal(queries.ReasonExpired, result.Reason)
}

func (s *CredentialQueriesTestSuite) TestVerify_Used() {
	tokenStr := s.mintToken()
	cred := s.storedCredential(tokenStr, s.clock.Now().Add(24*time.Hour), true)

	s.mockCredStore.EXPECT().
		FindByToken(gomock.Any(), gomock.Any(), tokenStr).
		Return(cred, nil)

	result, err := s.uc.Verify(context.Background(), tokenStr)
	s.Require().NoError(err)
	s.False(result.Valid)
	s.Equal(queries.ReasonUsed, result.Reason)
}

func (s *CredentialQueriesTestSuite) TestVerify_BookingContactGone() {
	tokenStr := s.mintToken()
	cred := s.storedCredential(tokenStr, s.clock.Now().Add(24*time.Hour), false)

	s.mockCredStore.EXPECT().
		FindByToken(gomock.Any(), gomock.Any(), tokenStr).
		Return(cred, nil)
	s.mockBookingStore.EXPECT().
		FindContact(gomock.Any(), gomock.Any(), s.bookingID).
		Return(nil, nil)

	result, err := s.uc.Verify(context.Background(), tokenStr)
	s.Require().NoError(err)
	s.False(result.Valid)
	s.Equal(queries.ReasonNotFound, result.Reason)
}

func (s *CredentialQueriesTestSuite) TestVerify_StoreFailure() {
	tokenStr := s.mintToken()
	boom := errors.New("connection reset")

	s.mockCredStore.EXPECT().
		FindByToken(gomock.Any(), gomock.Any(), tokenStr).
		Return(nil, boom)

	_, err := s.uc.Verify(context.Background(), tokenStr)
	s.ErrorIs(err, boom)
}

func (s *CredentialQueriesTestSuite) TestGetBooking() {
	view := &queries.BookingView{
		ID:     s.bookingID,
		Room:   "204",
		Status: "confirmed",
	}
	s.mockBookingStore.EXPECT().
		FindByID(gomock.Any(), gomock.Any(), s.bookingID).
		Return(view, nil)

	got, err := s.uc.GetBooking(context.Background(), s.bookingID)
	s.Require().NoError(err)
	s.Equal(view, got)
}
