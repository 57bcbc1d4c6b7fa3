//go:build unit

package credential_test

import (
	"testing"
	"time"

	"stayaccess/internal/domain/credential"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	bookingID := uuid.New()
	issuedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		cred, err := credential.New(bookingID, "guest@example.com", "signed-token", issuedAt, 24*time.Hour)
		require.NoError(t, err)
		require.NotNil(t, cred)

		assert.NotEqual(t, uuid.Nil, cred.ID())
		assert.Equal(t, bookingID, cred.BookingID())
		assert.Equal(t, "guest@example.com", cred.Email())
		assert.Equal(t, "signed-token", cred.Token())
		assert.Equal(t, issuedAt.Add(24*time.Hour), cred.ExpiresAt())
		assert.False(t, cred.Used())
		assert.Equal(t, issuedAt, cred.CreatedAt())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name      string
			bookingID uuid.UUID
			email     string
			token     string
			ttl       time.Duration
			errIs     error
		}{
			{name: "nil booking id", bookingID: uuid.Nil, email: "guest@example.com", token: "tok", ttl: time.Hour, errIs: credential.ErrMissingBookingID},
			{name: "empty email", bookingID: bookingID, email: "", token: "tok", ttl: time.Hour, errIs: credential.ErrEmptyEmail},
			{name: "whitespace email", bookingID: bookingID, email: "   ", token: "tok", ttl: time.Hour, errIs: credential.ErrEmptyEmail},
			{name: "empty token", bookingID: bookingID, email: "guest@example.com", token: "", ttl: time.Hour, errIs: credential.ErrEmptyToken},
			{name: "zero ttl", bookingID: bookingID, email: "guest@example.com", token: "tok", ttl: 0, errIs: credential.ErrNonPositiveTTL},
			{name: "negative ttl", bookingID: bookingID, email: "guest@example.com", token: "tok", ttl: -time.Hour, errIs: credential.ErrNonPositiveTTL},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := credential.New(tc.bookingID, tc.email, tc.token, issuedAt, tc.ttl)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestAccessCredential_ValidAt(t *testing.T) {
	bookingID := uuid.New()
	issuedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	expiresAt := issuedAt.Add(time.Hour)

	cases := []struct {
		name  string
		used  bool
		now   time.Time
		valid bool
	}{
		{name: "fresh credential before expiry", used: false, now: issuedAt, valid: true},
		{name: "one instant before expiry", used: false, now: expiresAt.Add(-time.Nanosecond), valid: true},
		{name: "exactly at expiry", used: false, now: expiresAt, valid: false},
		{name: "after expiry", used: false, now: expiresAt.Add(time.Minute), valid: false},
		{name: "used before expiry", used: true, now: issuedAt, valid: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cred := credential.Restore(uuid.New(), bookingID, "guest@example.com", "tok", expiresAt, tc.used, issuedAt)
			assert.Equal(t, tc.valid, cred.ValidAt(tc.now))
		})
	}
}

func TestAccessCredential_ExpiredAt(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	expiresAt := issuedAt.Add(time.Hour)
	cred := credential.Restore(uuid.New(), uuid.New(), "guest@example.com", "tok", expiresAt, false, issuedAt)

	assert.False(t, cred.ExpiredAt(issuedAt))
	assert.True(t, cred.ExpiredAt(expiresAt))
	assert.True(t, cred.ExpiredAt(expiresAt.Add(time.Second)))
}
