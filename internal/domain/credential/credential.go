// Package credential models one issued grant of temporary read access to a
// booking: a signed token plus the persisted row that controls its life.
package credential

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingBookingID = errors.New("booking id is required")
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrEmptyToken       = errors.New("token cannot be empty")
	ErrNonPositiveTTL   = errors.New("ttl must be positive")
)

type AccessCredential struct {
	id        uuid.UUID
	bookingID uuid.UUID
	email     string
	token     string
	expiresAt time.Time
	used      bool
	createdAt time.Time
}

// New mints a credential record at issuedAt. Expiry is issuedAt+ttl, the
// same instant the signed token embeds.
func New(bookingID uuid.UUID, email, token string, issuedAt time.Time, ttl time.Duration) (*AccessCredential, error) {
	if bookingID == uuid.Nil {
		return nil, ErrMissingBookingID
	}
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmptyEmail
	}
	if token == "" {
		return nil, ErrEmptyToken
	}
	if ttl <= 0 {
		return nil, ErrNonPositiveTTL
	}

	return &AccessCredential{
		id:        uuid.New(),
		bookingID: bookingID,
		email:     email,
		token:     token,
		expiresAt: issuedAt.Add(ttl),
		used:      false,
		createdAt: issuedAt,
	}, nil
}

// Restore rehydrates a credential from storage without re-validation.
func Restore(id, bookingID uuid.UUID, email, token string, expiresAt time.Time, used bool, createdAt time.Time) *AccessCredential {
	return &AccessCredential{
		id:        id,
		bookingID: bookingID,
		email:     email,
		token:     token,
		expiresAt: expiresAt,
		used:      used,
		createdAt: createdAt,
	}
}

func (c *AccessCredential) ID() uuid.UUID        { return c.id }
func (c *AccessCredential) BookingID() uuid.UUID { return c.bookingID }
func (c *AccessCredential) Email() string        { return c.email }
func (c *AccessCredential) Token() string        { return c.token }
func (c *AccessCredential) ExpiresAt() time.Time { return c.expiresAt }
func (c *AccessCredential) Used() bool           { return c.used }
func (c *AccessCredential) CreatedAt() time.Time { return c.createdAt }

// ValidAt reports whether the credential still grants access: unexpired and
// not yet consumed.
func (c *AccessCredential) ValidAt(now time.Time) bool {
	return !c.used && c.expiresAt.After(now)
}

func (c *AccessCredential) ExpiredAt(now time.Time) bool {
	return !c.expiresAt.After(now)
}
