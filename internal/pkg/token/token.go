// Package token signs and validates guest booking access tokens with a
// process-wide HMAC secret.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// PurposeGuestBookingAccess is embedded in every minted token; validation
// rejects any other purpose so unrelated tokens signed with the same secret
// can never grant booking access.
const PurposeGuestBookingAccess = "guest_booking_access"

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	BookingID uuid.UUID `json:"booking_id"`
	Email     string    `json:"email"`
	Purpose   string    `json:"purpose"`
	jwt.RegisteredClaims
}

type Signer struct {
	secretKey []byte
	tokenTTL  time.Duration
}

func NewSigner(secretKey string, tokenTTL time.Duration) *Signer {
	return &Signer{
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
	}
}

func (s *Signer) TTL() time.Duration {
	return s.tokenTTL
}

// Mint signs a token for one (booking, email) pair. The caller supplies
// issuedAt so the embedded expiry and the persisted expires_at always come
// from the same instant. The jti keeps token strings globally unique even
// when two tokens for the same pair are minted within one second.
func (s *Signer) Mint(bookingID uuid.UUID, email string, issuedAt time.Time) (string, error) {
	claims := Claims{
		BookingID: bookingID,
		Email:     email,
		Purpose:   PurposeGuestBookingAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.tokenTTL)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secretKey)
}

// Validate checks the signature and purpose only. The embedded expiry is
// advisory; the persisted credential row is the single source of truth for
// expiry and revocation, so claim-time validation is disabled here.
func (s *Signer) Validate(tokenString string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	}, jwt.WithoutClaimsValidation())

	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Purpose != PurposeGuestBookingAccess {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
