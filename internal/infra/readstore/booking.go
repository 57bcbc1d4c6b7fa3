package readstore

import (
	"context"
	"errors"
	"time"

	"stayaccess/internal/domain/booking"
	"stayaccess/internal/infra"
	"stayaccess/internal/infra/db"
	"stayaccess/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BookingReadStore resolves a booking's authoritative contact and serves
// the booking view returned to verified guests. Bookings are owned by the
// surrounding system; everything here is read-only.
type BookingReadStore struct{}

func NewBookingReadStore() *BookingReadStore {
	return &BookingReadStore{}
}

// FindContact resolves the current authoritative contact: the linked
// account holder when the booking carries a user reference, otherwise the
// guest contact record. Returns nil when the booking does not exist or has
// no contact source.
func (s *BookingReadStore) FindContact(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) (booking.Contact, error) {
	const q = `
		SELECT b.user_id,
		       u.first_name, u.last_name, u.email, u.phone, u.username,
		       g.first_name, g.last_name, g.email, g.phone
		FROM bookings b
		LEFT JOIN users u ON u.id = b.user_id
		LEFT JOIN guest_contacts g ON g.booking_id = b.id
		WHERE b.id = $1
	`

	var (
		userID                                  *uuid.UUID
		uFirst, uLast, uEmail, uPhone, uUser    *string
		gFirst, gLast, gEmail, gPhone           *string
	)

	err := dbtx.QueryRow(ctx, q, bookingID).Scan(
		&userID,
		&uFirst, &uLast, &uEmail, &uPhone, &uUser,
		&gFirst, &gLast, &gEmail, &gPhone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to resolve booking contact", err)
	}

	if userID != nil {
		if uEmail == nil {
			// dangling user reference; treat as missing contact
			return nil, nil
		}
		return booking.CustomerContact{
			FirstName: deref(uFirst),
			LastName:  deref(uLast),
			Email:     *uEmail,
			Phone:     deref(uPhone),
			Username:  deref(uUser),
		}, nil
	}

	if gEmail == nil {
		return nil, nil
	}
	return booking.GuestContact{
		FirstName: deref(gFirst),
		LastName:  deref(gLast),
		Email:     *gEmail,
		Phone:     deref(gPhone),
	}, nil
}

// FindContactForEmail additionally requires the supplied email to match the
// stored contact address exactly (case-sensitive). Mismatch and absence are
// indistinguishable to the caller.
func (s *BookingReadStore) FindContactForEmail(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID, email string) (booking.Contact, error) {
	contact, err := s.FindContact(ctx, dbtx, bookingID)
	if err != nil {
		return nil, err
	}
	if contact == nil || contact.ContactEmail() != email {
		return nil, nil
	}

	return contact, nil
}

func (s *BookingReadStore) FindByID(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) (*queries.BookingView, error) {
	const q = `
		SELECT id, room, check_in, check_out, status, created_at
		FROM bookings
		WHERE id = $1
	`

	var (
		id        uuid.UUID
		room      string
		checkIn   time.Time
		checkOut  time.Time
		status    string
		createdAt time.Time
	)

	err := dbtx.QueryRow(ctx, q, bookingID).Scan(&id, &room, &checkIn, &checkOut, &status, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return &queries.BookingView{
		ID:        id,
		Room:      room,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Status:    status,
		CreatedAt: createdAt,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
