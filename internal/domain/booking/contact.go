// Package booking holds the read-only booking views this service consumes.
// The service never owns or mutates bookings; it only resolves who is
// currently authorized to receive access to one.
package booking

import "errors"

var ErrUnknownContactKind = errors.New("unknown contact kind")

type ContactKind string

const (
	ContactKindCustomer ContactKind = "customer"
	ContactKindGuest    ContactKind = "guest"
)

func (k ContactKind) String() string {
	return string(k)
}

// Contact is a closed sum: a booking's authoritative contact is either the
// linked account holder or a guest record, never both. Variants carry their
// own fields so callers cannot read a field the other source would have
// left unset.
type Contact interface {
	Kind() ContactKind
	ContactEmail() string
	DisplayName() string

	sealed()
}

type CustomerContact struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Username  string
}

func (c CustomerContact) Kind() ContactKind { return ContactKindCustomer }
func (c CustomerContact) ContactEmail() string {
	return c.Email
}

func (c CustomerContact) DisplayName() string {
	return joinName(c.FirstName, c.LastName)
}

func (CustomerContact) sealed() {}

type GuestContact struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

func (g GuestContact) Kind() ContactKind { return ContactKindGuest }
func (g GuestContact) ContactEmail() string {
	return g.Email
}

func (g GuestContact) DisplayName() string {
	return joinName(g.FirstName, g.LastName)
}

func (GuestContact) sealed() {}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
