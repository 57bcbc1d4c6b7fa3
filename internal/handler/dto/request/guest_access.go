package request

import (
	"strings"

	"github.com/google/uuid"
)

type IssueAccessRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
	Email     string    `json:"email" binding:"required,email"`
}

// NormalizedEmail trims surrounding whitespace only. The stored contact
// address is matched case-sensitively, so no case folding happens here.
func (r IssueAccessRequest) NormalizedEmail() string {
	return strings.TrimSpace(r.Email)
}

type ConsumeAccessRequest struct {
	Token string `json:"token" binding:"required"`
}
