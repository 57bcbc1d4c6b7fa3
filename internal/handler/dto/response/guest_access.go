package response

import (
	"time"

	"stayaccess/internal/usecase/commands"
	"stayaccess/internal/usecase/queries"

	"github.com/google/uuid"
)

type IssueAccessResponse struct {
	Token     string    `json:"token"`
	Reused    bool      `json:"reused"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromIssueResult(result *commands.IssueResult) IssueAccessResponse {
	return IssueAccessResponse{
		Token:     result.Token,
		Reused:    result.Reused,
		ExpiresAt: result.ExpiresAt,
	}
}

type GuestBookingResponse struct {
	Booking     BookingResponse `json:"booking"`
	Email       string          `json:"email"`
	ContactKind string          `json:"contact_kind"`
}

type BookingResponse struct {
	ID        uuid.UUID `json:"id"`
	Room      string    `json:"room"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func FromBookingView(view *queries.BookingView, verification *queries.VerificationResult) GuestBookingResponse {
	return GuestBookingResponse{
		Booking: BookingResponse{
			ID:        view.ID,
			Room:      view.Room,
			CheckIn:   view.CheckIn,
			CheckOut:  view.CheckOut,
			Status:    view.Status,
			CreatedAt: view.CreatedAt,
		},
		Email:       verification.Email,
		ContactKind: verification.ContactKind.String(),
	}
}
