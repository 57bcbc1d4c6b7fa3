package api

import (
	"errors"
	"net/http"
	"strings"

	reqdto "stayaccess/internal/handler/dto/request"
	resdto "stayaccess/internal/handler/dto/response"
	"stayaccess/internal/handler/httperr"
	"stayaccess/internal/infra/tx"
	"stayaccess/internal/usecase/commands"
	"stayaccess/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Denials deliberately share one message: callers must not learn whether
// the booking exists, the email mismatched, or the token expired.
const accessDeniedMessage = "Access denied"

type GuestAccessHandler struct {
	credentialCommands commands.CredentialCommands
	credentialQueries  queries.CredentialQueries
}

func NewGuestAccessHandler(
	credentialCommands commands.CredentialCommands,
	credentialQueries queries.CredentialQueries,
) *GuestAccessHandler {
	return &GuestAccessHandler{
		credentialCommands: credentialCommands,
		credentialQueries:  credentialQueries,
	}
}

// @Summary Request guest booking access
// @Description Issue (or reuse) a time-limited access credential for a booking, delivered to the booking's contact email
// @Tags guest-access
// @Accept json
// @Produce json
// @Param request body reqdto.IssueAccessRequest true "Booking and contact email"
// @Success 200 {object} resdto.IssueAccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /guest/access [post]
func (h *GuestAccessHandler) Issue(c *gin.Context) {
	var req reqdto.IssueAccessRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", "")
		return
	}

	result, err := h.credentialCommands.Issue(c.Request.Context(), req.BookingID, req.NormalizedEmail())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", "")
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, accessDeniedMessage, "")
		case errors.Is(err, commands.ErrDeliveryFailed):
			// The credential is committed; retrying the request reuses it
			// instead of minting another.
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Access was granted but the notification could not be delivered", "delivery_failed")
		case errors.Is(err, tx.ErrMaxRetriesExceeded):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Temporarily unable to process the request, please retry", "")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromIssueResult(result))
}

// @Summary View a booking with a guest access token
// @Description Verify the presented token and return the booking it grants read access to
// @Tags guest-access
// @Produce json
// @Param id path string true "Booking ID"
// @Param token query string false "Access token (alternative to Authorization header)"
// @Success 200 {object} resdto.GuestBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /guest/bookings/{id} [get]
func (h *GuestAccessHandler) GetBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", "")
		return
	}

	tokenStr := extractToken(c)
	if tokenStr == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrInvalidInput, accessDeniedMessage, "")
		return
	}

	verification, err := h.credentialQueries.Verify(c.Request.Context(), tokenStr)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		return
	}
	if !verification.Valid || verification.BookingID != bookingID {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrBookingNotFound, accessDeniedMessage, "")
		return
	}

	view, err := h.credentialQueries.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		return
	}
	if view == nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrBookingNotFound, accessDeniedMessage, "")
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view, verification))
}

// @Summary Consume a guest access token
// @Description Mark a credential as used for call sites that need single-use semantics
// @Tags guest-access
// @Accept json
// @Success 204
// @Failure 400 {object} httperr.Response
// @Router /guest/access/consume [post]
func (h *GuestAccessHandler) Consume(c *gin.Context) {
	var req reqdto.ConsumeAccessRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", "")
		return
	}

	if err := h.credentialCommands.Consume(c.Request.Context(), req.Token); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", "")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func extractToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		if after, found := strings.CutPrefix(auth, "Bearer "); found {
			return after
		}
	}
	return c.Query("token")
}
