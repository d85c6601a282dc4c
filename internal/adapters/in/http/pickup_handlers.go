package http

import (
	"net/http"
	"time"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/application/usecases/queries"
	"foodbridge/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type requestPickupRequest struct {
	DonationID        string  `json:"donationId" validate:"required,uuid"`
	VolunteerID       string  `json:"volunteerId" validate:"required,uuid"`
	Notes             string  `json:"notes"`
	Distance          float64 `json:"distance" validate:"gte=0"`
	EstimatedDuration int     `json:"estimatedDuration" validate:"gte=0"`
}

type pickupRequestCreatedResponse struct {
	ID string `json:"id"`
}

type activeRequestResponse struct {
	ID          string    `json:"id"`
	DonationID  string    `json:"donationId"`
	VolunteerID string    `json:"volunteerId"`
	Status      string    `json:"status"`
	RequestedAt time.Time `json:"requestedAt"`
	Notes       string    `json:"notes"`
}

// RequestPickup handles POST /api/v1/pickup-requests - a volunteer claims a
// donation.
func (s *Server) RequestPickup(ctx echo.Context) error {
	var req requestPickupRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	donationID, err := kernel.UUIDFromString(req.DonationID)
	if err != nil {
		return respondBadRequest(ctx, "invalid donation id")
	}
	volunteerID, err := kernel.UUIDFromString(req.VolunteerID)
	if err != nil {
		return respondBadRequest(ctx, "invalid volunteer id")
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewRequestPickupCommand(
		requestID, donationID, volunteerID,
		req.Notes, req.Distance, req.EstimatedDuration,
	)
	if err != nil {
		return respondBadRequest(ctx, "invalid pickup request data: "+err.Error())
	}

	if handleErr := s.handlers.RequestPickup.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, pickupRequestCreatedResponse{ID: requestID.String()})
}

// AcceptPickup handles POST /api/v1/pickup-requests/:id/accept.
func (s *Server) AcceptPickup(ctx echo.Context) error {
	requestID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid pickup request id")
	}

	cmd, err := commands.NewAcceptPickupCommand(requestID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if handleErr := s.handlers.AcceptPickup.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartPickup handles POST /api/v1/pickup-requests/:id/start.
func (s *Server) StartPickup(ctx echo.Context) error {
	requestID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid pickup request id")
	}

	cmd, err := commands.NewStartPickupCommand(requestID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if handleErr := s.handlers.StartPickup.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompletePickup handles POST /api/v1/pickup-requests/:id/complete.
func (s *Server) CompletePickup(ctx echo.Context) error {
	requestID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid pickup request id")
	}

	cmd, err := commands.NewCompletePickupCommand(requestID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if handleErr := s.handlers.CompletePickup.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelPickup handles POST /api/v1/pickup-requests/:id/cancel.
func (s *Server) CancelPickup(ctx echo.Context) error {
	requestID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid pickup request id")
	}

	cmd, err := commands.NewCancelPickupCommand(requestID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if handleErr := s.handlers.CancelPickup.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveRequests handles GET /api/v1/pickup-requests/active - lists
// pickup requests still in flight.
func (s *Server) GetActiveRequests(ctx echo.Context) error {
	query := queries.NewGetActiveRequestsQuery()

	requests, err := s.handlers.GetActiveRequests.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]activeRequestResponse, len(requests))
	for i, r := range requests {
		response[i] = activeRequestResponse{
			ID:          r.ID.String(),
			DonationID:  r.DonationID.String(),
			VolunteerID: r.VolunteerID.String(),
			Status:      r.Status,
			RequestedAt: r.RequestedAt,
			Notes:       r.Notes,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
