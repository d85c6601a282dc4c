package http

import (
	"net/http"
	"time"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/application/usecases/queries"
	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type donationDetailsPayload struct {
	Description         string `json:"description"`
	PickupLocation      string `json:"pickupLocation"`
	DeliveryLocation    string `json:"deliveryLocation"`
	SpecialInstructions string `json:"specialInstructions"`
}

type postDonationRequest struct {
	RestaurantID string    `json:"restaurantId" validate:"required,uuid"`
	FoodItem     string    `json:"foodItem" validate:"required"`
	Quantity     int       `json:"quantity" validate:"required,gt=0"`
	Weight       float64   `json:"weight" validate:"required,gt=0"`
	ExpiryDate   time.Time `json:"expiryDate" validate:"required"`

	donationDetailsPayload
}

type updateDonationRequest struct {
	FoodItem   *string    `json:"foodItem,omitempty"`
	Quantity   *int       `json:"quantity,omitempty"`
	Weight     *float64   `json:"weight,omitempty"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty"`

	Details *donationDetailsPayload `json:"details,omitempty"`
}

type donationCreatedResponse struct {
	ID string `json:"id"`
}

type availableDonationResponse struct {
	ID             string    `json:"id"`
	RestaurantID   string    `json:"restaurantId"`
	FoodItem       string    `json:"foodItem"`
	Quantity       int       `json:"quantity"`
	Weight         float64   `json:"weight"`
	ExpiryDate     time.Time `json:"expiryDate"`
	PickupLocation string    `json:"pickupLocation"`
}

type donationResponse struct {
	ID             string  `json:"id"`
	RestaurantID   string  `json:"restaurantId"`
	RestaurantName string  `json:"restaurantName"`
	VolunteerID    *string `json:"volunteerId,omitempty"`
	VolunteerName  *string `json:"volunteerName,omitempty"`

	FoodItem   string    `json:"foodItem"`
	Quantity   int       `json:"quantity"`
	Weight     float64   `json:"weight"`
	ExpiryDate time.Time `json:"expiryDate"`

	Description         string `json:"description"`
	PickupLocation      string `json:"pickupLocation"`
	DeliveryLocation    string `json:"deliveryLocation"`
	SpecialInstructions string `json:"specialInstructions"`

	Status         string     `json:"status"`
	PickupTime     *time.Time `json:"pickupTime,omitempty"`
	CompletionTime *time.Time `json:"completionTime,omitempty"`
}

// PostDonation handles POST /api/v1/donations - posts a surplus food donation.
func (s *Server) PostDonation(ctx echo.Context) error {
	var req postDonationRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return respondBadRequest(ctx, "invalid restaurant id")
	}

	donationID := kernel.NewUUID()
	cmd, err := commands.NewPostDonationCommand(
		donationID,
		restaurantID,
		req.FoodItem,
		req.Quantity,
		req.Weight,
		req.ExpiryDate,
		donation.Details{
			Description:         req.Description,
			PickupLocation:      req.PickupLocation,
			DeliveryLocation:    req.DeliveryLocation,
			SpecialInstructions: req.SpecialInstructions,
		},
	)
	if err != nil {
		return respondBadRequest(ctx, "invalid donation data: "+err.Error())
	}

	if handleErr := s.handlers.PostDonation.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, donationCreatedResponse{ID: donationID.String()})
}

// UpdateDonation handles PATCH /api/v1/donations/:id - partially updates
// descriptive fields of a donation.
func (s *Server) UpdateDonation(ctx echo.Context) error {
	donationID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid donation id")
	}

	var req updateDonationRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	var details *donation.Details
	if req.Details != nil {
		details = &donation.Details{
			Description:         req.Details.Description,
			PickupLocation:      req.Details.PickupLocation,
			DeliveryLocation:    req.Details.DeliveryLocation,
			SpecialInstructions: req.Details.SpecialInstructions,
		}
	}

	cmd, err := commands.NewUpdateDonationCommand(
		donationID, req.FoodItem, req.Quantity, req.Weight, req.ExpiryDate, details,
	)
	if err != nil {
		return respondBadRequest(ctx, "invalid donation data: "+err.Error())
	}

	if handleErr := s.handlers.UpdateDonation.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteDonation handles DELETE /api/v1/donations/:id - removes a donation
// along with its pickup requests.
func (s *Server) DeleteDonation(ctx echo.Context) error {
	donationID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid donation id")
	}

	cmd, err := commands.NewDeleteDonationCommand(donationID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if handleErr := s.handlers.DeleteDonation.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAvailableDonations handles GET /api/v1/donations - lists claimable
// donations ordered by expiry date.
func (s *Server) GetAvailableDonations(ctx echo.Context) error {
	query := queries.NewGetAvailableDonationsQuery()

	donations, err := s.handlers.GetAvailableDonations.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]availableDonationResponse, len(donations))
	for i, d := range donations {
		response[i] = availableDonationResponse{
			ID:             d.ID.String(),
			RestaurantID:   d.RestaurantID.String(),
			FoodItem:       d.FoodItem,
			Quantity:       d.Quantity,
			Weight:         d.Weight,
			ExpiryDate:     d.ExpiryDate,
			PickupLocation: d.PickupLocation,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDonation handles GET /api/v1/donations/:id - returns one donation in
// full.
func (s *Server) GetDonation(ctx echo.Context) error {
	donationID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid donation id")
	}

	query, err := queries.NewGetDonationQuery(donationID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	d, err := s.handlers.GetDonation.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	var volunteerID *string
	if d.VolunteerID != nil {
		v := d.VolunteerID.String()
		volunteerID = &v
	}

	return ctx.JSON(http.StatusOK, donationResponse{
		ID:                  d.ID.String(),
		RestaurantID:        d.RestaurantID.String(),
		RestaurantName:      d.RestaurantName,
		VolunteerID:         volunteerID,
		VolunteerName:       d.VolunteerName,
		FoodItem:            d.FoodItem,
		Quantity:            d.Quantity,
		Weight:              d.Weight,
		ExpiryDate:          d.ExpiryDate,
		Description:         d.Description,
		PickupLocation:      d.PickupLocation,
		DeliveryLocation:    d.DeliveryLocation,
		SpecialInstructions: d.SpecialInstructions,
		Status:              d.Status,
		PickupTime:          d.PickupTime,
		CompletionTime:      d.CompletionTime,
	})
}
