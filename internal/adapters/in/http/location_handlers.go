package http

import (
	"net/http"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/application/usecases/queries"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/location"

	"github.com/labstack/echo/v4"
)

type addLocationRequest struct {
	Name          string  `json:"name" validate:"required"`
	Address       string  `json:"address" validate:"required"`
	Latitude      float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude     float64 `json:"longitude" validate:"min=-180,max=180"`
	Type          string  `json:"type" validate:"required,oneof=restaurant shelter community_center pickup_point"`
	ContactPerson string  `json:"contactPerson"`
	PhoneNumber   string  `json:"phoneNumber"`
	Hours         string  `json:"hours"`
}

type locationCreatedResponse struct {
	ID string `json:"id"`
}

type locationResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Type      string  `json:"type"`
	Hours     string  `json:"hours"`
}

// AddLocation handles POST /api/v1/locations - registers a reference
// location.
func (s *Server) AddLocation(ctx echo.Context) error {
	var req addLocationRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	locationID := kernel.NewUUID()
	cmd, err := commands.NewAddLocationCommand(
		locationID,
		req.Name, req.Address,
		req.Latitude, req.Longitude,
		location.Type(req.Type),
		req.ContactPerson, req.PhoneNumber, req.Hours,
	)
	if err != nil {
		return respondBadRequest(ctx, "invalid location data: "+err.Error())
	}

	if handleErr := s.handlers.AddLocation.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, locationCreatedResponse{ID: locationID.String()})
}

// GetLocations handles GET /api/v1/locations - lists active reference
// locations.
func (s *Server) GetLocations(ctx echo.Context) error {
	query := queries.NewGetLocationsQuery()

	locations, err := s.handlers.GetLocations.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]locationResponse, len(locations))
	for i, l := range locations {
		response[i] = locationResponse{
			ID:        l.ID.String(),
			Name:      l.Name,
			Address:   l.Address,
			Latitude:  l.Latitude,
			Longitude: l.Longitude,
			Type:      l.Type,
			Hours:     l.Hours,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
