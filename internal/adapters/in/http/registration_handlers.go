package http

import (
	"net/http"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/volunteer"

	"github.com/labstack/echo/v4"
)

type registerRestaurantRequest struct {
	Username    string `json:"username" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`

	RestaurantName string `json:"restaurantName" validate:"required"`
	Address        string `json:"address" validate:"required"`
	ContactPerson  string `json:"contactPerson"`
	CuisineType    string `json:"cuisineType"`
}

type registerVolunteerRequest struct {
	Username    string `json:"username" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`

	VolunteerName string `json:"volunteerName" validate:"required"`
	VehicleType   string `json:"vehicleType" validate:"required"`
	LicensePlate  string `json:"licensePlate"`
	Availability  string `json:"availability"`
}

type updateVolunteerRequest struct {
	VehicleType  string  `json:"vehicleType" validate:"required"`
	LicensePlate string  `json:"licensePlate" validate:"required"`
	Availability string  `json:"availability" validate:"required"`
	IsAvailable  bool    `json:"isAvailable"`
	Status       *string `json:"status" validate:"omitempty,oneof=Active Inactive Suspended"`
}

type registrationResponse struct {
	UserID    string `json:"userId"`
	ProfileID string `json:"profileId"`
}

// RegisterRestaurant handles POST /api/v1/restaurants - creates a user
// account and its restaurant profile.
func (s *Server) RegisterRestaurant(ctx echo.Context) error {
	var req registerRestaurantRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	userID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewRegisterRestaurantCommand(
		userID, restaurantID,
		req.Username, req.Email, req.Password, req.FirstName, req.LastName, req.PhoneNumber,
		req.RestaurantName, req.Address, req.ContactPerson, req.CuisineType,
	)
	if err != nil {
		return respondBadRequest(ctx, "invalid registration data: "+err.Error())
	}

	if handleErr := s.handlers.RegisterRestaurant.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, registrationResponse{
		UserID:    userID.String(),
		ProfileID: restaurantID.String(),
	})
}

// RegisterVolunteer handles POST /api/v1/volunteers - creates a user
// account and its volunteer profile.
func (s *Server) RegisterVolunteer(ctx echo.Context) error {
	var req registerVolunteerRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	userID := kernel.NewUUID()
	volunteerID := kernel.NewUUID()
	cmd, err := commands.NewRegisterVolunteerCommand(
		userID, volunteerID,
		req.Username, req.Email, req.Password, req.FirstName, req.LastName, req.PhoneNumber,
		req.VolunteerName, req.VehicleType, req.LicensePlate, req.Availability,
	)
	if err != nil {
		return respondBadRequest(ctx, "invalid registration data: "+err.Error())
	}

	if handleErr := s.handlers.RegisterVolunteer.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, registrationResponse{
		UserID:    userID.String(),
		ProfileID: volunteerID.String(),
	})
}

// DeleteRestaurant handles DELETE /api/v1/restaurants/:id.
func (s *Server) DeleteRestaurant(ctx echo.Context) error {
	restaurantID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid restaurant id")
	}

	cmd, err := commands.NewDeleteRestaurantCommand(restaurantID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if handleErr := s.handlers.DeleteRestaurant.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateVolunteer handles PUT /api/v1/volunteers/:id - replaces the
// volunteer's vehicle and availability details.
func (s *Server) UpdateVolunteer(ctx echo.Context) error {
	volunteerID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid volunteer id")
	}

	var req updateVolunteerRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	var status *volunteer.Status
	if req.Status != nil {
		parsed := volunteer.Status(*req.Status)
		status = &parsed
	}

	cmd, err := commands.NewUpdateVolunteerCommand(
		volunteerID,
		req.VehicleType, req.LicensePlate, req.Availability,
		req.IsAvailable, status,
	)
	if err != nil {
		return respondBadRequest(ctx, "invalid volunteer data: "+err.Error())
	}

	if handleErr := s.handlers.UpdateVolunteer.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteVolunteer handles DELETE /api/v1/volunteers/:id.
func (s *Server) DeleteVolunteer(ctx echo.Context) error {
	volunteerID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid volunteer id")
	}

	cmd, err := commands.NewDeleteVolunteerCommand(volunteerID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if handleErr := s.handlers.DeleteVolunteer.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteUser handles DELETE /api/v1/users/:id.
func (s *Server) DeleteUser(ctx echo.Context) error {
	userID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid user id")
	}

	cmd, err := commands.NewDeleteUserCommand(userID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if handleErr := s.handlers.DeleteUser.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}
