// Package http exposes the application's use cases over a REST API.
// Handlers bind and validate JSON payloads, translate them into commands
// and queries, and map domain errors onto HTTP status codes.
package http

import (
	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/application/usecases/queries"
	"foodbridge/internal/core/domain/model/kernel"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Handlers bundles every command and query handler the server dispatches to.
type Handlers struct {
	PostDonation       commands.PostDonationCommandHandler
	UpdateDonation     commands.UpdateDonationCommandHandler
	DeleteDonation     commands.DeleteDonationCommandHandler
	RequestPickup      commands.RequestPickupCommandHandler
	AcceptPickup       commands.AcceptPickupCommandHandler
	StartPickup        commands.StartPickupCommandHandler
	CompletePickup     commands.CompletePickupCommandHandler
	CancelPickup       commands.CancelPickupCommandHandler
	RegisterRestaurant commands.RegisterRestaurantCommandHandler
	RegisterVolunteer  commands.RegisterVolunteerCommandHandler
	UpdateVolunteer    commands.UpdateVolunteerCommandHandler
	DeleteRestaurant   commands.DeleteRestaurantCommandHandler
	DeleteVolunteer    commands.DeleteVolunteerCommandHandler
	DeleteUser         commands.DeleteUserCommandHandler
	AddLocation        commands.AddLocationCommandHandler

	GetAvailableDonations queries.GetAvailableDonationsQueryHandler
	GetDonation           queries.GetDonationQueryHandler
	GetActiveRequests     queries.GetActiveRequestsQueryHandler
	GetLocations          queries.GetLocationsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// CustomValidator adapts go-playground/validator to echo's Validator
// interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator creates the request payload validator.
func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate checks a bound request payload against its struct tags.
// Handlers route the returned error through respondBadRequest so the
// body matches the ErrorResponse shape of every other failure.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// RegisterRoutes wires every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/donations", s.PostDonation)
	api.GET("/donations", s.GetAvailableDonations)
	api.GET("/donations/:id", s.GetDonation)
	api.PATCH("/donations/:id", s.UpdateDonation)
	api.DELETE("/donations/:id", s.DeleteDonation)

	api.POST("/pickup-requests", s.RequestPickup)
	api.GET("/pickup-requests/active", s.GetActiveRequests)
	api.POST("/pickup-requests/:id/accept", s.AcceptPickup)
	api.POST("/pickup-requests/:id/start", s.StartPickup)
	api.POST("/pickup-requests/:id/complete", s.CompletePickup)
	api.POST("/pickup-requests/:id/cancel", s.CancelPickup)

	api.POST("/restaurants", s.RegisterRestaurant)
	api.DELETE("/restaurants/:id", s.DeleteRestaurant)
	api.POST("/volunteers", s.RegisterVolunteer)
	api.PUT("/volunteers/:id", s.UpdateVolunteer)
	api.DELETE("/volunteers/:id", s.DeleteVolunteer)
	api.DELETE("/users/:id", s.DeleteUser)

	api.POST("/locations", s.AddLocation)
	api.GET("/locations", s.GetLocations)
}

// pathID parses the :id path parameter as a UUID.
func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}
