package queries

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrGetLocationsQueryIsNotConstructed = errors.New(
	"GetLocationsQuery must be created via NewGetLocationsQuery constructor",
)

// GetLocationsQuery retrieves every active reference location.
type GetLocationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLocationsQuery creates a query for active reference locations.
func NewGetLocationsQuery() GetLocationsQuery {
	return GetLocationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLocationsQuery) Validate() error {
	return q.guard.Validate(ErrGetLocationsQueryIsNotConstructed)
}

// GetLocationsQueryResponse carries one reference location row.
type GetLocationsQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	Type      string
	Hours     string
}
