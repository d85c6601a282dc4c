// Package queries contains read-only operations over the persisted state.
// Query handlers bypass the domain aggregates and read projections
// directly from the database.
package queries

import (
	"errors"
	"time"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrGetAvailableDonationsQueryIsNotConstructed = errors.New(
	"GetAvailableDonationsQuery must be created via NewGetAvailableDonationsQuery constructor",
)

// GetAvailableDonationsQuery retrieves every donation volunteers can still
// claim.
type GetAvailableDonationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableDonationsQuery creates a query for claimable donations.
func NewGetAvailableDonationsQuery() GetAvailableDonationsQuery {
	return GetAvailableDonationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableDonationsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDonationsQueryIsNotConstructed)
}

// GetAvailableDonationsQueryResponse carries one claimable donation row.
type GetAvailableDonationsQueryResponse struct {
	ID             kernel.UUID
	RestaurantID   kernel.UUID
	FoodItem       string
	Quantity       int
	Weight         float64
	ExpiryDate     time.Time
	PickupLocation string
}
