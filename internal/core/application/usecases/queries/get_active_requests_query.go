package queries

import (
	"errors"
	"time"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrGetActiveRequestsQueryIsNotConstructed = errors.New(
	"GetActiveRequestsQuery must be created via NewGetActiveRequestsQuery constructor",
)

// GetActiveRequestsQuery retrieves every pickup request that has not yet
// reached a terminal status.
type GetActiveRequestsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveRequestsQuery creates a query for in-flight pickup requests.
func NewGetActiveRequestsQuery() GetActiveRequestsQuery {
	return GetActiveRequestsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveRequestsQueryIsNotConstructed)
}

// GetActiveRequestsQueryResponse carries one in-flight pickup request row.
type GetActiveRequestsQueryResponse struct {
	ID          kernel.UUID
	DonationID  kernel.UUID
	VolunteerID kernel.UUID
	Status      string
	RequestedAt time.Time
	Notes       string
}
