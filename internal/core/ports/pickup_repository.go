package ports

import (
	"context"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/pickup"
)

// PickupRequestRepository defines the persistence contract for pickup
// request aggregates. The storage layer maintains a partial unique index
// over active requests so at most one non-terminal request can exist per
// donation; Add surfaces a ConflictError when the index is violated.
type PickupRequestRepository interface {
	// Add persists a new pickup request.
	Add(ctx context.Context, aggregate *pickup.Request) error

	// Update persists changes to an existing request with a version guard.
	Update(ctx context.Context, aggregate *pickup.Request) error

	// Get retrieves a request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*pickup.Request, error)

	// GetActiveByDonation retrieves the non-terminal request for a
	// donation, or an ObjectNotFoundError when none exists.
	GetActiveByDonation(ctx context.Context, donationID kernel.UUID) (*pickup.Request, error)

	// GetAllByVolunteer retrieves every request raised by the volunteer.
	GetAllByVolunteer(ctx context.Context, volunteerID kernel.UUID) ([]*pickup.Request, error)

	// CountByVolunteer reports how many requests reference the volunteer.
	// Used to enforce the volunteer delete restriction.
	CountByVolunteer(ctx context.Context, volunteerID kernel.UUID) (int64, error)

	// DeleteAllByDonation removes every request for the donation.
	// Applied as the cascade when the donation is deleted.
	DeleteAllByDonation(ctx context.Context, donationID kernel.UUID) error
}
