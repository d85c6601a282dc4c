package ports

import (
	"context"
	"time"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"
)

// DonationRepository defines the persistence contract for donation
// aggregates. Update is version-guarded: a lost optimistic-concurrency
// race surfaces as a ConcurrencyConflictError.
type DonationRepository interface {
	// Add persists a new donation aggregate.
	Add(ctx context.Context, aggregate *donation.Donation) error

	// Update persists changes to an existing donation. Fails with a
	// ConcurrencyConflictError if the stored version no longer matches
	// the version the aggregate was loaded with.
	Update(ctx context.Context, aggregate *donation.Donation) error

	// Get retrieves a donation by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*donation.Donation, error)

	// GetAllInStatus retrieves all donations currently in the given status.
	GetAllInStatus(ctx context.Context, status donation.Status) ([]*donation.Donation, error)

	// GetAllExpiring retrieves donations in Available or Assigned status
	// whose expiry date has passed. Used by the expiry sweep.
	GetAllExpiring(ctx context.Context, now time.Time) ([]*donation.Donation, error)

	// CountByRestaurant reports how many donations reference the restaurant.
	// Used to enforce the restaurant delete restriction.
	CountByRestaurant(ctx context.Context, restaurantID kernel.UUID) (int64, error)

	// ClearVolunteer nulls the volunteer reference on every donation that
	// points at the volunteer. Applied when the volunteer is deleted.
	ClearVolunteer(ctx context.Context, volunteerID kernel.UUID) error

	// Delete removes the donation record. Pickup-request cascade is the
	// caller's responsibility.
	Delete(ctx context.Context, id kernel.UUID) error
}
