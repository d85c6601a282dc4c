package ports

import (
	"context"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant
// profiles.
type RestaurantRepository interface {
	// Add persists a new restaurant profile.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists changes to an existing profile with a version guard.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// GetByUser retrieves the profile owned by the user, or an
	// ObjectNotFoundError when the user owns none.
	GetByUser(ctx context.Context, userID kernel.UUID) (*restaurant.Restaurant, error)

	// Delete removes the profile. The caller enforces the donation
	// reference restriction first.
	Delete(ctx context.Context, id kernel.UUID) error
}
