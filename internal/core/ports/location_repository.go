package ports

import (
	"context"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/location"
)

// LocationRepository defines the persistence contract for reference
// locations. Locations are read-mostly and carry no lifecycle.
type LocationRepository interface {
	// Add persists a new reference location.
	Add(ctx context.Context, aggregate *location.Location) error

	// Get retrieves a location by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*location.Location, error)

	// GetAllActive retrieves every active location.
	GetAllActive(ctx context.Context) ([]*location.Location, error)
}
