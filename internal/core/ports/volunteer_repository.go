package ports

import (
	"context"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/volunteer"
)

// VolunteerRepository defines the persistence contract for volunteer
// profiles.
type VolunteerRepository interface {
	// Add persists a new volunteer profile.
	Add(ctx context.Context, aggregate *volunteer.Volunteer) error

	// Update persists changes to an existing profile with a version guard.
	Update(ctx context.Context, aggregate *volunteer.Volunteer) error

	// Get retrieves a volunteer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*volunteer.Volunteer, error)

	// GetByUser retrieves the profile owned by the user, or an
	// ObjectNotFoundError when the user owns none.
	GetByUser(ctx context.Context, userID kernel.UUID) (*volunteer.Volunteer, error)

	// Delete removes the profile. The caller enforces the pickup-request
	// reference restriction and donation null-out first.
	Delete(ctx context.Context, id kernel.UUID) error
}
