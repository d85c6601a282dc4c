package ports

import (
	"context"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user account. Fails with a ConflictError when the
	// username is already taken.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing account with a version guard.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByUsername retrieves a user by login name.
	GetByUsername(ctx context.Context, username string) (*user.User, error)

	// Delete removes the account. Profile detachment is the caller's
	// responsibility.
	Delete(ctx context.Context, id kernel.UUID) error
}
