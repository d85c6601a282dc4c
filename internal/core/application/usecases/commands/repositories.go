// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"foodbridge/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends on the narrowest interface that covers
// the repositories its transaction touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DonationRepoFactory provides access to the donation repository within a transaction.
	DonationRepoFactory interface {
		DonationRepository() ports.DonationRepository
	}

	// PickupRepoFactory provides access to the pickup request repository within a transaction.
	PickupRepoFactory interface {
		PickupRequestRepository() ports.PickupRequestRepository
	}

	// RestaurantRepoFactory provides access to the restaurant repository within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// VolunteerRepoFactory provides access to the volunteer repository within a transaction.
	VolunteerRepoFactory interface {
		VolunteerRepository() ports.VolunteerRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// LocationRepoFactory provides access to the location repository within a transaction.
	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	// DonationUoW manages transactions for donation-centric operations
	// that also need to resolve the owning restaurant.
	DonationUoW interface {
		TxManager
		DonationRepoFactory
		RestaurantRepoFactory
	}

	// DonationUoWFactory creates new donation unit of work instances.
	DonationUoWFactory interface {
		Create() DonationUoW
	}

	// PickupUoW manages transactions for the pickup coordination
	// operations, which keep the donation and request lifecycles in step.
	PickupUoW interface {
		TxManager
		DonationRepoFactory
		PickupRepoFactory
		VolunteerRepoFactory
	}

	// PickupUoWFactory creates new pickup unit of work instances.
	PickupUoWFactory interface {
		Create() PickupUoW
	}

	// RegistrationUoW manages transactions for registration operations
	// that create a user account together with its profile.
	RegistrationUoW interface {
		TxManager
		UserRepoFactory
		RestaurantRepoFactory
		VolunteerRepoFactory
	}

	// RegistrationUoWFactory creates new registration unit of work instances.
	RegistrationUoWFactory interface {
		Create() RegistrationUoW
	}

	// LocationUoW manages transactions for reference-location operations.
	LocationUoW interface {
		TxManager
		LocationRepoFactory
	}

	// LocationUoWFactory creates new location unit of work instances.
	LocationUoWFactory interface {
		Create() LocationUoW
	}

	// UoW manages transactions spanning every aggregate. Used by the
	// completion and deletion commands that coordinate several of them.
	UoW interface {
		TxManager
		DonationRepoFactory
		PickupRepoFactory
		RestaurantRepoFactory
		VolunteerRepoFactory
		UserRepoFactory
		LocationRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
