package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances per request/command,
// keeping concurrent operations isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Client code
// manages the transaction lifecycle explicitly; repositories obtained
// from the unit of work operate inside the transaction started by Begin.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	Rollback(ctx context.Context) error

	// DonationRepository returns a DonationRepository bound to the transaction.
	DonationRepository() DonationRepository

	// PickupRequestRepository returns a PickupRequestRepository bound to the transaction.
	PickupRequestRepository() PickupRequestRepository

	// RestaurantRepository returns a RestaurantRepository bound to the transaction.
	RestaurantRepository() RestaurantRepository

	// VolunteerRepository returns a VolunteerRepository bound to the transaction.
	VolunteerRepository() VolunteerRepository

	// UserRepository returns a UserRepository bound to the transaction.
	UserRepository() UserRepository

	// LocationRepository returns a LocationRepository bound to the transaction.
	LocationRepository() LocationRepository
}
