package commands

import (
	"context"

	"foodbridge/internal/core/domain/model/restaurant"
	"foodbridge/internal/core/domain/model/user"
)

// RegisterRestaurantCommandHandler creates a Restaurant-role user account
// and its profile in one transaction.
type RegisterRestaurantCommandHandler struct {
	uowFactory RegistrationUoWFactory
}

// NewRegisterRestaurantCommandHandler creates a handler for restaurant registration.
func NewRegisterRestaurantCommandHandler(uowFactory RegistrationUoWFactory) RegisterRestaurantCommandHandler {
	return RegisterRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the account and the linked profile. A taken username
// surfaces as a ConflictError from the user repository.
func (h RegisterRestaurantCommandHandler) Handle(ctx context.Context, command RegisterRestaurantCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	account, err := user.NewUser(
		command.UserID(),
		command.Username(),
		command.Email(),
		command.Password(),
		user.RoleRestaurant,
		command.FirstName(),
		command.LastName(),
		command.PhoneNumber(),
	)
	if err != nil {
		return err
	}

	profile, err := restaurant.NewRestaurant(
		command.RestaurantID(),
		command.RestaurantName(),
		command.Address(),
		command.PhoneNumber(),
		command.ContactPerson(),
		command.CuisineType(),
	)
	if err != nil {
		return err
	}
	if err = profile.AttachUser(command.UserID()); err != nil {
		return err
	}

	if err = uow.UserRepository().Add(ctx, account); err != nil {
		return err
	}
	if err = uow.RestaurantRepository().Add(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
