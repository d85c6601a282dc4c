package commands

import (
	"context"

	"foodbridge/internal/core/domain/model/user"
	"foodbridge/internal/core/domain/model/volunteer"
)

// RegisterVolunteerCommandHandler creates a Volunteer-role user account
// and its profile in one transaction.
type RegisterVolunteerCommandHandler struct {
	uowFactory RegistrationUoWFactory
}

// NewRegisterVolunteerCommandHandler creates a handler for volunteer registration.
func NewRegisterVolunteerCommandHandler(uowFactory RegistrationUoWFactory) RegisterVolunteerCommandHandler {
	return RegisterVolunteerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the account and the linked profile.
func (h RegisterVolunteerCommandHandler) Handle(ctx context.Context, command RegisterVolunteerCommand) error {
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
		user.RoleVolunteer,
		command.FirstName(),
		command.LastName(),
		command.PhoneNumber(),
	)
	if err != nil {
		return err
	}

	profile, err := volunteer.NewVolunteer(
		command.VolunteerID(),
		command.VolunteerName(),
		command.VehicleType(),
		command.LicensePlate(),
		command.Availability(),
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
	if err = uow.VolunteerRepository().Add(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
