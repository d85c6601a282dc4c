package commands

import (
	"context"

	"foodbridge/internal/core/domain/model/volunteer"
)

// UpdateVolunteerCommandHandler applies a full replacement of a
// volunteer's vehicle and availability details, and optionally moves the
// account standing.
type UpdateVolunteerCommandHandler struct {
	uowFactory RegistrationUoWFactory
}

// NewUpdateVolunteerCommandHandler creates a handler for volunteer updates.
func NewUpdateVolunteerCommandHandler(uowFactory RegistrationUoWFactory) UpdateVolunteerCommandHandler {
	return UpdateVolunteerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the volunteer, applies the new profile values, and
// persists it under the optimistic-concurrency guard.
func (h UpdateVolunteerCommandHandler) Handle(ctx context.Context, command UpdateVolunteerCommand) error {
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

	volunteerRepo := uow.VolunteerRepository()

	updated, err := volunteerRepo.Get(ctx, command.VolunteerID())
	if err != nil {
		return err
	}

	if err = updated.UpdateProfile(
		command.VehicleType(),
		command.LicensePlate(),
		command.Availability(),
	); err != nil {
		return err
	}
	updated.SetAvailable(command.IsAvailable())

	if status := command.Status(); status != nil {
		switch *status {
		case volunteer.Active:
			updated.Activate()
		case volunteer.Inactive:
			updated.Deactivate()
		case volunteer.Suspended:
			updated.Suspend()
		}
	}

	if err = volunteerRepo.Update(ctx, updated); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
