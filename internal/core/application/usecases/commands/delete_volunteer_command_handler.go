package commands

import (
	"context"

	"foodbridge/internal/pkg/errs"
)

// DeleteVolunteerCommandHandler removes a volunteer profile. Pickup
// requests block the deletion; donation references are cleared so the
// donation history survives without a dangling volunteer.
type DeleteVolunteerCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteVolunteerCommandHandler creates a handler for volunteer deletion.
func NewDeleteVolunteerCommandHandler(uowFactory UoWFactory) DeleteVolunteerCommandHandler {
	return DeleteVolunteerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle refuses while pickup requests reference the volunteer, then
// clears donation references and deletes the profile.
func (h DeleteVolunteerCommandHandler) Handle(ctx context.Context, command DeleteVolunteerCommand) error {
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

	count, err := uow.PickupRequestRepository().CountByVolunteer(ctx, command.VolunteerID())
	if err != nil {
		return err
	}
	if count > 0 {
		return errs.NewReferentialIntegrityError(
			"volunteer", command.VolunteerID().String(), "pickup requests still reference it")
	}

	if err = uow.DonationRepository().ClearVolunteer(ctx, command.VolunteerID()); err != nil {
		return err
	}
	if err = uow.VolunteerRepository().Delete(ctx, command.VolunteerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
