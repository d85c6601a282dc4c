package commands

import (
	"context"
	"errors"

	"foodbridge/internal/pkg/errs"
)

// DeleteUserCommandHandler removes a user account. Profiles owned by the
// account are detached and kept, so donation and pickup history remains
// attributable to the profile.
type DeleteUserCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteUserCommandHandler creates a handler for user deletion.
func NewDeleteUserCommandHandler(uowFactory UoWFactory) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle detaches the owned restaurant and volunteer profiles, if any,
// then deletes the account.
func (h DeleteUserCommandHandler) Handle(ctx context.Context, command DeleteUserCommand) error {
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

	restaurantRepo := uow.RestaurantRepository()
	donorProfile, err := restaurantRepo.GetByUser(ctx, command.UserID())
	switch {
	case err == nil:
		donorProfile.DetachUser()
		if err = restaurantRepo.Update(ctx, donorProfile); err != nil {
			return err
		}
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	volunteerRepo := uow.VolunteerRepository()
	carrierProfile, err := volunteerRepo.GetByUser(ctx, command.UserID())
	switch {
	case err == nil:
		carrierProfile.DetachUser()
		if err = volunteerRepo.Update(ctx, carrierProfile); err != nil {
			return err
		}
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err = uow.UserRepository().Delete(ctx, command.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
