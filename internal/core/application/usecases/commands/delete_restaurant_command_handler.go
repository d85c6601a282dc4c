package commands

import (
	"context"

	"foodbridge/internal/pkg/errs"
)

// DeleteRestaurantCommandHandler removes a restaurant profile, refusing
// while any donation still references it.
type DeleteRestaurantCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteRestaurantCommandHandler creates a handler for restaurant deletion.
func NewDeleteRestaurantCommandHandler(uowFactory UoWFactory) DeleteRestaurantCommandHandler {
	return DeleteRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle counts referencing donations inside the transaction and deletes
// only when none remain.
func (h DeleteRestaurantCommandHandler) Handle(ctx context.Context, command DeleteRestaurantCommand) error {
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

	count, err := uow.DonationRepository().CountByRestaurant(ctx, command.RestaurantID())
	if err != nil {
		return err
	}
	if count > 0 {
		return errs.NewReferentialIntegrityError(
			"restaurant", command.RestaurantID().String(), "donations still reference it")
	}

	if err = uow.RestaurantRepository().Delete(ctx, command.RestaurantID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
