package commands

import (
	"context"
)

// UpdateDonationCommandHandler applies a partial update to a non-terminal
// donation.
type UpdateDonationCommandHandler struct {
	uowFactory DonationUoWFactory
}

// NewUpdateDonationCommandHandler creates a handler for donation updates.
func NewUpdateDonationCommandHandler(uowFactory DonationUoWFactory) UpdateDonationCommandHandler {
	return UpdateDonationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the donation, applies the changed fields, and persists it
// under the optimistic-concurrency guard.
func (h UpdateDonationCommandHandler) Handle(ctx context.Context, command UpdateDonationCommand) error {
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

	donationRepo := uow.DonationRepository()

	updated, err := donationRepo.Get(ctx, command.DonationID())
	if err != nil {
		return err
	}

	if err = updated.UpdateDetails(
		command.FoodItem(),
		command.Quantity(),
		command.Weight(),
		command.ExpiryDate(),
		command.Details(),
	); err != nil {
		return err
	}

	if err = donationRepo.Update(ctx, updated); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
