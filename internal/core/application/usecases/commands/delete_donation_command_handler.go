package commands

import (
	"context"
)

// DeleteDonationCommandHandler removes a donation together with every
// pickup request raised against it.
type DeleteDonationCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteDonationCommandHandler creates a handler for donation deletion.
func NewDeleteDonationCommandHandler(uowFactory UoWFactory) DeleteDonationCommandHandler {
	return DeleteDonationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the requests first, then the donation, in one transaction.
func (h DeleteDonationCommandHandler) Handle(ctx context.Context, command DeleteDonationCommand) error {
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

	if err := uow.PickupRequestRepository().DeleteAllByDonation(ctx, command.DonationID()); err != nil {
		return err
	}
	if err := uow.DonationRepository().Delete(ctx, command.DonationID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
