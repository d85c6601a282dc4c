package commands

import (
	"context"
)

// CancelPickupCommandHandler withdraws a pickup request. While the
// donation is still Assigned it is released back to Available for other
// volunteers.
type CancelPickupCommandHandler struct {
	uowFactory PickupUoWFactory
}

// NewCancelPickupCommandHandler creates a handler for cancelling pickup requests.
func NewCancelPickupCommandHandler(uowFactory PickupUoWFactory) CancelPickupCommandHandler {
	return CancelPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels the request and reverts the donation to Available.
// A donation already Completed or Expired cannot be released, so the
// cancellation fails as a whole.
func (h CancelPickupCommandHandler) Handle(ctx context.Context, command CancelPickupCommand) error {
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

	pickupRepo := uow.PickupRequestRepository()
	donationRepo := uow.DonationRepository()

	request, err := pickupRepo.Get(ctx, command.RequestID())
	if err != nil {
		return err
	}

	claimed, err := donationRepo.Get(ctx, request.DonationID())
	if err != nil {
		return err
	}

	if err = request.Cancel(); err != nil {
		return err
	}

	if err = claimed.Unassign(); err != nil {
		return err
	}
	if err = donationRepo.Update(ctx, claimed); err != nil {
		return err
	}

	if err = pickupRepo.Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
