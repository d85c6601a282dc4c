package commands

import (
	"context"
	"time"
)

// StartPickupCommandHandler moves an accepted request to InProgress and
// the donation to PickedUp, stamping the pickup time on both.
type StartPickupCommandHandler struct {
	uowFactory PickupUoWFactory
}

// NewStartPickupCommandHandler creates a handler for starting pickups.
func NewStartPickupCommandHandler(uowFactory PickupUoWFactory) StartPickupCommandHandler {
	return StartPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle transitions both lifecycles within one transaction.
func (h StartPickupCommandHandler) Handle(ctx context.Context, command StartPickupCommand) error {
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

	now := time.Now().UTC()
	if err = request.Start(now); err != nil {
		return err
	}
	if err = claimed.MarkPickedUp(now); err != nil {
		return err
	}

	if err = pickupRepo.Update(ctx, request); err != nil {
		return err
	}
	if err = donationRepo.Update(ctx, claimed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
