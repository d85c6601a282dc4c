package commands

import (
	"context"
	"time"
)

// CompletePickupCommandHandler confirms a delivery. In one transaction it
// completes the request and donation lifecycles and folds the delivery
// into the restaurant's and volunteer's running totals.
type CompletePickupCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompletePickupCommandHandler creates a handler for confirming deliveries.
func NewCompletePickupCommandHandler(uowFactory UoWFactory) CompletePickupCommandHandler {
	return CompletePickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery confirmation. The statistics updates ride
// in the same transaction as the status transitions, so a failed update
// also rolls the transitions back.
func (h CompletePickupCommandHandler) Handle(ctx context.Context, command CompletePickupCommand) error {
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

	delivered, err := donationRepo.Get(ctx, request.DonationID())
	if err != nil {
		return err
	}

	donor, err := uow.RestaurantRepository().Get(ctx, delivered.RestaurantID())
	if err != nil {
		return err
	}

	carrier, err := uow.VolunteerRepository().Get(ctx, request.VolunteerID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = request.Complete(now); err != nil {
		return err
	}
	if err = delivered.Complete(now); err != nil {
		return err
	}
	if err = donor.RecordDonation(delivered.Weight()); err != nil {
		return err
	}
	carrier.RecordPickup()

	if err = pickupRepo.Update(ctx, request); err != nil {
		return err
	}
	if err = donationRepo.Update(ctx, delivered); err != nil {
		return err
	}
	if err = uow.RestaurantRepository().Update(ctx, donor); err != nil {
		return err
	}
	if err = uow.VolunteerRepository().Update(ctx, carrier); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
