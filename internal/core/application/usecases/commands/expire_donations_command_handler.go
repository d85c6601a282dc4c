package commands

import (
	"context"
	"errors"

	"foodbridge/internal/pkg/errs"
)

// ExpireDonationsCommandHandler expires every Available or Assigned
// donation whose expiry date has passed. An assigned donation's active
// pickup request is cancelled alongside it.
type ExpireDonationsCommandHandler struct {
	uowFactory PickupUoWFactory
}

// NewExpireDonationsCommandHandler creates a handler for the expiry sweep.
func NewExpireDonationsCommandHandler(uowFactory PickupUoWFactory) ExpireDonationsCommandHandler {
	return ExpireDonationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle expires overdue donations in a single transaction.
func (h ExpireDonationsCommandHandler) Handle(ctx context.Context, command ExpireDonationsCommand) error {
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
	pickupRepo := uow.PickupRequestRepository()

	now := command.Now()
	overdue, err := donationRepo.GetAllExpiring(ctx, now)
	if err != nil {
		return err
	}

	for _, d := range overdue {
		if err = d.Expire(now); err != nil {
			return err
		}
		if err = donationRepo.Update(ctx, d); err != nil {
			return err
		}

		request, getErr := pickupRepo.GetActiveByDonation(ctx, d.ID())
		if errors.Is(getErr, errs.ErrObjectNotFound) {
			continue
		}
		if getErr != nil {
			return getErr
		}

		if err = request.Cancel(); err != nil {
			return err
		}
		if err = pickupRepo.Update(ctx, request); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
