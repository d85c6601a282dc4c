package commands

import (
	"context"
	"errors"
	"time"

	"foodbridge/internal/core/domain/model/pickup"
	"foodbridge/internal/pkg/errs"
)

// RequestPickupCommandHandler raises a pending pickup request against an
// available donation and assigns the donation to the requesting volunteer
// within one transaction.
//
// Two volunteers racing for the same donation both pass the pre-checks;
// the partial unique index on active requests lets exactly one insert
// through and the repository reports the other as a ConflictError.
type RequestPickupCommandHandler struct {
	uowFactory PickupUoWFactory
}

// NewRequestPickupCommandHandler creates a handler for raising pickup requests.
func NewRequestPickupCommandHandler(uowFactory PickupUoWFactory) RequestPickupCommandHandler {
	return RequestPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies no active request exists, the volunteer may accept work,
// and the donation is still Available, then persists the Pending request
// and the Assigned donation together.
func (h RequestPickupCommandHandler) Handle(ctx context.Context, command RequestPickupCommand) error {
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

	claimed, err := donationRepo.Get(ctx, command.DonationID())
	if err != nil {
		return err
	}

	_, activeErr := pickupRepo.GetActiveByDonation(ctx, command.DonationID())
	if activeErr == nil {
		return errs.NewConflictError("donation already has an active pickup request")
	}
	if !errors.Is(activeErr, errs.ErrObjectNotFound) {
		return activeErr
	}

	claimant, err := uow.VolunteerRepository().Get(ctx, command.VolunteerID())
	if err != nil {
		return err
	}
	if err = claimant.CanAccept(); err != nil {
		return err
	}

	if err = claimed.Assign(command.VolunteerID()); err != nil {
		return err
	}

	request, err := pickup.NewRequest(
		command.RequestID(),
		command.DonationID(),
		command.VolunteerID(),
		command.Notes(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = request.SetEstimate(command.Distance(), command.EstimatedDuration()); err != nil {
		return err
	}

	if err = pickupRepo.Add(ctx, request); err != nil {
		return err
	}
	if err = donationRepo.Update(ctx, claimed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
