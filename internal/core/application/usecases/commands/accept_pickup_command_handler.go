package commands

import (
	"context"
	"time"
)

// AcceptPickupCommandHandler moves a pending request to Accepted. The
// donation was already assigned when the request was raised.
type AcceptPickupCommandHandler struct {
	uowFactory PickupUoWFactory
}

// NewAcceptPickupCommandHandler creates a handler for accepting pickup requests.
func NewAcceptPickupCommandHandler(uowFactory PickupUoWFactory) AcceptPickupCommandHandler {
	return AcceptPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle transitions the request from Pending to Accepted.
func (h AcceptPickupCommandHandler) Handle(ctx context.Context, command AcceptPickupCommand) error {
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

	request, err := pickupRepo.Get(ctx, command.RequestID())
	if err != nil {
		return err
	}

	if err = request.Accept(time.Now().UTC()); err != nil {
		return err
	}

	if err = pickupRepo.Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
