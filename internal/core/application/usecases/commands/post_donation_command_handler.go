package commands

import (
	"context"
	"time"

	"foodbridge/internal/core/domain/model/donation"
)

// PostDonationCommandHandler creates a new donation after confirming the
// posting restaurant exists.
type PostDonationCommandHandler struct {
	uowFactory DonationUoWFactory
}

// NewPostDonationCommandHandler creates a handler for posting donations.
func NewPostDonationCommandHandler(uowFactory DonationUoWFactory) PostDonationCommandHandler {
	return PostDonationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the restaurant, builds the donation in Available status,
// and persists it.
func (h PostDonationCommandHandler) Handle(ctx context.Context, command PostDonationCommand) error {
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

	if _, err := uow.RestaurantRepository().Get(ctx, command.RestaurantID()); err != nil {
		return err
	}

	newDonation, err := donation.NewDonation(
		command.DonationID(),
		command.RestaurantID(),
		command.FoodItem(),
		command.Quantity(),
		command.Weight(),
		command.ExpiryDate(),
		command.Details(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.DonationRepository().Add(ctx, newDonation); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
