package commands

import (
	"errors"
	"time"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrUpdateDonationCommandIsNotConstructed = errors.New(
	"UpdateDonationCommand must be created via NewUpdateDonationCommand constructor",
)

// UpdateDonationCommand applies a partial update to a donation's
// descriptive fields. Nil pointers leave the stored values untouched.
type UpdateDonationCommand struct { //nolint:recvcheck //using for validation
	donationID kernel.UUID

	foodItem   *string
	quantity   *int
	weight     *float64
	expiryDate *time.Time
	details    *donation.Details

	guard guard.ConstructorGuard
}

// NewUpdateDonationCommand creates a command to update a donation.
func NewUpdateDonationCommand(
	donationID kernel.UUID,
	foodItem *string,
	quantity *int,
	weight *float64,
	expiryDate *time.Time,
	details *donation.Details,
) (UpdateDonationCommand, error) {
	command := UpdateDonationCommand{
		foodItem:   foodItem,
		quantity:   quantity,
		weight:     weight,
		expiryDate: expiryDate,
		details:    details,
		guard:      guard.NewConstructorGuard(),
	}

	if err := command.setDonationID(donationID); err != nil {
		return UpdateDonationCommand{}, err
	}

	if foodItem != nil && *foodItem == "" {
		return UpdateDonationCommand{}, ErrFoodItemIsRequired
	}
	if quantity != nil && *quantity <= 0 {
		return UpdateDonationCommand{}, ErrQuantityIsInvalid
	}
	if weight != nil && *weight <= 0 {
		return UpdateDonationCommand{}, ErrWeightIsInvalid
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDonationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDonationCommandIsNotConstructed)
}

// DonationID returns the donation's identifier.
func (c UpdateDonationCommand) DonationID() kernel.UUID {
	return c.donationID
}

// FoodItem returns the replacement food item, or nil.
func (c UpdateDonationCommand) FoodItem() *string {
	return c.foodItem
}

// Quantity returns the replacement quantity, or nil.
func (c UpdateDonationCommand) Quantity() *int {
	return c.quantity
}

// Weight returns the replacement weight, or nil.
func (c UpdateDonationCommand) Weight() *float64 {
	return c.weight
}

// ExpiryDate returns the replacement expiry date, or nil.
func (c UpdateDonationCommand) ExpiryDate() *time.Time {
	return c.expiryDate
}

// Details returns the replacement descriptive attributes, or nil.
func (c UpdateDonationCommand) Details() *donation.Details {
	return c.details
}

func (c *UpdateDonationCommand) setDonationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.donationID = id
	return nil
}
