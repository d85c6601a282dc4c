package commands

import (
	"errors"
	"time"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var (
	ErrPostDonationCommandIsNotConstructed = errors.New(
		"PostDonationCommand must be created via NewPostDonationCommand constructor",
	)
	ErrFoodItemIsRequired   = errors.New("food item is required")
	ErrQuantityIsInvalid    = errors.New("quantity must be greater than 0")
	ErrWeightIsInvalid      = errors.New("weight must be greater than 0")
	ErrExpiryDateIsRequired = errors.New("expiry date is required")
)

// PostDonationCommand represents a restaurant's offer of surplus food.
type PostDonationCommand struct { //nolint:recvcheck //using for validation
	donationID   kernel.UUID
	restaurantID kernel.UUID
	foodItem     string
	quantity     int
	weight       float64
	expiryDate   time.Time
	details      donation.Details

	guard guard.ConstructorGuard
}

// NewPostDonationCommand creates a command to post a new donation.
// Validates identifiers and the positive-quantity, positive-weight, and
// expiry-date requirements before the handler runs.
func NewPostDonationCommand(
	donationID kernel.UUID,
	restaurantID kernel.UUID,
	foodItem string,
	quantity int,
	weight float64,
	expiryDate time.Time,
	details donation.Details,
) (PostDonationCommand, error) {
	command := PostDonationCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDonationID(donationID),
		command.setRestaurantID(restaurantID),
		command.setFoodItem(foodItem),
		command.setQuantity(quantity),
		command.setWeight(weight),
		command.setExpiryDate(expiryDate),
	); err != nil {
		return PostDonationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PostDonationCommand) Validate() error {
	return c.guard.Validate(ErrPostDonationCommandIsNotConstructed)
}

// DonationID returns the identifier for the new donation.
func (c PostDonationCommand) DonationID() kernel.UUID {
	return c.donationID
}

// RestaurantID returns the posting restaurant's identifier.
func (c PostDonationCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// FoodItem returns the food item description.
func (c PostDonationCommand) FoodItem() string {
	return c.foodItem
}

// Quantity returns the number of portions offered.
func (c PostDonationCommand) Quantity() int {
	return c.quantity
}

// Weight returns the donation weight in pounds.
func (c PostDonationCommand) Weight() float64 {
	return c.weight
}

// ExpiryDate returns when the food stops being safe to pick up.
func (c PostDonationCommand) ExpiryDate() time.Time {
	return c.expiryDate
}

// Details returns the optional descriptive attributes.
func (c PostDonationCommand) Details() donation.Details {
	return c.details
}

func (c *PostDonationCommand) setDonationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.donationID = id
	return nil
}

func (c *PostDonationCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.restaurantID = id
	return nil
}

func (c *PostDonationCommand) setFoodItem(foodItem string) error {
	if foodItem == "" {
		return ErrFoodItemIsRequired
	}

	c.foodItem = foodItem
	return nil
}

func (c *PostDonationCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *PostDonationCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return ErrWeightIsInvalid
	}

	c.weight = weight
	return nil
}

func (c *PostDonationCommand) setExpiryDate(expiryDate time.Time) error {
	if expiryDate.IsZero() {
		return ErrExpiryDateIsRequired
	}

	c.expiryDate = expiryDate
	return nil
}
