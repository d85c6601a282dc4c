package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrDeleteRestaurantCommandIsNotConstructed = errors.New(
	"DeleteRestaurantCommand must be created via NewDeleteRestaurantCommand constructor",
)

// DeleteRestaurantCommand removes a restaurant profile. Deletion is
// refused while donations still reference it.
type DeleteRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteRestaurantCommand creates a command to delete a restaurant.
func NewDeleteRestaurantCommand(restaurantID kernel.UUID) (DeleteRestaurantCommand, error) {
	command := DeleteRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRestaurantID(restaurantID); err != nil {
		return DeleteRestaurantCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the restaurant's identifier.
func (c DeleteRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c *DeleteRestaurantCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.restaurantID = id
	return nil
}
