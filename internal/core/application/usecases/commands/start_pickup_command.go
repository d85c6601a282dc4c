package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrStartPickupCommandIsNotConstructed = errors.New(
	"StartPickupCommand must be created via NewStartPickupCommand constructor",
)

// StartPickupCommand records that the volunteer has collected the food.
type StartPickupCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartPickupCommand creates a command to start a pickup.
func NewStartPickupCommand(requestID kernel.UUID) (StartPickupCommand, error) {
	command := StartPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRequestID(requestID); err != nil {
		return StartPickupCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartPickupCommand) Validate() error {
	return c.guard.Validate(ErrStartPickupCommandIsNotConstructed)
}

// RequestID returns the pickup request's identifier.
func (c StartPickupCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c *StartPickupCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.requestID = id
	return nil
}
