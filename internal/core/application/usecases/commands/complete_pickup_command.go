package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrCompletePickupCommandIsNotConstructed = errors.New(
	"CompletePickupCommand must be created via NewCompletePickupCommand constructor",
)

// CompletePickupCommand confirms the delivery of a picked-up donation.
type CompletePickupCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompletePickupCommand creates a command to confirm a delivery.
func NewCompletePickupCommand(requestID kernel.UUID) (CompletePickupCommand, error) {
	command := CompletePickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRequestID(requestID); err != nil {
		return CompletePickupCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompletePickupCommand) Validate() error {
	return c.guard.Validate(ErrCompletePickupCommandIsNotConstructed)
}

// RequestID returns the pickup request's identifier.
func (c CompletePickupCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c *CompletePickupCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.requestID = id
	return nil
}
