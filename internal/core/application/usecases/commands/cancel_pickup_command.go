package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrCancelPickupCommandIsNotConstructed = errors.New(
	"CancelPickupCommand must be created via NewCancelPickupCommand constructor",
)

// CancelPickupCommand withdraws a pickup request before delivery.
type CancelPickupCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelPickupCommand creates a command to cancel a pickup request.
func NewCancelPickupCommand(requestID kernel.UUID) (CancelPickupCommand, error) {
	command := CancelPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRequestID(requestID); err != nil {
		return CancelPickupCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelPickupCommand) Validate() error {
	return c.guard.Validate(ErrCancelPickupCommandIsNotConstructed)
}

// RequestID returns the pickup request's identifier.
func (c CancelPickupCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c *CancelPickupCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.requestID = id
	return nil
}
