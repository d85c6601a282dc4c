package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrAcceptPickupCommandIsNotConstructed = errors.New(
	"AcceptPickupCommand must be created via NewAcceptPickupCommand constructor",
)

// AcceptPickupCommand approves a pending pickup request, assigning the
// donation to the requesting volunteer.
type AcceptPickupCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptPickupCommand creates a command to accept a pickup request.
func NewAcceptPickupCommand(requestID kernel.UUID) (AcceptPickupCommand, error) {
	command := AcceptPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRequestID(requestID); err != nil {
		return AcceptPickupCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptPickupCommand) Validate() error {
	return c.guard.Validate(ErrAcceptPickupCommandIsNotConstructed)
}

// RequestID returns the pickup request's identifier.
func (c AcceptPickupCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c *AcceptPickupCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.requestID = id
	return nil
}
