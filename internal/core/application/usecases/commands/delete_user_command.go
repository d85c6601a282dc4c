package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

// DeleteUserCommand removes a user account, detaching any owned profiles
// rather than deleting them.
type DeleteUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteUserCommand creates a command to delete a user account.
func NewDeleteUserCommand(userID kernel.UUID) (DeleteUserCommand, error) {
	command := DeleteUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setUserID(userID); err != nil {
		return DeleteUserCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

// UserID returns the user's identifier.
func (c DeleteUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *DeleteUserCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.userID = id
	return nil
}
