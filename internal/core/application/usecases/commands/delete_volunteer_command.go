package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrDeleteVolunteerCommandIsNotConstructed = errors.New(
	"DeleteVolunteerCommand must be created via NewDeleteVolunteerCommand constructor",
)

// DeleteVolunteerCommand removes a volunteer profile. Deletion is refused
// while pickup requests still reference it; donation references are
// nulled out instead.
type DeleteVolunteerCommand struct { //nolint:recvcheck //using for validation
	volunteerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteVolunteerCommand creates a command to delete a volunteer.
func NewDeleteVolunteerCommand(volunteerID kernel.UUID) (DeleteVolunteerCommand, error) {
	command := DeleteVolunteerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setVolunteerID(volunteerID); err != nil {
		return DeleteVolunteerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteVolunteerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVolunteerCommandIsNotConstructed)
}

// VolunteerID returns the volunteer's identifier.
func (c DeleteVolunteerCommand) VolunteerID() kernel.UUID {
	return c.volunteerID
}

func (c *DeleteVolunteerCommand) setVolunteerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.volunteerID = id
	return nil
}
