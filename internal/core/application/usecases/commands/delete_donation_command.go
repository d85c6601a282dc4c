package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrDeleteDonationCommandIsNotConstructed = errors.New(
	"DeleteDonationCommand must be created via NewDeleteDonationCommand constructor",
)

// DeleteDonationCommand removes a donation and cascades to its pickup
// requests.
type DeleteDonationCommand struct { //nolint:recvcheck //using for validation
	donationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteDonationCommand creates a command to delete a donation.
func NewDeleteDonationCommand(donationID kernel.UUID) (DeleteDonationCommand, error) {
	command := DeleteDonationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDonationID(donationID); err != nil {
		return DeleteDonationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDonationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDonationCommandIsNotConstructed)
}

// DonationID returns the donation's identifier.
func (c DeleteDonationCommand) DonationID() kernel.UUID {
	return c.donationID
}

func (c *DeleteDonationCommand) setDonationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.donationID = id
	return nil
}
