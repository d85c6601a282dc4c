package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/volunteer"
	"foodbridge/internal/pkg/errs"
	"foodbridge/internal/pkg/guard"
)

var ErrUpdateVolunteerCommandIsNotConstructed = errors.New(
	"UpdateVolunteerCommand must be created via NewUpdateVolunteerCommand constructor",
)

// UpdateVolunteerCommand replaces a volunteer's vehicle and availability
// details. An optional status moves the account between Active, Inactive
// and Suspended, which feeds the acceptance gate on pickup requests.
type UpdateVolunteerCommand struct { //nolint:recvcheck //using for validation
	volunteerID  kernel.UUID
	vehicleType  string
	licensePlate string
	availability string
	isAvailable  bool
	status       *volunteer.Status

	guard guard.ConstructorGuard
}

// NewUpdateVolunteerCommand creates a command to update a volunteer profile.
// A nil status leaves the account standing unchanged.
func NewUpdateVolunteerCommand(
	volunteerID kernel.UUID,
	vehicleType, licensePlate, availability string,
	isAvailable bool,
	status *volunteer.Status,
) (UpdateVolunteerCommand, error) {
	command := UpdateVolunteerCommand{
		licensePlate: licensePlate,
		availability: availability,
		isAvailable:  isAvailable,
		status:       status,
		guard:        guard.NewConstructorGuard(),
	}

	if err := command.setVolunteerID(volunteerID); err != nil {
		return UpdateVolunteerCommand{}, err
	}

	if vehicleType == "" {
		return UpdateVolunteerCommand{}, errs.NewValueIsRequiredError("vehicle type")
	}
	command.vehicleType = vehicleType

	if status != nil {
		if err := status.Validate(); err != nil {
			return UpdateVolunteerCommand{}, err
		}
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateVolunteerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVolunteerCommandIsNotConstructed)
}

// VolunteerID returns the volunteer's identifier.
func (c UpdateVolunteerCommand) VolunteerID() kernel.UUID {
	return c.volunteerID
}

// VehicleType returns the replacement vehicle descriptor.
func (c UpdateVolunteerCommand) VehicleType() string {
	return c.vehicleType
}

// LicensePlate returns the replacement license plate.
func (c UpdateVolunteerCommand) LicensePlate() string {
	return c.licensePlate
}

// Availability returns the replacement availability descriptor.
func (c UpdateVolunteerCommand) Availability() string {
	return c.availability
}

// IsAvailable returns whether the volunteer is taking pickups.
func (c UpdateVolunteerCommand) IsAvailable() bool {
	return c.isAvailable
}

// Status returns the replacement account status, or nil.
func (c UpdateVolunteerCommand) Status() *volunteer.Status {
	return c.status
}

func (c *UpdateVolunteerCommand) setVolunteerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.volunteerID = id
	return nil
}
