package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
	"foodbridge/internal/pkg/guard"
)

var ErrRequestPickupCommandIsNotConstructed = errors.New(
	"RequestPickupCommand must be created via NewRequestPickupCommand constructor",
)

// RequestPickupCommand represents a volunteer's claim on an available
// donation, carrying the route estimate the caller computed.
type RequestPickupCommand struct { //nolint:recvcheck //using for validation
	requestID         kernel.UUID
	donationID        kernel.UUID
	volunteerID       kernel.UUID
	notes             string
	distance          float64
	estimatedDuration int

	guard guard.ConstructorGuard
}

// NewRequestPickupCommand creates a command to raise a pickup request.
// Distance is in miles, estimated duration in minutes; zero values mean
// no estimate was supplied.
func NewRequestPickupCommand(
	requestID, donationID, volunteerID kernel.UUID,
	notes string,
	distance float64,
	estimatedDuration int,
) (RequestPickupCommand, error) {
	command := RequestPickupCommand{
		notes:             notes,
		distance:          distance,
		estimatedDuration: estimatedDuration,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRequestID(requestID),
		command.setDonationID(donationID),
		command.setVolunteerID(volunteerID),
	); err != nil {
		return RequestPickupCommand{}, err
	}

	if distance < 0 {
		return RequestPickupCommand{}, errs.NewValueIsInvalidError("distance")
	}
	if estimatedDuration < 0 {
		return RequestPickupCommand{}, errs.NewValueIsInvalidError("estimated duration")
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestPickupCommand) Validate() error {
	return c.guard.Validate(ErrRequestPickupCommandIsNotConstructed)
}

// RequestID returns the identifier for the new pickup request.
func (c RequestPickupCommand) RequestID() kernel.UUID {
	return c.requestID
}

// DonationID returns the claimed donation's identifier.
func (c RequestPickupCommand) DonationID() kernel.UUID {
	return c.donationID
}

// VolunteerID returns the claiming volunteer's identifier.
func (c RequestPickupCommand) VolunteerID() kernel.UUID {
	return c.volunteerID
}

// Notes returns the free-text notes attached to the request.
func (c RequestPickupCommand) Notes() string {
	return c.notes
}

// Distance returns the estimated distance in miles.
func (c RequestPickupCommand) Distance() float64 {
	return c.distance
}

// EstimatedDuration returns the estimated duration in minutes.
func (c RequestPickupCommand) EstimatedDuration() int {
	return c.estimatedDuration
}

func (c *RequestPickupCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.requestID = id
	return nil
}

func (c *RequestPickupCommand) setDonationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.donationID = id
	return nil
}

func (c *RequestPickupCommand) setVolunteerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.volunteerID = id
	return nil
}
