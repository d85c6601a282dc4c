package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/location"
	"foodbridge/internal/pkg/guard"
)

var (
	ErrAddLocationCommandIsNotConstructed = errors.New(
		"AddLocationCommand must be created via NewAddLocationCommand constructor",
	)
	ErrLocationNameIsRequired    = errors.New("location name is required")
	ErrLocationAddressIsRequired = errors.New("location address is required")
)

// AddLocationCommand registers a reference location such as a shelter or
// community center.
type AddLocationCommand struct { //nolint:recvcheck //using for validation
	locationID kernel.UUID

	name      string
	address   string
	latitude  float64
	longitude float64
	locType   location.Type

	contactPerson string
	phoneNumber   string
	hours         string

	guard guard.ConstructorGuard
}

// NewAddLocationCommand creates a command to add a reference location.
// Coordinate range and type checks run in the domain constructor.
func NewAddLocationCommand(
	locationID kernel.UUID,
	name, address string,
	latitude, longitude float64,
	locType location.Type,
	contactPerson, phoneNumber, hours string,
) (AddLocationCommand, error) {
	command := AddLocationCommand{
		latitude:      latitude,
		longitude:     longitude,
		locType:       locType,
		contactPerson: contactPerson,
		phoneNumber:   phoneNumber,
		hours:         hours,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLocationID(locationID),
		command.setName(name),
		command.setAddress(address),
	); err != nil {
		return AddLocationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddLocationCommand) Validate() error {
	return c.guard.Validate(ErrAddLocationCommandIsNotConstructed)
}

// LocationID returns the identifier for the new location.
func (c AddLocationCommand) LocationID() kernel.UUID {
	return c.locationID
}

// Name returns the location name.
func (c AddLocationCommand) Name() string {
	return c.name
}

// Address returns the street address.
func (c AddLocationCommand) Address() string {
	return c.address
}

// Latitude returns the latitude in degrees.
func (c AddLocationCommand) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude in degrees.
func (c AddLocationCommand) Longitude() float64 {
	return c.longitude
}

// LocationType returns the classification.
func (c AddLocationCommand) LocationType() location.Type {
	return c.locType
}

// ContactPerson returns the named contact.
func (c AddLocationCommand) ContactPerson() string {
	return c.contactPerson
}

// PhoneNumber returns the contact phone number.
func (c AddLocationCommand) PhoneNumber() string {
	return c.phoneNumber
}

// Hours returns the opening-hours descriptor.
func (c AddLocationCommand) Hours() string {
	return c.hours
}

func (c *AddLocationCommand) setLocationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.locationID = id
	return nil
}

func (c *AddLocationCommand) setName(name string) error {
	if name == "" {
		return ErrLocationNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddLocationCommand) setAddress(address string) error {
	if address == "" {
		return ErrLocationAddressIsRequired
	}

	c.address = address
	return nil
}
