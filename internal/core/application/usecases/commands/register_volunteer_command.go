package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var (
	ErrRegisterVolunteerCommandIsNotConstructed = errors.New(
		"RegisterVolunteerCommand must be created via NewRegisterVolunteerCommand constructor",
	)
	ErrVolunteerNameIsRequired = errors.New("volunteer name is required")
	ErrVehicleTypeIsRequired   = errors.New("vehicle type is required")
)

// RegisterVolunteerCommand creates a user account together with its
// volunteer profile in one operation.
type RegisterVolunteerCommand struct { //nolint:recvcheck //using for validation
	userID      kernel.UUID
	volunteerID kernel.UUID

	username    string
	email       string
	password    string
	firstName   string
	lastName    string
	phoneNumber string

	volunteerName string
	vehicleType   string
	licensePlate  string
	availability  string

	guard guard.ConstructorGuard
}

// NewRegisterVolunteerCommand creates a command to register a volunteer.
func NewRegisterVolunteerCommand(
	userID, volunteerID kernel.UUID,
	username, email, password, firstName, lastName, phoneNumber string,
	volunteerName, vehicleType, licensePlate, availability string,
) (RegisterVolunteerCommand, error) {
	command := RegisterVolunteerCommand{
		firstName:    firstName,
		lastName:     lastName,
		phoneNumber:  phoneNumber,
		licensePlate: licensePlate,
		availability: availability,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setVolunteerID(volunteerID),
		command.setUsername(username),
		command.setEmail(email),
		command.setPassword(password),
		command.setVolunteerName(volunteerName),
		command.setVehicleType(vehicleType),
	); err != nil {
		return RegisterVolunteerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterVolunteerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterVolunteerCommandIsNotConstructed)
}

// UserID returns the identifier for the new user account.
func (c RegisterVolunteerCommand) UserID() kernel.UUID {
	return c.userID
}

// VolunteerID returns the identifier for the new volunteer profile.
func (c RegisterVolunteerCommand) VolunteerID() kernel.UUID {
	return c.volunteerID
}

// Username returns the login name for the new account.
func (c RegisterVolunteerCommand) Username() string {
	return c.username
}

// Email returns the account email address.
func (c RegisterVolunteerCommand) Email() string {
	return c.email
}

// Password returns the account credential.
func (c RegisterVolunteerCommand) Password() string {
	return c.password
}

// FirstName returns the account holder's first name.
func (c RegisterVolunteerCommand) FirstName() string {
	return c.firstName
}

// LastName returns the account holder's last name.
func (c RegisterVolunteerCommand) LastName() string {
	return c.lastName
}

// PhoneNumber returns the account contact phone number.
func (c RegisterVolunteerCommand) PhoneNumber() string {
	return c.phoneNumber
}

// VolunteerName returns the profile's display name.
func (c RegisterVolunteerCommand) VolunteerName() string {
	return c.volunteerName
}

// VehicleType returns the vehicle descriptor.
func (c RegisterVolunteerCommand) VehicleType() string {
	return c.vehicleType
}

// LicensePlate returns the vehicle license plate.
func (c RegisterVolunteerCommand) LicensePlate() string {
	return c.licensePlate
}

// Availability returns the availability descriptor.
func (c RegisterVolunteerCommand) Availability() string {
	return c.availability
}

func (c *RegisterVolunteerCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.userID = id
	return nil
}

func (c *RegisterVolunteerCommand) setVolunteerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.volunteerID = id
	return nil
}

func (c *RegisterVolunteerCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *RegisterVolunteerCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *RegisterVolunteerCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *RegisterVolunteerCommand) setVolunteerName(name string) error {
	if name == "" {
		return ErrVolunteerNameIsRequired
	}

	c.volunteerName = name
	return nil
}

func (c *RegisterVolunteerCommand) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return ErrVehicleTypeIsRequired
	}

	c.vehicleType = vehicleType
	return nil
}
