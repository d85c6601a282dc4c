package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var (
	ErrRegisterRestaurantCommandIsNotConstructed = errors.New(
		"RegisterRestaurantCommand must be created via NewRegisterRestaurantCommand constructor",
	)
	ErrUsernameIsRequired       = errors.New("username is required")
	ErrEmailIsRequired          = errors.New("email is required")
	ErrPasswordIsRequired       = errors.New("password is required")
	ErrRestaurantNameIsRequired = errors.New("restaurant name is required")
	ErrAddressIsRequired        = errors.New("address is required")
)

// RegisterRestaurantCommand creates a user account together with its
// restaurant profile in one operation.
type RegisterRestaurantCommand struct { //nolint:recvcheck //using for validation
	userID       kernel.UUID
	restaurantID kernel.UUID

	username    string
	email       string
	password    string
	firstName   string
	lastName    string
	phoneNumber string

	restaurantName string
	address        string
	contactPerson  string
	cuisineType    string

	guard guard.ConstructorGuard
}

// NewRegisterRestaurantCommand creates a command to register a restaurant.
func NewRegisterRestaurantCommand(
	userID, restaurantID kernel.UUID,
	username, email, password, firstName, lastName, phoneNumber string,
	restaurantName, address, contactPerson, cuisineType string,
) (RegisterRestaurantCommand, error) {
	command := RegisterRestaurantCommand{
		firstName:     firstName,
		lastName:      lastName,
		phoneNumber:   phoneNumber,
		contactPerson: contactPerson,
		cuisineType:   cuisineType,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setRestaurantID(restaurantID),
		command.setUsername(username),
		command.setEmail(email),
		command.setPassword(password),
		command.setRestaurantName(restaurantName),
		command.setAddress(address),
	); err != nil {
		return RegisterRestaurantCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrRegisterRestaurantCommandIsNotConstructed)
}

// UserID returns the identifier for the new user account.
func (c RegisterRestaurantCommand) UserID() kernel.UUID {
	return c.userID
}

// RestaurantID returns the identifier for the new restaurant profile.
func (c RegisterRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Username returns the login name for the new account.
func (c RegisterRestaurantCommand) Username() string {
	return c.username
}

// Email returns the account email address.
func (c RegisterRestaurantCommand) Email() string {
	return c.email
}

// Password returns the account credential.
func (c RegisterRestaurantCommand) Password() string {
	return c.password
}

// FirstName returns the account holder's first name.
func (c RegisterRestaurantCommand) FirstName() string {
	return c.firstName
}

// LastName returns the account holder's last name.
func (c RegisterRestaurantCommand) LastName() string {
	return c.lastName
}

// PhoneNumber returns the account contact phone number.
func (c RegisterRestaurantCommand) PhoneNumber() string {
	return c.phoneNumber
}

// RestaurantName returns the profile's display name.
func (c RegisterRestaurantCommand) RestaurantName() string {
	return c.restaurantName
}

// Address returns the restaurant street address.
func (c RegisterRestaurantCommand) Address() string {
	return c.address
}

// ContactPerson returns the named contact for the restaurant.
func (c RegisterRestaurantCommand) ContactPerson() string {
	return c.contactPerson
}

// CuisineType returns the cuisine descriptor.
func (c RegisterRestaurantCommand) CuisineType() string {
	return c.cuisineType
}

func (c *RegisterRestaurantCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.userID = id
	return nil
}

func (c *RegisterRestaurantCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.restaurantID = id
	return nil
}

func (c *RegisterRestaurantCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *RegisterRestaurantCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *RegisterRestaurantCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *RegisterRestaurantCommand) setRestaurantName(name string) error {
	if name == "" {
		return ErrRestaurantNameIsRequired
	}

	c.restaurantName = name
	return nil
}

func (c *RegisterRestaurantCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}
