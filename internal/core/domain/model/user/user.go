// Package user provides the identity aggregate. A user owns at most one
// restaurant profile and one volunteer profile; deleting a user detaches
// the profile rather than deleting it.
package user

import (
	"errors"
	"strings"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// Role classifies a user account. The string values are part of the
// external contract.
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleRestaurant Role = "Restaurant"
	RoleVolunteer  Role = "Volunteer"
)

// Validate checks that the Role holds one of the contract values.
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleRestaurant, RoleVolunteer:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("user role",
			errs.NewValueIsInvalidError(string(r)))
	}
}

// String returns the contract string for the role.
func (r Role) String() string {
	return string(r)
}

// User is the identity aggregate.
//
// The password is an opaque credential stored verbatim, matching the
// upstream system's behavior. Flagged as a known gap; authentication
// redesign is out of scope.
type User struct {
	id       kernel.UUID
	username string
	email    string
	password string
	role     Role

	firstName   string
	lastName    string
	phoneNumber string
	isActive    bool

	version int

	isConstructed bool
}

// NewUser creates an active user account.
func NewUser(id kernel.UUID, username, email, password string, role Role, firstName, lastName, phoneNumber string) (*User, error) {
	u := &User{
		firstName:     firstName,
		lastName:      lastName,
		phoneNumber:   phoneNumber,
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setEmail(email),
		u.setPassword(password),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rehydrates a user from persistence.
func RestoreUser(
	id kernel.UUID,
	username, email, password string,
	role Role,
	firstName, lastName, phoneNumber string,
	isActive bool,
	version int,
) (*User, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
	); err != nil {
		return nil, err
	}
	if version < 0 {
		return nil, errs.NewVersionIsInvalidError("user version")
	}

	return &User{
		id:            id,
		username:      username,
		email:         email,
		password:      password,
		role:          role,
		firstName:     firstName,
		lastName:      lastName,
		phoneNumber:   phoneNumber,
		isActive:      isActive,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the login name.
func (u *User) Username() string {
	return u.username
}

// Email returns the email address.
func (u *User) Email() string {
	return u.email
}

// Password returns the stored credential.
func (u *User) Password() string {
	return u.password
}

// Role returns the account role.
func (u *User) Role() Role {
	return u.role
}

// FirstName returns the user's first name.
func (u *User) FirstName() string {
	return u.firstName
}

// LastName returns the user's last name.
func (u *User) LastName() string {
	return u.lastName
}

// PhoneNumber returns the contact phone number.
func (u *User) PhoneNumber() string {
	return u.phoneNumber
}

// IsActive reports whether the account is active.
func (u *User) IsActive() bool {
	return u.isActive
}

// Version returns the optimistic-concurrency token as loaded from storage.
func (u *User) Version() int {
	return u.version
}

// FullName returns "First Last" for profile display.
func (u *User) FullName() string {
	return strings.TrimSpace(u.firstName + " " + u.lastName)
}

// Deactivate marks the account inactive.
func (u *User) Deactivate() {
	u.isActive = false
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.password = password
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
