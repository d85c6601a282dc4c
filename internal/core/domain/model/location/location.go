// Package location provides the read-mostly reference-point entity:
// shelters, community centers, and pickup points that donations flow to.
package location

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
)

// ErrLocationIsNotConstructed is returned when a Location instance was not
// created through NewLocation or RestoreLocation.
var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

// Type classifies a reference location. The string values are part of the
// external contract.
type Type string

const (
	TypeRestaurant      Type = "restaurant"
	TypeShelter         Type = "shelter"
	TypeCommunityCenter Type = "community_center"
	TypePickupPoint     Type = "pickup_point"
)

// Validate checks that the Type holds one of the contract values.
func (t Type) Validate() error {
	switch t {
	case TypeRestaurant, TypeShelter, TypeCommunityCenter, TypePickupPoint:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("location type",
			errs.NewValueIsInvalidError(string(t)))
	}
}

// String returns the contract string for the type.
func (t Type) String() string {
	return string(t)
}

// Location is a static reference point with coordinates. It has no
// lifecycle beyond creation and deactivation.
type Location struct {
	id        kernel.UUID
	name      string
	address   string
	latitude  float64
	longitude float64
	locType   Type

	contactPerson string
	phoneNumber   string
	hours         string
	isActive      bool

	isConstructed bool
}

// NewLocation creates an active reference location.
func NewLocation(id kernel.UUID, name, address string, latitude, longitude float64, locType Type, contactPerson, phoneNumber, hours string) (*Location, error) {
	l := &Location{
		contactPerson: contactPerson,
		phoneNumber:   phoneNumber,
		hours:         hours,
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setName(name),
		l.setAddress(address),
		l.setCoordinates(latitude, longitude),
		l.setType(locType),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLocation rehydrates a location from persistence.
func RestoreLocation(
	id kernel.UUID,
	name, address string,
	latitude, longitude float64,
	locType Type,
	contactPerson, phoneNumber, hours string,
	isActive bool,
) (*Location, error) {
	if err := errors.Join(
		id.Validate(),
		locType.Validate(),
	); err != nil {
		return nil, err
	}

	return &Location{
		id:            id,
		name:          name,
		address:       address,
		latitude:      latitude,
		longitude:     longitude,
		locType:       locType,
		contactPerson: contactPerson,
		phoneNumber:   phoneNumber,
		hours:         hours,
		isActive:      isActive,
		isConstructed: true,
	}, nil
}

// Validate ensures the Location was created through a constructor.
func (l *Location) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLocationIsNotConstructed
	}
	return nil
}

// ID returns the location's unique identifier.
func (l *Location) ID() kernel.UUID {
	return l.id
}

// Name returns the location name.
func (l *Location) Name() string {
	return l.name
}

// Address returns the street address.
func (l *Location) Address() string {
	return l.address
}

// Latitude returns the latitude in degrees.
func (l *Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in degrees.
func (l *Location) Longitude() float64 {
	return l.longitude
}

// LocationType returns the classification.
func (l *Location) LocationType() Type {
	return l.locType
}

// ContactPerson returns the named contact.
func (l *Location) ContactPerson() string {
	return l.contactPerson
}

// PhoneNumber returns the contact phone number.
func (l *Location) PhoneNumber() string {
	return l.phoneNumber
}

// Hours returns the opening-hours descriptor.
func (l *Location) Hours() string {
	return l.hours
}

// IsActive reports whether the location is active.
func (l *Location) IsActive() bool {
	return l.isActive
}

func (l *Location) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Location) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("location name")
	}
	l.name = name
	return nil
}

func (l *Location) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("location address")
	}
	l.address = address
	return nil
}

func (l *Location) setCoordinates(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, -90.0, 90.0)
	}
	if longitude < -180 || longitude > 180 {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, -180.0, 180.0)
	}
	l.latitude = latitude
	l.longitude = longitude
	return nil
}

func (l *Location) setType(locType Type) error {
	if err := locType.Validate(); err != nil {
		return err
	}
	l.locType = locType
	return nil
}
