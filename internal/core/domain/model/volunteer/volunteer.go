package volunteer

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
)

// ErrVolunteerIsNotConstructed is returned when a Volunteer instance was
// not created through NewVolunteer or RestoreVolunteer.
var ErrVolunteerIsNotConstructed = errors.New("Volunteer must be created via NewVolunteer constructor")

// Volunteer is the pickup-provider profile aggregate. Its derived total
// (pickup count) is mutated only through RecordPickup, which the donation
// completion transaction invokes.
type Volunteer struct {
	id     kernel.UUID
	userID *kernel.UUID

	name         string
	vehicleType  string
	licensePlate string

	// availability is a free-text descriptor such as "Weekends" or "Flexible".
	availability string
	isAvailable  bool

	totalPickups int
	rating       float64
	status       Status

	version int

	isConstructed bool
}

// NewVolunteer creates an available, Active volunteer profile.
func NewVolunteer(id kernel.UUID, name, vehicleType, licensePlate, availability string) (*Volunteer, error) {
	v := &Volunteer{
		licensePlate:  licensePlate,
		availability:  availability,
		isAvailable:   true,
		status:        Active,
		isConstructed: true,
	}

	if err := errors.Join(
		v.setID(id),
		v.setName(name),
		v.setVehicleType(vehicleType),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVolunteer rehydrates a volunteer from persistence.
func RestoreVolunteer(
	id kernel.UUID,
	userID *kernel.UUID,
	name, vehicleType, licensePlate, availability string,
	isAvailable bool,
	totalPickups int,
	rating float64,
	status Status,
	version int,
) (*Volunteer, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return nil, err
		}
	}
	if version < 0 {
		return nil, errs.NewVersionIsInvalidError("volunteer version")
	}

	return &Volunteer{
		id:            id,
		userID:        userID,
		name:          name,
		vehicleType:   vehicleType,
		licensePlate:  licensePlate,
		availability:  availability,
		isAvailable:   isAvailable,
		totalPickups:  totalPickups,
		rating:        rating,
		status:        status,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the Volunteer was created through a constructor.
func (v *Volunteer) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVolunteerIsNotConstructed
	}
	return nil
}

// ID returns the volunteer's unique identifier.
func (v *Volunteer) ID() kernel.UUID {
	return v.id
}

// UserID returns the owning user's identifier, or nil for an unowned profile.
func (v *Volunteer) UserID() *kernel.UUID {
	return v.userID
}

// Name returns the volunteer's display name.
func (v *Volunteer) Name() string {
	return v.name
}

// VehicleType returns the vehicle descriptor ("Car", "Truck", "Van", "Bicycle").
func (v *Volunteer) VehicleType() string {
	return v.vehicleType
}

// LicensePlate returns the vehicle license plate.
func (v *Volunteer) LicensePlate() string {
	return v.licensePlate
}

// Availability returns the availability descriptor.
func (v *Volunteer) Availability() string {
	return v.availability
}

// IsAvailable reports whether the volunteer is currently taking pickups.
func (v *Volunteer) IsAvailable() bool {
	return v.isAvailable
}

// TotalPickups returns the number of completed pickups.
func (v *Volunteer) TotalPickups() int {
	return v.totalPickups
}

// Rating returns the average rating.
func (v *Volunteer) Rating() float64 {
	return v.rating
}

// Status returns the account status.
func (v *Volunteer) Status() Status {
	return v.status
}

// Version returns the optimistic-concurrency token as loaded from storage.
func (v *Volunteer) Version() int {
	return v.version
}

// CanAccept reports whether the volunteer may claim a donation.
// Returns a ConflictError naming the blocking condition otherwise.
func (v *Volunteer) CanAccept() error {
	if v.status == Suspended {
		return errs.NewConflictError("volunteer is suspended")
	}
	if v.status == Inactive {
		return errs.NewConflictError("volunteer is inactive")
	}
	if !v.isAvailable {
		return errs.NewConflictError("volunteer is unavailable")
	}
	return nil
}

// UpdateProfile replaces the vehicle and availability descriptors.
func (v *Volunteer) UpdateProfile(vehicleType, licensePlate, availability string) error {
	if err := v.setVehicleType(vehicleType); err != nil {
		return err
	}
	v.licensePlate = licensePlate
	v.availability = availability
	return nil
}

// SetAvailable toggles whether the volunteer is taking pickups.
func (v *Volunteer) SetAvailable(available bool) {
	v.isAvailable = available
}

// Suspend moves the account to Suspended.
func (v *Volunteer) Suspend() {
	v.status = Suspended
}

// Deactivate moves the account to Inactive.
func (v *Volunteer) Deactivate() {
	v.status = Inactive
}

// Activate moves the account back to Active.
func (v *Volunteer) Activate() {
	v.status = Active
}

// AttachUser links the profile to its owning user account.
func (v *Volunteer) AttachUser(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	v.userID = &userID
	return nil
}

// DetachUser clears the owning-user link, leaving the profile in place.
func (v *Volunteer) DetachUser() {
	v.userID = nil
}

// RecordPickup folds one completed pickup into the derived total.
// Only the donation completion transaction may call this.
func (v *Volunteer) RecordPickup() {
	v.totalPickups++
}

func (v *Volunteer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Volunteer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("volunteer name")
	}
	v.name = name
	return nil
}

func (v *Volunteer) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicle type")
	}
	v.vehicleType = vehicleType
	return nil
}
