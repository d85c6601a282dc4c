// Package restaurant provides the donor-profile aggregate. Its derived
// totals (donation count, total weight donated) are mutated only through
// RecordDonation, which the completion transaction invokes; no other code
// path may touch them.
package restaurant

import (
	"errors"
	"fmt"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was
// not created through NewRestaurant or RestoreRestaurant.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is the donor profile aggregate.
type Restaurant struct {
	id     kernel.UUID
	userID *kernel.UUID

	name          string
	address       string
	phoneNumber   string
	contactPerson string
	cuisineType   string
	isActive      bool

	// Derived aggregates, owned by the donation completion transaction.
	totalDonations     int
	totalWeightDonated float64
	rating             float64

	version int

	isConstructed bool
}

// NewRestaurant creates an active restaurant profile with zeroed totals.
func NewRestaurant(id kernel.UUID, name, address, phoneNumber, contactPerson, cuisineType string) (*Restaurant, error) {
	r := &Restaurant{
		phoneNumber:   phoneNumber,
		contactPerson: contactPerson,
		cuisineType:   cuisineType,
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setAddress(address),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRestaurant rehydrates a restaurant from persistence.
func RestoreRestaurant(
	id kernel.UUID,
	userID *kernel.UUID,
	name, address, phoneNumber, contactPerson, cuisineType string,
	isActive bool,
	totalDonations int,
	totalWeightDonated float64,
	rating float64,
	version int,
) (*Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return nil, err
		}
	}
	if version < 0 {
		return nil, errs.NewVersionIsInvalidError("restaurant version")
	}

	return &Restaurant{
		id:                 id,
		userID:             userID,
		name:               name,
		address:            address,
		phoneNumber:        phoneNumber,
		contactPerson:      contactPerson,
		cuisineType:        cuisineType,
		isActive:           isActive,
		totalDonations:     totalDonations,
		totalWeightDonated: totalWeightDonated,
		rating:             rating,
		version:            version,
		isConstructed:      true,
	}, nil
}

// Validate ensures the Restaurant was created through a constructor.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// UserID returns the owning user's identifier, or nil for an unowned profile.
func (r *Restaurant) UserID() *kernel.UUID {
	return r.userID
}

// Name returns the restaurant name.
func (r *Restaurant) Name() string {
	return r.name
}

// Address returns the street address.
func (r *Restaurant) Address() string {
	return r.address
}

// PhoneNumber returns the contact phone number.
func (r *Restaurant) PhoneNumber() string {
	return r.phoneNumber
}

// ContactPerson returns the named contact.
func (r *Restaurant) ContactPerson() string {
	return r.contactPerson
}

// CuisineType returns the cuisine descriptor.
func (r *Restaurant) CuisineType() string {
	return r.cuisineType
}

// IsActive reports whether the profile is active.
func (r *Restaurant) IsActive() bool {
	return r.isActive
}

// TotalDonations returns the number of completed donations.
func (r *Restaurant) TotalDonations() int {
	return r.totalDonations
}

// TotalWeightDonated returns the accumulated donated weight in pounds.
func (r *Restaurant) TotalWeightDonated() float64 {
	return r.totalWeightDonated
}

// Rating returns the average rating.
func (r *Restaurant) Rating() float64 {
	return r.rating
}

// Version returns the optimistic-concurrency token as loaded from storage.
func (r *Restaurant) Version() int {
	return r.version
}

// AttachUser links the profile to its owning user account.
func (r *Restaurant) AttachUser(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	r.userID = &userID
	return nil
}

// DetachUser clears the owning-user link, leaving the profile in place.
// Called when the owning user account is deleted.
func (r *Restaurant) DetachUser() {
	r.userID = nil
}

// RecordDonation folds one completed donation into the derived totals.
// Only the donation completion transaction may call this.
func (r *Restaurant) RecordDonation(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%g is not greater than 0", weight))
	}

	r.totalDonations++
	r.totalWeightDonated += weight
	return nil
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("restaurant address")
	}
	r.address = address
	return nil
}
