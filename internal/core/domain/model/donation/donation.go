package donation

import (
	"errors"
	"fmt"
	"time"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
)

// ErrDonationIsNotConstructed is returned when a Donation instance was not
// created through NewDonation or RestoreDonation.
var ErrDonationIsNotConstructed = errors.New("Donation must be created via NewDonation constructor")

// Details carries the optional descriptive attributes of a donation.
type Details struct {
	Description         string
	PickupLocation      string
	DeliveryLocation    string
	SpecialInstructions string
}

// Donation is the aggregate root for a surplus-food offer. It owns the
// lifecycle state machine from posting through assignment, pickup, and
// completion or expiry.
//
// Invariants:
//   - Must reference an existing restaurant
//   - Quantity and weight must be positive
//   - Expiry date must be in the future at posting time
//   - Status transitions follow the lifecycle table; PickupTime and
//     CompletionTime are set exactly once, by their transitions
type Donation struct {
	id           kernel.UUID
	restaurantID kernel.UUID

	// volunteerID is the accepting volunteer (nil until assignment).
	volunteerID *kernel.UUID

	foodItem   string
	quantity   int
	weight     float64
	expiryDate time.Time
	details    Details

	status         Status
	pickupTime     *time.Time
	completionTime *time.Time

	// version is the optimistic-concurrency token checked on update.
	version int

	isConstructed bool
}

// NewDonation creates a donation in Available status. The expiry date is
// validated against the supplied clock so callers and tests control time.
func NewDonation(
	id kernel.UUID,
	restaurantID kernel.UUID,
	foodItem string,
	quantity int,
	weight float64,
	expiryDate time.Time,
	details Details,
	now time.Time,
) (*Donation, error) {
	d := &Donation{
		status:        Available,
		details:       details,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setRestaurantID(restaurantID),
		d.setFoodItem(foodItem),
		d.setQuantity(quantity),
		d.setWeight(weight),
		d.setExpiryDate(expiryDate, now),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDonation rehydrates a donation from persistence without applying
// posting-time validation (an already-stored donation may legitimately
// carry a past expiry date).
func RestoreDonation(
	id kernel.UUID,
	restaurantID kernel.UUID,
	volunteerID *kernel.UUID,
	foodItem string,
	quantity int,
	weight float64,
	expiryDate time.Time,
	details Details,
	status Status,
	pickupTime *time.Time,
	completionTime *time.Time,
	version int,
) (*Donation, error) {
	if err := errors.Join(
		id.Validate(),
		restaurantID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if volunteerID != nil {
		if err := volunteerID.Validate(); err != nil {
			return nil, err
		}
	}
	if version < 0 {
		return nil, errs.NewVersionIsInvalidError("donation version")
	}

	return &Donation{
		id:             id,
		restaurantID:   restaurantID,
		volunteerID:    volunteerID,
		foodItem:       foodItem,
		quantity:       quantity,
		weight:         weight,
		expiryDate:     expiryDate,
		details:        details,
		status:         status,
		pickupTime:     pickupTime,
		completionTime: completionTime,
		version:        version,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Donation was created through a constructor.
func (d *Donation) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDonationIsNotConstructed
	}
	return nil
}

// IsEqual compares donations by identifier.
func (d *Donation) IsEqual(other *Donation) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the donation's unique identifier.
func (d *Donation) ID() kernel.UUID {
	return d.id
}

// RestaurantID returns the owning restaurant's identifier.
func (d *Donation) RestaurantID() kernel.UUID {
	return d.restaurantID
}

// VolunteerID returns the accepting volunteer's identifier, or nil while
// the donation is unassigned.
func (d *Donation) VolunteerID() *kernel.UUID {
	return d.volunteerID
}

// FoodItem returns the food item description.
func (d *Donation) FoodItem() string {
	return d.foodItem
}

// Quantity returns the number of portions offered.
func (d *Donation) Quantity() int {
	return d.quantity
}

// Weight returns the donation weight in pounds.
func (d *Donation) Weight() float64 {
	return d.weight
}

// ExpiryDate returns the time after which the food may no longer be picked up.
func (d *Donation) ExpiryDate() time.Time {
	return d.expiryDate
}

// Details returns the optional descriptive attributes.
func (d *Donation) Details() Details {
	return d.details
}

// Status returns the current lifecycle status.
func (d *Donation) Status() Status {
	return d.status
}

// PickupTime returns when the food was collected, or nil.
func (d *Donation) PickupTime() *time.Time {
	return d.pickupTime
}

// CompletionTime returns when the delivery was confirmed, or nil.
func (d *Donation) CompletionTime() *time.Time {
	return d.completionTime
}

// Version returns the optimistic-concurrency token as loaded from storage.
func (d *Donation) Version() int {
	return d.version
}

// Assign claims the donation for a volunteer. Legal only from Available.
func (d *Donation) Assign(volunteerID kernel.UUID) error {
	if err := volunteerID.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.Assign()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.volunteerID = &volunteerID
	return nil
}

// Unassign releases the donation back to Available when the volunteer
// cancels, clearing the volunteer reference and any recorded pickup time.
func (d *Donation) Unassign() error {
	newStatus, err := d.status.Unassign()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.volunteerID = nil
	d.pickupTime = nil
	return nil
}

// MarkPickedUp records that the volunteer collected the food.
// Legal only from Assigned; sets the pickup time.
func (d *Donation) MarkPickedUp(now time.Time) error {
	newStatus, err := d.status.PickUp()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.pickupTime = &now
	return nil
}

// Complete records delivery confirmation. Legal only from PickedUp; sets
// the completion time. Aggregate statistics on the restaurant and
// volunteer are updated by the completion transaction, not here.
func (d *Donation) Complete(now time.Time) error {
	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.completionTime = &now
	return nil
}

// Expire transitions the donation to Expired. Legal only from Available
// or Assigned, and only once the expiry date has passed.
func (d *Donation) Expire(now time.Time) error {
	if !d.expiryDate.Before(now) {
		return errs.NewValueIsInvalidErrorWithCause("expiry date",
			fmt.Errorf("donation does not expire until %s", d.expiryDate.Format(time.RFC3339)))
	}

	newStatus, err := d.status.Expire()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// UpdateDetails applies a partial update of the descriptive fields.
// Nil pointers leave the prior values in place. Descriptive fields stay
// mutable in every non-terminal state.
func (d *Donation) UpdateDetails(
	foodItem *string,
	quantity *int,
	weight *float64,
	expiryDate *time.Time,
	details *Details,
) error {
	if d.status.IsTerminal() {
		return errs.NewInvalidStateError("donation", d.status.String(), "update")
	}

	if foodItem != nil {
		if err := d.setFoodItem(*foodItem); err != nil {
			return err
		}
	}
	if quantity != nil {
		if err := d.setQuantity(*quantity); err != nil {
			return err
		}
	}
	if weight != nil {
		if err := d.setWeight(*weight); err != nil {
			return err
		}
	}
	if expiryDate != nil {
		d.expiryDate = *expiryDate
	}
	if details != nil {
		d.details = *details
	}
	return nil
}

func (d *Donation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Donation) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	d.restaurantID = id
	return nil
}

func (d *Donation) setFoodItem(foodItem string) error {
	if foodItem == "" {
		return errs.NewValueIsRequiredError("food item")
	}
	d.foodItem = foodItem
	return nil
}

func (d *Donation) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	d.quantity = quantity
	return nil
}

func (d *Donation) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%g is not greater than 0", weight))
	}
	d.weight = weight
	return nil
}

func (d *Donation) setExpiryDate(expiryDate, now time.Time) error {
	if !expiryDate.After(now) {
		return errs.NewValueIsInvalidErrorWithCause("expiry date",
			errors.New("expiry date is in the past"))
	}
	d.expiryDate = expiryDate
	return nil
}
