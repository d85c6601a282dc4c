package queries

import (
	"errors"
	"time"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrGetDonationQueryIsNotConstructed = errors.New(
	"GetDonationQuery must be created via NewGetDonationQuery constructor",
)

// GetDonationQuery retrieves the full detail of a single donation.
type GetDonationQuery struct { //nolint:recvcheck //using for validation
	donationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDonationQuery creates a query for one donation.
func NewGetDonationQuery(donationID kernel.UUID) (GetDonationQuery, error) {
	query := GetDonationQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDonationID(donationID); err != nil {
		return GetDonationQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDonationQuery) Validate() error {
	return q.guard.Validate(ErrGetDonationQueryIsNotConstructed)
}

// DonationID returns the donation's identifier.
func (q GetDonationQuery) DonationID() kernel.UUID {
	return q.donationID
}

func (q *GetDonationQuery) setDonationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.donationID = id
	return nil
}

// GetDonationQueryResponse carries the full donation detail together
// with the joined restaurant and volunteer display names.
type GetDonationQueryResponse struct {
	ID             kernel.UUID
	RestaurantID   kernel.UUID
	RestaurantName string
	VolunteerID    *kernel.UUID
	VolunteerName  *string

	FoodItem   string
	Quantity   int
	Weight     float64
	ExpiryDate time.Time

	Description         string
	PickupLocation      string
	DeliveryLocation    string
	SpecialInstructions string

	Status         string
	PickupTime     *time.Time
	CompletionTime *time.Time
}
