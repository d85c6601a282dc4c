// Package donationrepo persists donation aggregates. It maps the aggregate
// to a flat row, keeps the lifecycle status as its contract string, and
// carries the version column checked by optimistic-concurrency updates.
package donationrepo

import (
	"time"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DonationDTO is the database row for a donation aggregate.
type DonationDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID  `gorm:"type:uuid;index"`
	VolunteerID  *uuid.UUID `gorm:"type:uuid;index"`

	FoodItem   string
	Quantity   int
	Weight     float64
	ExpiryDate time.Time `gorm:"index"`

	Description         string
	PickupLocation      string
	DeliveryLocation    string
	SpecialInstructions string

	Status         string `gorm:"type:text;index"`
	PickupTime     *time.Time
	CompletionTime *time.Time

	Version int
}

// TableName overrides GORM's default naming to use "food_donations".
func (DonationDTO) TableName() string {
	return "food_donations"
}

func fromDomain(aggregate *donation.Donation) DonationDTO {
	var volunteerID *uuid.UUID
	if id := aggregate.VolunteerID(); id != nil {
		raw := id.Bytes()
		volunteerID = &raw
	}

	details := aggregate.Details()
	return DonationDTO{
		ID:                  aggregate.ID().Bytes(),
		RestaurantID:        aggregate.RestaurantID().Bytes(),
		VolunteerID:         volunteerID,
		FoodItem:            aggregate.FoodItem(),
		Quantity:            aggregate.Quantity(),
		Weight:              aggregate.Weight(),
		ExpiryDate:          aggregate.ExpiryDate(),
		Description:         details.Description,
		PickupLocation:      details.PickupLocation,
		DeliveryLocation:    details.DeliveryLocation,
		SpecialInstructions: details.SpecialInstructions,
		Status:              aggregate.Status().String(),
		PickupTime:          aggregate.PickupTime(),
		CompletionTime:      aggregate.CompletionTime(),
		Version:             aggregate.Version(),
	}
}

func toDomain(dto DonationDTO) (*donation.Donation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var volunteerID *kernel.UUID
	if dto.VolunteerID != nil {
		vID, volunteerErr := kernel.UUIDFromBytes((*dto.VolunteerID)[:])
		if volunteerErr != nil {
			return nil, volunteerErr
		}

		volunteerID = &vID
	}

	return donation.RestoreDonation(
		id,
		restaurantID,
		volunteerID,
		dto.FoodItem,
		dto.Quantity,
		dto.Weight,
		dto.ExpiryDate,
		donation.Details{
			Description:         dto.Description,
			PickupLocation:      dto.PickupLocation,
			DeliveryLocation:    dto.DeliveryLocation,
			SpecialInstructions: dto.SpecialInstructions,
		},
		donation.Status(dto.Status),
		dto.PickupTime,
		dto.CompletionTime,
		dto.Version,
	)
}
