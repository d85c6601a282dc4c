// Package restaurantrepo persists restaurant profile aggregates.
package restaurantrepo

import (
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO is the database row for a restaurant profile.
type RestaurantDTO struct {
	ID     uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID *uuid.UUID `gorm:"type:uuid;index"`

	Name          string
	Address       string
	PhoneNumber   string
	ContactPerson string
	CuisineType   string
	IsActive      bool

	TotalDonations     int
	TotalWeightDonated float64
	Rating             float64

	Version int
}

// TableName overrides GORM's default naming to use "restaurants".
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	var userID *uuid.UUID
	if id := aggregate.UserID(); id != nil {
		raw := id.Bytes()
		userID = &raw
	}

	return RestaurantDTO{
		ID:                 aggregate.ID().Bytes(),
		UserID:             userID,
		Name:               aggregate.Name(),
		Address:            aggregate.Address(),
		PhoneNumber:        aggregate.PhoneNumber(),
		ContactPerson:      aggregate.ContactPerson(),
		CuisineType:        aggregate.CuisineType(),
		IsActive:           aggregate.IsActive(),
		TotalDonations:     aggregate.TotalDonations(),
		TotalWeightDonated: aggregate.TotalWeightDonated(),
		Rating:             aggregate.Rating(),
		Version:            aggregate.Version(),
	}
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var userID *kernel.UUID
	if dto.UserID != nil {
		uID, userErr := kernel.UUIDFromBytes((*dto.UserID)[:])
		if userErr != nil {
			return nil, userErr
		}

		userID = &uID
	}

	return restaurant.RestoreRestaurant(
		id,
		userID,
		dto.Name,
		dto.Address,
		dto.PhoneNumber,
		dto.ContactPerson,
		dto.CuisineType,
		dto.IsActive,
		dto.TotalDonations,
		dto.TotalWeightDonated,
		dto.Rating,
		dto.Version,
	)
}
