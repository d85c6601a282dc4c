// Package locationrepo persists reference locations.
package locationrepo

import (
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/location"

	"github.com/google/uuid"
)

// LocationDTO is the database row for a reference location.
type LocationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	Type      string `gorm:"type:text"`

	ContactPerson string
	PhoneNumber   string
	Hours         string
	IsActive      bool
}

// TableName overrides GORM's default naming to use "locations".
func (LocationDTO) TableName() string {
	return "locations"
}

func fromDomain(aggregate *location.Location) LocationDTO {
	return LocationDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Address:       aggregate.Address(),
		Latitude:      aggregate.Latitude(),
		Longitude:     aggregate.Longitude(),
		Type:          aggregate.LocationType().String(),
		ContactPerson: aggregate.ContactPerson(),
		PhoneNumber:   aggregate.PhoneNumber(),
		Hours:         aggregate.Hours(),
		IsActive:      aggregate.IsActive(),
	}
}

func toDomain(dto LocationDTO) (*location.Location, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return location.RestoreLocation(
		id,
		dto.Name,
		dto.Address,
		dto.Latitude,
		dto.Longitude,
		location.Type(dto.Type),
		dto.ContactPerson,
		dto.PhoneNumber,
		dto.Hours,
		dto.IsActive,
	)
}
