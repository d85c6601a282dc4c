// Package volunteerrepo persists volunteer profile aggregates.
package volunteerrepo

import (
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/volunteer"

	"github.com/google/uuid"
)

// VolunteerDTO is the database row for a volunteer profile.
type VolunteerDTO struct {
	ID     uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID *uuid.UUID `gorm:"type:uuid;index"`

	Name         string
	VehicleType  string
	LicensePlate string
	Availability string
	IsAvailable  bool

	TotalPickups int
	Rating       float64
	Status       string `gorm:"type:text"`

	Version int
}

// TableName overrides GORM's default naming to use "volunteers".
func (VolunteerDTO) TableName() string {
	return "volunteers"
}

func fromDomain(aggregate *volunteer.Volunteer) VolunteerDTO {
	var userID *uuid.UUID
	if id := aggregate.UserID(); id != nil {
		raw := id.Bytes()
		userID = &raw
	}

	return VolunteerDTO{
		ID:           aggregate.ID().Bytes(),
		UserID:       userID,
		Name:         aggregate.Name(),
		VehicleType:  aggregate.VehicleType(),
		LicensePlate: aggregate.LicensePlate(),
		Availability: aggregate.Availability(),
		IsAvailable:  aggregate.IsAvailable(),
		TotalPickups: aggregate.TotalPickups(),
		Rating:       aggregate.Rating(),
		Status:       aggregate.Status().String(),
		Version:      aggregate.Version(),
	}
}

func toDomain(dto VolunteerDTO) (*volunteer.Volunteer, error) {
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

	return volunteer.RestoreVolunteer(
		id,
		userID,
		dto.Name,
		dto.VehicleType,
		dto.LicensePlate,
		dto.Availability,
		dto.IsAvailable,
		dto.TotalPickups,
		dto.Rating,
		volunteer.Status(dto.Status),
		dto.Version,
	)
}
