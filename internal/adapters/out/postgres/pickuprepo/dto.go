// Package pickuprepo persists pickup request aggregates. A partial unique
// index over active requests backs the one-active-request-per-donation
// rule; Add maps the index violation to a ConflictError.
package pickuprepo

import (
	"time"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/pickup"

	"github.com/google/uuid"
)

// RequestDTO is the database row for a pickup request aggregate.
type RequestDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DonationID  uuid.UUID `gorm:"type:uuid;index"`
	VolunteerID uuid.UUID `gorm:"type:uuid;index"`

	Status      string `gorm:"type:text;index"`
	RequestedAt time.Time
	AcceptedAt  *time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time

	Notes             string
	Distance          float64
	EstimatedDuration int

	Version int
}

// TableName overrides GORM's default naming to use "pickup_requests".
func (RequestDTO) TableName() string {
	return "pickup_requests"
}

func fromDomain(aggregate *pickup.Request) RequestDTO {
	return RequestDTO{
		ID:                aggregate.ID().Bytes(),
		DonationID:        aggregate.DonationID().Bytes(),
		VolunteerID:       aggregate.VolunteerID().Bytes(),
		Status:            aggregate.Status().String(),
		RequestedAt:       aggregate.RequestedAt(),
		AcceptedAt:        aggregate.AcceptedAt(),
		StartedAt:         aggregate.StartedAt(),
		CompletedAt:       aggregate.CompletedAt(),
		Notes:             aggregate.Notes(),
		Distance:          aggregate.Distance(),
		EstimatedDuration: aggregate.EstimatedDuration(),
		Version:           aggregate.Version(),
	}
}

func toDomain(dto RequestDTO) (*pickup.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	donationID, err := kernel.UUIDFromBytes(dto.DonationID[:])
	if err != nil {
		return nil, err
	}

	volunteerID, err := kernel.UUIDFromBytes(dto.VolunteerID[:])
	if err != nil {
		return nil, err
	}

	return pickup.RestoreRequest(
		id,
		donationID,
		volunteerID,
		pickup.Status(dto.Status),
		dto.RequestedAt,
		dto.AcceptedAt,
		dto.StartedAt,
		dto.CompletedAt,
		dto.Notes,
		dto.Distance,
		dto.EstimatedDuration,
		dto.Version,
	)
}
