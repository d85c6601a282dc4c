package pickuprepo

import (
	"context"
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/pickup"
	"foodbridge/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPickupRequestRepository implements PickupRequestRepository using GORM.
type GormPickupRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPickupRequestRepository creates a new GORM pickup request repository.
func NewGormPickupRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormPickupRequestRepository {
	return &GormPickupRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pickup request. When the donation already has an active
// request, the insert trips the partial unique index and the loser gets a
// ConflictError.
func (r *GormPickupRequestRepository) Add(ctx context.Context, aggregate *pickup.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("donation already has an active pickup request", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing request with an optimistic-concurrency check on
// the version column.
func (r *GormPickupRequestRepository) Update(ctx context.Context, aggregate *pickup.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loaded := dto.Version
	dto.Version = loaded + 1

	result := r.db.WithContext(ctx).Model(&RequestDTO{}).
		Where("id = ? AND version = ?", dto.ID, loaded).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&RequestDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("pickup request", aggregate.ID().String())
		}
		return errs.NewConcurrencyConflictError("pickup request", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a pickup request by ID.
func (r *GormPickupRequestRepository) Get(ctx context.Context, id kernel.UUID) (*pickup.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickup request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByDonation retrieves the single non-terminal request for the
// donation.
func (r *GormPickupRequestRepository) GetActiveByDonation(ctx context.Context, donationID kernel.UUID) (*pickup.Request, error) {
	if err := donationID.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	err := r.db.WithContext(ctx).
		Where("donation_id = ?", donationID.Bytes()).
		Where("status NOT IN ?", terminalStatuses()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active pickup request for donation", donationID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByVolunteer retrieves every request raised by the volunteer.
func (r *GormPickupRequestRepository) GetAllByVolunteer(ctx context.Context, volunteerID kernel.UUID) ([]*pickup.Request, error) {
	if err := volunteerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RequestDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "volunteer_id = ?", volunteerID.Bytes()).Error; err != nil {
		return nil, err
	}

	requests := make([]*pickup.Request, 0, len(dtos))
	for _, dto := range dtos {
		req, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, nil
}

// CountByVolunteer reports how many requests reference the volunteer.
func (r *GormPickupRequestRepository) CountByVolunteer(ctx context.Context, volunteerID kernel.UUID) (int64, error) {
	if err := volunteerID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&RequestDTO{}).
		Where("volunteer_id = ?", volunteerID.Bytes()).
		Count(&count).Error
	return count, err
}

// DeleteAllByDonation removes every request for the donation.
func (r *GormPickupRequestRepository) DeleteAllByDonation(ctx context.Context, donationID kernel.UUID) error {
	if err := donationID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&RequestDTO{}, "donation_id = ?", donationID.Bytes()).Error
}

func terminalStatuses() []string {
	return []string{pickup.Completed.String(), pickup.Cancelled.String()}
}
