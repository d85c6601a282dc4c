package volunteerrepo

import (
	"context"
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/volunteer"
	"foodbridge/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVolunteerRepository implements VolunteerRepository using GORM.
type GormVolunteerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVolunteerRepository creates a new GORM volunteer repository.
func NewGormVolunteerRepository(db *gorm.DB, tracker aggregateTracker) *GormVolunteerRepository {
	return &GormVolunteerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new volunteer profile to the database.
func (r *GormVolunteerRepository) Add(ctx context.Context, aggregate *volunteer.Volunteer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing profile with an optimistic-concurrency check on
// the version column.
func (r *GormVolunteerRepository) Update(ctx context.Context, aggregate *volunteer.Volunteer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loaded := dto.Version
	dto.Version = loaded + 1

	result := r.db.WithContext(ctx).Model(&VolunteerDTO{}).
		Where("id = ? AND version = ?", dto.ID, loaded).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&VolunteerDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("volunteer", aggregate.ID().String())
		}
		return errs.NewConcurrencyConflictError("volunteer", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a volunteer by ID.
func (r *GormVolunteerRepository) Get(ctx context.Context, id kernel.UUID) (*volunteer.Volunteer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VolunteerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("volunteer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUser retrieves the profile owned by the user.
func (r *GormVolunteerRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*volunteer.Volunteer, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto VolunteerDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("volunteer for user", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the profile row.
func (r *GormVolunteerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&VolunteerDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("volunteer", id.String())
	}
	return nil
}
