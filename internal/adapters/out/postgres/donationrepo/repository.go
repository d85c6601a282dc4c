package donationrepo

import (
	"context"
	"errors"
	"time"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDonationRepository implements DonationRepository using GORM.
type GormDonationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDonationRepository creates a new GORM donation repository.
func NewGormDonationRepository(db *gorm.DB, tracker aggregateTracker) *GormDonationRepository {
	return &GormDonationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new donation to the database.
func (r *GormDonationRepository) Add(ctx context.Context, aggregate *donation.Donation) error {
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

// Update saves an existing donation. The row's version column must still
// hold the version the aggregate was loaded with; a mismatch means another
// operation won the race and yields a ConcurrencyConflictError.
func (r *GormDonationRepository) Update(ctx context.Context, aggregate *donation.Donation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loaded := dto.Version
	dto.Version = loaded + 1

	result := r.db.WithContext(ctx).Model(&DonationDTO{}).
		Where("id = ? AND version = ?", dto.ID, loaded).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&DonationDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("donation", aggregate.ID().String())
		}
		return errs.NewConcurrencyConflictError("donation", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a donation by ID.
func (r *GormDonationRepository) Get(ctx context.Context, id kernel.UUID) (*donation.Donation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DonationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("donation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInStatus retrieves all donations with the given status.
func (r *GormDonationRepository) GetAllInStatus(ctx context.Context, status donation.Status) ([]*donation.Donation, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []DonationDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", status.String()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllExpiring retrieves Available and Assigned donations whose expiry
// date has passed.
func (r *GormDonationRepository) GetAllExpiring(ctx context.Context, now time.Time) ([]*donation.Donation, error) {
	var dtos []DonationDTO
	err := r.db.WithContext(ctx).
		Where("status IN ?", []string{donation.Available.String(), donation.Assigned.String()}).
		Where("expiry_date < ?", now).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// CountByRestaurant reports how many donations reference the restaurant.
func (r *GormDonationRepository) CountByRestaurant(ctx context.Context, restaurantID kernel.UUID) (int64, error) {
	if err := restaurantID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&DonationDTO{}).
		Where("restaurant_id = ?", restaurantID.Bytes()).
		Count(&count).Error
	return count, err
}

// ClearVolunteer nulls the volunteer reference on every donation pointing
// at the volunteer.
func (r *GormDonationRepository) ClearVolunteer(ctx context.Context, volunteerID kernel.UUID) error {
	if err := volunteerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&DonationDTO{}).
		Where("volunteer_id = ?", volunteerID.Bytes()).
		Update("volunteer_id", nil).Error
}

// Delete removes the donation row.
func (r *GormDonationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DonationDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("donation", id.String())
	}
	return nil
}

func toDomainSlice(dtos []DonationDTO) ([]*donation.Donation, error) {
	donations := make([]*donation.Donation, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		donations = append(donations, d)
	}
	return donations, nil
}
