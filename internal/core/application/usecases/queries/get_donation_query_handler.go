package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDonationQueryHandler reads one donation row in full, joining the
// restaurant and volunteer names so callers need no follow-up lookups.
type GetDonationQueryHandler struct {
	db *gorm.DB
}

// NewGetDonationQueryHandler creates a handler for single-donation queries.
func NewGetDonationQueryHandler(db *gorm.DB) GetDonationQueryHandler {
	return GetDonationQueryHandler{db: db}
}

// Handle executes the query. A missing donation yields an
// ObjectNotFoundError.
func (h GetDonationQueryHandler) Handle(
	ctx context.Context,
	query GetDonationQuery,
) (GetDonationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDonationQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.restaurant_id,
			d.volunteer_id,
			d.food_item,
			d.quantity,
			d.weight,
			d.expiry_date,
			d.description,
			d.pickup_location,
			d.delivery_location,
			d.special_instructions,
			d.status,
			d.pickup_time,
			d.completion_time,
			r.name,
			v.name
		FROM food_donations d
		LEFT JOIN restaurants r ON r.id = d.restaurant_id
		LEFT JOIN volunteers v ON v.id = d.volunteer_id
		WHERE d.id = ?
	`, query.DonationID().Bytes()).Row()

	var resp GetDonationQueryResponse
	var id uuid.UUID
	var restaurantID uuid.UUID
	var volunteerID *uuid.UUID
	var pickupTime, completionTime sql.NullTime
	var restaurantName, volunteerName sql.NullString

	err := row.Scan(
		&id,
		&restaurantID,
		&volunteerID,
		&resp.FoodItem,
		&resp.Quantity,
		&resp.Weight,
		&resp.ExpiryDate,
		&resp.Description,
		&resp.PickupLocation,
		&resp.DeliveryLocation,
		&resp.SpecialInstructions,
		&resp.Status,
		&pickupTime,
		&completionTime,
		&restaurantName,
		&volunteerName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDonationQueryResponse{}, errs.NewObjectNotFoundError("donation", query.DonationID().String())
	}
	if err != nil {
		return GetDonationQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetDonationQueryResponse{}, err
	}
	if resp.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return GetDonationQueryResponse{}, err
	}
	if volunteerID != nil {
		vID, vErr := kernel.UUIDFromBytes((*volunteerID)[:])
		if vErr != nil {
			return GetDonationQueryResponse{}, vErr
		}
		resp.VolunteerID = &vID
	}
	resp.RestaurantName = restaurantName.String
	if volunteerName.Valid {
		name := volunteerName.String
		resp.VolunteerName = &name
	}
	resp.PickupTime = nullableTime(pickupTime)
	resp.CompletionTime = nullableTime(completionTime)

	return resp, nil
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
