package queries

import (
	"context"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableDonationsQueryHandler lists donations in Available status,
// soonest expiry first so volunteers see the most urgent food.
type GetAvailableDonationsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableDonationsQueryHandler creates a handler for claimable-donation queries.
func NewGetAvailableDonationsQueryHandler(db *gorm.DB) GetAvailableDonationsQueryHandler {
	return GetAvailableDonationsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAvailableDonationsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDonationsQuery,
) ([]GetAvailableDonationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	donations := make([]GetAvailableDonationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			food_item,
			quantity,
			weight,
			expiry_date,
			pickup_location
		FROM food_donations
		WHERE status = ?
		ORDER BY expiry_date
	`, donation.Available.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAvailableDonationsQueryResponse
		var id, restaurantID uuid.UUID

		err = rows.Scan(
			&id,
			&restaurantID,
			&resp.FoodItem,
			&resp.Quantity,
			&resp.Weight,
			&resp.ExpiryDate,
			&resp.PickupLocation,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
			return nil, err
		}

		donations = append(donations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return donations, nil
}
