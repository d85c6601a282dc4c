package queries

import (
	"context"

	"foodbridge/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLocationsQueryHandler lists active reference locations by name.
type GetLocationsQueryHandler struct {
	db *gorm.DB
}

// NewGetLocationsQueryHandler creates a handler for location queries.
func NewGetLocationsQueryHandler(db *gorm.DB) GetLocationsQueryHandler {
	return GetLocationsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetLocationsQueryHandler) Handle(
	ctx context.Context,
	query GetLocationsQuery,
) ([]GetLocationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	locations := make([]GetLocationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			latitude,
			longitude,
			type,
			hours
		FROM locations
		WHERE is_active = true
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetLocationsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Address,
			&resp.Latitude,
			&resp.Longitude,
			&resp.Type,
			&resp.Hours,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		locations = append(locations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return locations, nil
}
