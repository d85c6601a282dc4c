package queries

import (
	"context"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/pickup"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveRequestsQueryHandler lists pickup requests still in flight,
// oldest first.
type GetActiveRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveRequestsQueryHandler creates a handler for in-flight request queries.
func NewGetActiveRequestsQueryHandler(db *gorm.DB) GetActiveRequestsQueryHandler {
	return GetActiveRequestsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetActiveRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveRequestsQuery,
) ([]GetActiveRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requests := make([]GetActiveRequestsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			donation_id,
			volunteer_id,
			status,
			requested_at,
			notes
		FROM pickup_requests
		WHERE status NOT IN (?, ?)
		ORDER BY requested_at
	`, pickup.Completed.String(), pickup.Cancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveRequestsQueryResponse
		var id, donationID, volunteerID uuid.UUID

		err = rows.Scan(
			&id,
			&donationID,
			&volunteerID,
			&resp.Status,
			&resp.RequestedAt,
			&resp.Notes,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.DonationID, err = kernel.UUIDFromBytes(donationID[:]); err != nil {
			return nil, err
		}
		if resp.VolunteerID, err = kernel.UUIDFromBytes(volunteerID[:]); err != nil {
			return nil, err
		}

		requests = append(requests, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
