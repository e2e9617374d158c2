package queries

import (
	"context"

	"escrowship/internal/core/domain/model/kernel"
	"escrowship/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDueDisputeWindowsQueryResponse identifies one shipment due for the
// window-expiry sweep.
type GetDueDisputeWindowsQueryResponse struct {
	ID kernel.UUID
}

// GetDueDisputeWindowsQueryHandler retrieves the scheduler's expiry work
// list from the database.
type GetDueDisputeWindowsQueryHandler struct {
	db *gorm.DB
}

// NewGetDueDisputeWindowsQueryHandler creates a handler for the expiry
// sweep feed.
func NewGetDueDisputeWindowsQueryHandler(db *gorm.DB) GetDueDisputeWindowsQueryHandler {
	return GetDueDisputeWindowsQueryHandler{db: db}
}

// Handle returns the delivered shipments whose dispute window has passed
// as of the query instant, oldest deadline first.
func (h GetDueDisputeWindowsQueryHandler) Handle(
	ctx context.Context,
	query GetDueDisputeWindowsQuery,
) ([]GetDueDisputeWindowsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	due := make([]GetDueDisputeWindowsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM shipments
		WHERE status = ?
		  AND dispute_window_ends IS NOT NULL
		  AND dispute_window_ends <= ?
		ORDER BY dispute_window_ends
	`, int(shipment.Delivered), query.AsOf()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		due = append(due, GetDueDisputeWindowsQueryResponse{ID: shipmentID})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return due, nil
}
