package queries

import (
	"context"

	"escrowship/internal/core/domain/model/carrier"
	"escrowship/internal/core/domain/model/kernel"
	"escrowship/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInTransitShipmentsQueryResponse carries what the tracking poller
// needs to ask a carrier about one parcel.
type GetInTransitShipmentsQueryResponse struct {
	ID             kernel.UUID
	Carrier        carrier.Carrier
	TrackingNumber string
}

// GetInTransitShipmentsQueryHandler retrieves the tracking poller's work
// list from the database.
type GetInTransitShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetInTransitShipmentsQueryHandler creates a handler for the
// tracking-poll feed.
func NewGetInTransitShipmentsQueryHandler(db *gorm.DB) GetInTransitShipmentsQueryHandler {
	return GetInTransitShipmentsQueryHandler{db: db}
}

// Handle returns all in-transit shipments sorted by identifier.
func (h GetInTransitShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetInTransitShipmentsQuery,
) ([]GetInTransitShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetInTransitShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			carrier,
			tracking_number
		FROM shipments
		WHERE status = ?
		ORDER BY id
	`, int(shipment.InTransit)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetInTransitShipmentsQueryResponse
		var id uuid.UUID
		var carrierValue int

		if err = rows.Scan(&id, &carrierValue, &response.TrackingNumber); err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = shipmentID
		response.Carrier = carrier.Carrier(carrierValue)

		shipments = append(shipments, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
