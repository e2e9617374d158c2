package queries

import (
	"context"

	"escrowship/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentQueryHandler retrieves shipment read models from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for shipment retrieval
// queries. Requires a GORM database connection for query execution.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the query for one shipment by identifier.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (ShipmentReadModel, error) {
	if err := query.Validate(); err != nil {
		return ShipmentReadModel{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+shipmentColumns+`
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return ShipmentReadModel{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ShipmentReadModel{}, err
		}
		return ShipmentReadModel{}, errs.NewObjectNotFoundError("shipment", query.ShipmentID().String())
	}

	model, err := scanShipmentRow(rows)
	if err != nil {
		return ShipmentReadModel{}, err
	}

	return model, rows.Err()
}
