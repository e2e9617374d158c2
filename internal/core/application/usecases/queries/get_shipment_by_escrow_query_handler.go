package queries

import (
	"context"

	"escrowship/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentByEscrowQueryHandler resolves an escrow transaction to its
// shipment read model.
type GetShipmentByEscrowQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentByEscrowQueryHandler creates a handler for escrow-keyed
// shipment retrieval.
func NewGetShipmentByEscrowQueryHandler(db *gorm.DB) GetShipmentByEscrowQueryHandler {
	return GetShipmentByEscrowQueryHandler{db: db}
}

// Handle executes the query for the shipment settling the escrow.
func (h GetShipmentByEscrowQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentByEscrowQuery,
) (ShipmentReadModel, error) {
	if err := query.Validate(); err != nil {
		return ShipmentReadModel{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+shipmentColumns+`
		FROM shipments
		WHERE escrow_id = ?
	`, query.EscrowID().Bytes()).Rows()
	if err != nil {
		return ShipmentReadModel{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ShipmentReadModel{}, err
		}
		return ShipmentReadModel{}, errs.NewObjectNotFoundError("shipment by escrow", query.EscrowID().String())
	}

	model, err := scanShipmentRow(rows)
	if err != nil {
		return ShipmentReadModel{}, err
	}

	return model, rows.Err()
}
