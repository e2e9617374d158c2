package queries

import (
	"errors"

	"escrowship/internal/core/domain/model/kernel"
	"escrowship/internal/pkg/guard"
)

var ErrGetShipmentByEscrowQueryIsNotConstructed = errors.New(
	"GetShipmentByEscrowQuery must be created via NewGetShipmentByEscrowQuery constructor",
)

// GetShipmentByEscrowQuery retrieves the shipment settling one escrow
// transaction. Shipments and escrows map 1:1.
type GetShipmentByEscrowQuery struct {
	escrowID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentByEscrowQuery creates a query keyed by escrow identifier.
func NewGetShipmentByEscrowQuery(escrowID kernel.UUID) (GetShipmentByEscrowQuery, error) {
	if err := escrowID.Validate(); err != nil {
		return GetShipmentByEscrowQuery{}, err
	}

	return GetShipmentByEscrowQuery{
		escrowID: escrowID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentByEscrowQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentByEscrowQueryIsNotConstructed)
}

// EscrowID returns the requested escrow identifier.
func (q GetShipmentByEscrowQuery) EscrowID() kernel.UUID {
	return q.escrowID
}
