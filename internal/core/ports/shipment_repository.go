package ports

import (
	"context"

	"escrowship/internal/core/domain/model/kernel"
	"escrowship/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates. The store persists whatever state the aggregate hands it and
// performs no business validation of its own.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// The shipment must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	// The shipment must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	// Inside a transaction the row is locked for update, serializing
	// concurrent mutations of the same shipment.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByEscrowID retrieves the shipment settling the given escrow
	// transaction. Shipments and escrows map 1:1.
	GetByEscrowID(ctx context.Context, escrowID kernel.UUID) (*shipment.Shipment, error)
}
