package queries

import (
	"errors"
	"time"

	"escrowship/internal/core/domain/model/category"
	"escrowship/internal/core/domain/model/kernel"
	"escrowship/internal/pkg/guard"
)

var ErrGetTimelineQueryIsNotConstructed = errors.New(
	"GetTimelineQuery must be created via NewGetTimelineQuery constructor",
)

// GetTimelineQuery requests the display timeline for a shipment. The
// escrow funding time and category travel with the query so the timeline
// can still be built when the seller has not created a shipment record
// yet.
type GetTimelineQuery struct {
	shipmentID      kernel.UUID
	escrowCreatedAt time.Time
	category        category.Category

	guard guard.ConstructorGuard
}

// NewGetTimelineQuery creates a timeline query.
func NewGetTimelineQuery(
	shipmentID kernel.UUID,
	escrowCreatedAt time.Time,
	cat category.Category,
) (GetTimelineQuery, error) {
	if err := errors.Join(
		shipmentID.Validate(),
		cat.Validate(),
	); err != nil {
		return GetTimelineQuery{}, err
	}

	return GetTimelineQuery{
		shipmentID:      shipmentID,
		escrowCreatedAt: escrowCreatedAt.UTC(),
		category:        cat,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTimelineQuery) Validate() error {
	return q.guard.Validate(ErrGetTimelineQueryIsNotConstructed)
}

// ShipmentID returns the requested shipment identifier.
func (q GetTimelineQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// EscrowCreatedAt returns the escrow funding time.
func (q GetTimelineQuery) EscrowCreatedAt() time.Time {
	return q.escrowCreatedAt
}

// Category returns the item category.
func (q GetTimelineQuery) Category() category.Category {
	return q.category
}
