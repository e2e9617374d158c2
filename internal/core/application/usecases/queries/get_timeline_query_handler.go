package queries

import (
	"context"
	"errors"

	"escrowship/internal/core/domain/model/category"
	"escrowship/internal/core/domain/model/shipment"
	"escrowship/internal/core/domain/services"
	"escrowship/internal/core/ports"
	"escrowship/internal/pkg/clock"
	"escrowship/internal/pkg/errs"
)

// GetTimelineQueryHandler projects a shipment into its display timeline.
// A missing shipment is not an error: the timeline then shows a funded
// escrow still waiting on the seller.
type GetTimelineQueryHandler struct {
	repo    ports.ShipmentRepository
	clock   clock.Clock
	builder services.TimelineBuilder
}

// NewGetTimelineQueryHandler creates a handler for timeline queries.
func NewGetTimelineQueryHandler(
	repo ports.ShipmentRepository,
	clk clock.Clock,
) GetTimelineQueryHandler {
	return GetTimelineQueryHandler{
		repo:    repo,
		clock:   clk,
		builder: services.NewTimelineBuilder(),
	}
}

// Handle builds the milestone sequence for the shipment.
func (h GetTimelineQueryHandler) Handle(
	ctx context.Context,
	query GetTimelineQuery,
) ([]services.TimelineEvent, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		aggregate       *shipment.Shipment
		cat             = query.Category()
		escrowCreatedAt = query.EscrowCreatedAt()
	)

	found, err := h.repo.Get(ctx, query.ShipmentID())
	switch {
	case err == nil:
		// The persisted record is authoritative over the query's hints.
		aggregate = found
		cat = found.Category()
		escrowCreatedAt = found.CreatedAt()
	case errors.Is(err, errs.ErrObjectNotFound):
		// Escrow funded, shipment not created yet.
	default:
		return nil, err
	}

	policy, err := category.PolicyFor(cat)
	if err != nil {
		return nil, err
	}

	return h.builder.BuildTimelineEvents(aggregate, escrowCreatedAt, policy, h.clock.Now()), nil
}
