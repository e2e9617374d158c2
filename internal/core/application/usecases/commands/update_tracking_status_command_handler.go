package commands

import (
	"context"

	"escrowship/internal/core/domain/model/category"
	"escrowship/internal/core/ports"
	"escrowship/internal/pkg/clock"
)

// UpdateTrackingStatusCommandHandler records delivery observations. The
// first delivered observation moves the shipment to delivered and starts
// the dispute window; later observations are absorbed without moving the
// window. Non-delivered observations change nothing.
type UpdateTrackingStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      clock.Clock
	notifier   releaseNotifier
}

// NewUpdateTrackingStatusCommandHandler creates a handler for delivery
// observations.
func NewUpdateTrackingStatusCommandHandler(
	uowFactory ShipmentUoWFactory,
	clk clock.Clock,
	gateway ports.EscrowGateway,
) UpdateTrackingStatusCommandHandler {
	return UpdateTrackingStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
		notifier:   newReleaseNotifier(gateway),
	}
}

// Handle processes one delivery observation.
func (h *UpdateTrackingStatusCommandHandler) Handle(ctx context.Context, cmd UpdateTrackingStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Delivered() {
		// No news. Last-known-state stays authoritative.
		return nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	aggregate, err := repo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	policy, err := category.PolicyFor(aggregate.Category())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	deliveredAt := now
	if cmd.DeliveredAt() != nil {
		deliveredAt = *cmd.DeliveredAt()
	}

	if err = aggregate.MarkDelivered(policy, deliveredAt); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.notify(ctx, aggregate, policy, now)
	return nil
}
