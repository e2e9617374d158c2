package commands

import (
	"context"

	"escrowship/internal/core/domain/model/category"
	"escrowship/internal/core/ports"
	"escrowship/internal/pkg/clock"
)

// CancelShipmentCommandHandler moves a non-terminal shipment to cancelled
// and reports the frozen release to the escrow subsystem so it can refund
// the buyer.
type CancelShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      clock.Clock
	notifier   releaseNotifier
}

// NewCancelShipmentCommandHandler creates a handler for cancellations.
func NewCancelShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	clk clock.Clock,
	gateway ports.EscrowGateway,
) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
		notifier:   newReleaseNotifier(gateway),
	}
}

// Handle processes the cancellation.
func (h *CancelShipmentCommandHandler) Handle(ctx context.Context, cmd CancelShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
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

	if err = aggregate.Cancel(cmd.Reason()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.notify(ctx, aggregate, policy, h.clock.Now())
	return nil
}
