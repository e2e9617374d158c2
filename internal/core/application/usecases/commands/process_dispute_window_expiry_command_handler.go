package commands

import (
	"context"

	"escrowship/internal/core/domain/model/category"
	"escrowship/internal/core/ports"
	"escrowship/internal/pkg/clock"
)

// ProcessDisputeWindowExpiryCommandHandler auto-confirms delivered
// shipments whose dispute window has passed without a dispute. The row is
// locked for the duration of the check, so a buyer confirming or disputing
// at the same instant serializes against the sweep and exactly one of the
// two outcomes wins.
type ProcessDisputeWindowExpiryCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      clock.Clock
	notifier   releaseNotifier
}

// NewProcessDisputeWindowExpiryCommandHandler creates a handler for
// scheduler-driven window expiry.
func NewProcessDisputeWindowExpiryCommandHandler(
	uowFactory ShipmentUoWFactory,
	clk clock.Clock,
	gateway ports.EscrowGateway,
) ProcessDisputeWindowExpiryCommandHandler {
	return ProcessDisputeWindowExpiryCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
		notifier:   newReleaseNotifier(gateway),
	}
}

// Handle sweeps one shipment. Nothing is persisted and nothing is reported
// when the window has not expired or the shipment already reached a state
// the sweep cannot touch.
func (h *ProcessDisputeWindowExpiryCommandHandler) Handle(
	ctx context.Context,
	cmd ProcessDisputeWindowExpiryCommand,
) error {
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

	now := h.clock.Now()
	changed, err := aggregate.ProcessDisputeWindowExpiry(now)
	if err != nil {
		return err
	}
	if !changed {
		return nil
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
