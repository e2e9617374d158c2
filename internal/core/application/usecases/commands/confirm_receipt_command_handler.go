package commands

import (
	"context"

	"escrowship/internal/core/domain/model/category"
	"escrowship/internal/core/ports"
	"escrowship/internal/pkg/clock"
)

// ConfirmReceiptCommandHandler moves a delivered shipment to confirmed on
// the buyer's say-so and reports the resulting release to the escrow
// subsystem.
type ConfirmReceiptCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      clock.Clock
	notifier   releaseNotifier
}

// NewConfirmReceiptCommandHandler creates a handler for buyer
// confirmations.
func NewConfirmReceiptCommandHandler(
	uowFactory ShipmentUoWFactory,
	clk clock.Clock,
	gateway ports.EscrowGateway,
) ConfirmReceiptCommandHandler {
	return ConfirmReceiptCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
		notifier:   newReleaseNotifier(gateway),
	}
}

// Handle processes the buyer confirmation.
func (h *ConfirmReceiptCommandHandler) Handle(ctx context.Context, cmd ConfirmReceiptCommand) error {
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
	if err = aggregate.ConfirmReceipt(now); err != nil {
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
