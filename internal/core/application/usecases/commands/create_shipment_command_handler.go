package commands

import (
	"context"

	"escrowship/internal/core/domain/model/category"
	"escrowship/internal/core/domain/model/shipment"
	"escrowship/internal/core/ports"
	"escrowship/internal/pkg/clock"
)

// CreateShipmentCommandHandler handles the business logic for opening a
// shipment record. The record starts pending, with the escrow funding time
// anchoring the seller's shipping SLA.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      clock.Clock
	notifier   releaseNotifier
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation
// operations.
func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	clk clock.Clock,
	gateway ports.EscrowGateway,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
		notifier:   newReleaseNotifier(gateway),
	}
}

// Handle processes the shipment creation command. The category policy is
// resolved up front so a category without a registered policy fails before
// anything is persisted.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	policy, err := category.PolicyFor(cmd.Category())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	aggregate, err := shipment.NewShipment(
		cmd.ShipmentID(), cmd.EscrowID(), cmd.Category(), cmd.DeclaredValue(), now)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.notify(ctx, aggregate, policy, now)
	return nil
}
