package commands

import (
	"context"

	"escrowship/internal/core/domain/model/category"
	"escrowship/internal/core/ports"
	"escrowship/internal/pkg/clock"
)

// AddShippingInfoCommandHandler moves a pending shipment to in_transit
// after checking the seller's dispatch against the category policy:
// carrier approval, tracking number, and the insurance floor.
type AddShippingInfoCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      clock.Clock
	notifier   releaseNotifier
}

// NewAddShippingInfoCommandHandler creates a handler for dispatch
// declarations.
func NewAddShippingInfoCommandHandler(
	uowFactory ShipmentUoWFactory,
	clk clock.Clock,
	gateway ports.EscrowGateway,
) AddShippingInfoCommandHandler {
	return AddShippingInfoCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
		notifier:   newReleaseNotifier(gateway),
	}
}

// Handle processes the dispatch declaration. On any policy violation the
// transaction is rolled back and the shipment stays pending.
func (h *AddShippingInfoCommandHandler) Handle(ctx context.Context, cmd AddShippingInfoCommand) error {
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
	if err = aggregate.AddShippingInfo(
		policy, cmd.Carrier(), cmd.TrackingNumber(),
		cmd.InsuredValue(), cmd.InsuranceConfirmed(), now,
	); err != nil {
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
