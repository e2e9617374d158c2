package commands

import (
	"context"

	"escrowship/internal/core/domain/model/shipment"
	"escrowship/internal/pkg/clock"
)

// AddProofDocumentCommandHandler appends evidence to a shipment's trail.
// Evidence never changes lifecycle state, so no release evaluation follows.
type AddProofDocumentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      clock.Clock
}

// NewAddProofDocumentCommandHandler creates a handler for evidence
// attachment.
func NewAddProofDocumentCommandHandler(
	uowFactory ShipmentUoWFactory,
	clk clock.Clock,
) AddProofDocumentCommandHandler {
	return AddProofDocumentCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle attaches the document.
func (h *AddProofDocumentCommandHandler) Handle(ctx context.Context, cmd AddProofDocumentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	doc, err := shipment.NewProofDocument(cmd.Kind(), cmd.URI(), h.clock.Now())
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

	repo := uow.ShipmentRepository()
	aggregate, err := repo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = aggregate.AddProofDocument(doc); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
