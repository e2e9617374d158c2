package queries

import (
	"context"

	"escrowship/internal/core/domain/model/category"
	"escrowship/internal/core/domain/model/kernel"
	"escrowship/internal/core/domain/services"
	"escrowship/internal/core/ports"
	"escrowship/internal/pkg/clock"
)

// GetEscrowReleaseQueryResponse is the release verdict for one shipment.
type GetEscrowReleaseQueryResponse struct {
	ShipmentID kernel.UUID
	EscrowID   kernel.UUID
	Decision   services.ReleaseDecision
}

// GetEscrowReleaseQueryHandler derives a release decision on demand. The
// evaluation needs the full aggregate and the policy, so this read goes
// through the repository instead of a raw projection.
type GetEscrowReleaseQueryHandler struct {
	repo      ports.ShipmentRepository
	clock     clock.Clock
	evaluator services.EscrowReleaseEvaluator
}

// NewGetEscrowReleaseQueryHandler creates a handler for release checks.
func NewGetEscrowReleaseQueryHandler(
	repo ports.ShipmentRepository,
	clk clock.Clock,
) GetEscrowReleaseQueryHandler {
	return GetEscrowReleaseQueryHandler{
		repo:      repo,
		clock:     clk,
		evaluator: services.NewEscrowReleaseEvaluator(),
	}
}

// Handle evaluates the shipment's release conditions at the current
// instant.
func (h GetEscrowReleaseQueryHandler) Handle(
	ctx context.Context,
	query GetEscrowReleaseQuery,
) (GetEscrowReleaseQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetEscrowReleaseQueryResponse{}, err
	}

	aggregate, err := h.repo.Get(ctx, query.ShipmentID())
	if err != nil {
		return GetEscrowReleaseQueryResponse{}, err
	}

	policy, err := category.PolicyFor(aggregate.Category())
	if err != nil {
		return GetEscrowReleaseQueryResponse{}, err
	}

	return GetEscrowReleaseQueryResponse{
		ShipmentID: aggregate.ID(),
		EscrowID:   aggregate.EscrowID(),
		Decision:   h.evaluator.Evaluate(aggregate, policy, h.clock.Now()),
	}, nil
}
