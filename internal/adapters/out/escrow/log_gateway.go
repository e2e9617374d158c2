// Package escrow provides gateways toward the escrow/funds subsystem.
package escrow

import (
	"context"
	"log/slog"

	"escrowship/internal/core/domain/model/kernel"
	"escrowship/internal/core/domain/services"
)

// LogEscrowGateway records release decisions in the application log instead
// of calling a payments system. Stands in until the real escrow backend is
// wired; the decision itself is always re-derivable from shipment state, so
// nothing is lost by only logging it.
type LogEscrowGateway struct {
	logger *slog.Logger
}

// NewLogEscrowGateway creates a gateway that logs release decisions.
func NewLogEscrowGateway(logger *slog.Logger) *LogEscrowGateway {
	return &LogEscrowGateway{
		logger: logger.With("component", "escrow_gateway"),
	}
}

// NotifyReleaseDecision logs the verdict for the escrow transaction.
func (g *LogEscrowGateway) NotifyReleaseDecision(
	ctx context.Context,
	escrowID kernel.UUID,
	decision services.ReleaseDecision,
) error {
	g.logger.InfoContext(ctx, "Escrow release decision",
		"escrowId", escrowID.String(),
		"canRelease", decision.CanRelease,
		"reason", decision.Reason,
		"trackingDelivered", decision.Conditions.TrackingDelivered,
		"buyerConfirmed", decision.Conditions.BuyerConfirmed,
		"disputeWindowExpired", decision.Conditions.DisputeWindowExpired,
		"disputeActive", decision.Conditions.DisputeActive,
		"sellerFailedSLA", decision.Conditions.SellerFailedSLA,
	)
	return nil
}
