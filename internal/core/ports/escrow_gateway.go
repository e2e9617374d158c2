package ports

import (
	"context"

	"escrowship/internal/core/domain/model/kernel"
	"escrowship/internal/core/domain/services"
)

// EscrowGateway hands release decisions to the escrow/funds subsystem.
// Moving the money is that subsystem's job; this service only tells it
// whether and why funds may move.
//
// Notification failures are soft: the decision is re-derivable at any time
// from persisted shipment state, so callers log and continue rather than
// roll back the transition that produced the decision.
type EscrowGateway interface {
	// NotifyReleaseDecision reports the current release verdict for an
	// escrow transaction.
	NotifyReleaseDecision(ctx context.Context, escrowID kernel.UUID, decision services.ReleaseDecision) error
}
