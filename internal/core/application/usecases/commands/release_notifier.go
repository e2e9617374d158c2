package commands

import (
	"context"
	"time"

	"escrowship/internal/core/domain/model/category"
	"escrowship/internal/core/domain/model/shipment"
	"escrowship/internal/core/domain/services"
	"escrowship/internal/core/ports"
)

// releaseNotifier consults the release evaluator after a committed mutation
// and hands the verdict to the escrow subsystem through the gateway port.
type releaseNotifier struct {
	evaluator services.EscrowReleaseEvaluator
	gateway   ports.EscrowGateway
}

func newReleaseNotifier(gateway ports.EscrowGateway) releaseNotifier {
	return releaseNotifier{
		evaluator: services.NewEscrowReleaseEvaluator(),
		gateway:   gateway,
	}
}

// notify evaluates and reports the release decision for the shipment.
// Delivery is best-effort: the decision is re-derivable at any time from
// persisted state, so a failed notification never unwinds the committed
// change that produced it.
func (n releaseNotifier) notify(
	ctx context.Context,
	s *shipment.Shipment,
	policy category.Policy,
	now time.Time,
) {
	decision := n.evaluator.Evaluate(s, policy, now)
	_ = n.gateway.NotifyReleaseDecision(ctx, s.EscrowID(), decision)
}
