package services

import (
	"time"

	"escrowship/internal/core/domain/model/category"
	"escrowship/internal/core/domain/model/shipment"
)

// ReleaseConditions is the set of facts the evaluator derives from a
// shipment before deciding on release. It is exposed so callers (API,
// operator tooling) can show WHY funds are or are not releasable.
type ReleaseConditions struct {
	// TrackingDelivered: a delivery has been recorded (carrier or manual).
	TrackingDelivered bool

	// BuyerConfirmed: the buyer explicitly confirmed receipt.
	BuyerConfirmed bool

	// DisputeWindowExpired: the post-delivery dispute window has passed.
	DisputeWindowExpired bool

	// DisputeActive: the buyer reported an issue; release is frozen.
	DisputeActive bool

	// SellerFailedSLA: the seller never dispatched within the category's
	// shipping SLA.
	SellerFailedSLA bool
}

// ReleaseDecision is the evaluator's verdict for one shipment at one
// instant.
type ReleaseDecision struct {
	Conditions ReleaseConditions

	// CanRelease is true when escrowed funds may be released to the seller.
	CanRelease bool

	// Reason is a short human-readable explanation of the verdict.
	Reason string
}

// EscrowReleaseEvaluator is a domain service deciding whether escrowed
// funds may be released for a shipment. It is pure: all inputs are passed
// in, including the evaluation instant, so concurrent evaluations of the
// same shipment always agree.
//
// The verdict follows a strict priority order. An active dispute freezes
// release no matter what else is true; a missed shipping SLA comes next;
// only then do the positive release signals (buyer confirmation, expired
// dispute window) get a say.
type EscrowReleaseEvaluator struct{}

// NewEscrowReleaseEvaluator creates a new EscrowReleaseEvaluator instance.
func NewEscrowReleaseEvaluator() EscrowReleaseEvaluator {
	return EscrowReleaseEvaluator{}
}

// Evaluate derives the release conditions for the shipment and applies the
// priority rules:
//
//  1. cancelled shipment       -> no release, "shipment cancelled"
//  2. active dispute           -> no release, "dispute in progress"
//  3. seller missed SLA        -> no release, "seller missed SLA"
//  4. not delivered yet        -> no release, "awaiting delivery"
//  5. buyer confirmed          -> release,    "buyer confirmed"
//  6. dispute window expired   -> release,    "window expired without dispute"
//  7. otherwise                -> no release, "within dispute window"
func (e EscrowReleaseEvaluator) Evaluate(
	s *shipment.Shipment,
	policy category.Policy,
	now time.Time,
) ReleaseDecision {
	now = now.UTC()

	conditions := ReleaseConditions{
		TrackingDelivered: s.DeliveredAt() != nil,
		BuyerConfirmed:    s.Status() == shipment.Confirmed,
		DisputeActive:     s.Status() == shipment.Disputed,
	}

	if windowEnds := s.DisputeWindowEnds(); windowEnds != nil && !now.Before(*windowEnds) {
		conditions.DisputeWindowExpired = true
	}

	// The SLA clock stops at dispatch: a shipment that made it out the door
	// late but is already moving is not failed, only one still pending past
	// the deadline.
	if s.Status() == shipment.Pending {
		slaDeadline := s.CreatedAt().Add(time.Duration(policy.ShippingSLADays) * 24 * time.Hour)
		conditions.SellerFailedSLA = !now.Before(slaDeadline)
	}

	switch {
	case s.Status() == shipment.Cancelled:
		return ReleaseDecision{Conditions: conditions, CanRelease: false, Reason: "shipment cancelled"}
	case conditions.DisputeActive:
		return ReleaseDecision{Conditions: conditions, CanRelease: false, Reason: "dispute in progress"}
	case conditions.SellerFailedSLA:
		return ReleaseDecision{Conditions: conditions, CanRelease: false, Reason: "seller missed SLA"}
	case !conditions.TrackingDelivered:
		return ReleaseDecision{Conditions: conditions, CanRelease: false, Reason: "awaiting delivery"}
	case conditions.BuyerConfirmed:
		return ReleaseDecision{Conditions: conditions, CanRelease: true, Reason: "buyer confirmed"}
	case conditions.DisputeWindowExpired:
		return ReleaseDecision{Conditions: conditions, CanRelease: true, Reason: "window expired without dispute"}
	default:
		return ReleaseDecision{Conditions: conditions, CanRelease: false, Reason: "within dispute window"}
	}
}
