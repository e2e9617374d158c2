package shipment

import (
	"fmt"

	"escrowship/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment. It implements a
// state machine whose transitions decide when escrowed funds may move.
//
// State transitions:
//
//	pending ──> in_transit ──> delivered ──> confirmed
//	   │             │             │ ▲  │
//	   │             │             └─┘  │
//	   │             └────────┬─────────┘
//	   │                      ▼
//	   │                   disputed
//	   └──> cancelled  (also reachable from in_transit, delivered, disputed)
//
// delivered→delivered absorbs repeated carrier delivery reports. confirmed
// and cancelled are terminal; disputed has no automatic exit — resolution
// happens outside this core. No transition ever returns to pending.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status: escrow funded, seller has not shipped.
	Pending

	// InTransit means the seller supplied carrier and tracking information.
	InTransit

	// Delivered means the carrier reported delivery (or a manual override).
	// The dispute window runs while in this status.
	Delivered

	// Confirmed means the buyer accepted the item or the dispute window
	// expired; this is the release signal. Terminal.
	Confirmed

	// Disputed means the buyer contested the shipment. Release is frozen;
	// there is no automatic exit.
	Disputed

	// Cancelled means the transaction was abandoned before completion. Terminal.
	Cancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		InTransit: "in_transit",
		Delivered: "delivered",
		Confirmed: "confirmed",
		Disputed:  "disputed",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a wire-format status name.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// String returns the wire-format name of the status.
// Implements fmt.Stringer; safe on invalid values.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the value is a defined, non-Unknown status.
// Used when reconstructing shipments from persistence.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// IsTerminal reports whether the status has no outgoing transitions at all.
// Disputed is deliberately not terminal here: it can still be cancelled as
// part of an external resolution.
func (s Status) IsTerminal() bool {
	return s == Confirmed || s == Cancelled
}

// ValidateShip checks that shipping information may be added from the
// current status without performing the transition. Only pending shipments
// accept shipping information.
func (s Status) ValidateShip() error {
	if s != Pending {
		return errs.NewInvalidTransitionError("add shipping info", s.String())
	}
	return nil
}

// Ship transitions the status to InTransit.
//
// Valid transition: Pending -> InTransit. Everything else is rejected with
// an InvalidTransitionError naming the attempted operation.
func (s Status) Ship() (Status, error) {
	if err := s.ValidateShip(); err != nil {
		return 0, err
	}
	return InTransit, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - InTransit -> Delivered (first delivery report)
//   - Delivered -> Delivered (carrier re-reported delivery; absorbed)
//
// The repeat transition exists so at-least-once tracking feeds never error;
// the aggregate keeps the original delivery time and dispute window.
func (s Status) Deliver() (Status, error) {
	if s != InTransit && s != Delivered {
		return 0, errs.NewInvalidTransitionError("record delivery", s.String())
	}
	return Delivered, nil
}

// Confirm transitions the status to Confirmed.
//
// Valid transition: Delivered -> Confirmed. This is the release signal and
// is irreversible.
func (s Status) Confirm() (Status, error) {
	if s != Delivered {
		return 0, errs.NewInvalidTransitionError("confirm receipt", s.String())
	}
	return Confirmed, nil
}

// Dispute transitions the status to Disputed.
//
// Valid transitions: InTransit -> Disputed (non-arrival disputes) and
// Delivered -> Disputed. Pending shipments have nothing to dispute yet and
// terminal shipments can no longer be contested.
func (s Status) Dispute() (Status, error) {
	if s != InTransit && s != Delivered {
		return 0, errs.NewInvalidTransitionError("report issue", s.String())
	}
	return Disputed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid from any defined status except the terminal ones (Confirmed,
// Cancelled).
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, errs.NewInvalidTransitionErrorWithCause("cancel shipment", s.String(), err)
	}
	if s.IsTerminal() {
		return 0, errs.NewInvalidTransitionError("cancel shipment", s.String())
	}
	return Cancelled, nil
}
