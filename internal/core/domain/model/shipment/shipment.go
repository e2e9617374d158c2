package shipment

import (
	"errors"
	"time"

	"escrowship/internal/core/domain/model/carrier"
	"escrowship/internal/core/domain/model/category"
	"escrowship/internal/core/domain/model/kernel"
	"escrowship/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New(
	"Shipment must be created via NewShipment or RestoreShipment")

// Shipment is the aggregate root tracking one physical item from escrow
// funding to the release (or freeze) of the escrowed funds. It is keyed 1:1
// to an external escrow transaction.
//
// Invariants:
//   - Status only moves along the graph documented on Status; it never
//     returns to pending.
//   - disputeWindowEnds is computed exactly once, at the first delivery
//     report, as deliveredAt + policy.DisputeWindowHours; later delivery
//     reports never move it.
//   - Every mutation that fails its precondition returns a typed error
//     naming the violated condition; nothing is silently ignored.
//
// The aggregate holds no clock and performs no I/O: callers pass `now` in,
// which keeps each decision consistent under concurrent evaluation.
type Shipment struct {
	id       kernel.UUID
	escrowID kernel.UUID
	category category.Category

	carrier            carrier.Carrier
	trackingNumber     string
	declaredValue      kernel.Money
	insuredValue       kernel.Money
	insuranceConfirmed bool

	status       Status
	cancelReason string

	createdAt         time.Time
	shippedAt         *time.Time
	deliveredAt       *time.Time
	confirmedAt       *time.Time
	disputeWindowEnds *time.Time

	proofDocuments []ProofDocument

	isConstructed bool
}

// NewShipment creates a pending shipment for a freshly funded escrow.
//
// Parameters:
//   - id: unique shipment identifier
//   - escrowID: the funded escrow transaction this shipment settles (1:1)
//   - cat: item category; its policy governs carriers, insurance, deadlines
//   - declaredValue: seller-declared item value
//   - createdAt: escrow funding time, the anchor for the shipping SLA
func NewShipment(
	id kernel.UUID,
	escrowID kernel.UUID,
	cat category.Category,
	declaredValue kernel.Money,
	createdAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:        Pending,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setEscrowID(escrowID),
		s.setCategory(cat),
		s.setDeclaredValue(declaredValue),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence without applying
// business rules; the store hands back whatever state was persisted.
func RestoreShipment(
	id kernel.UUID,
	escrowID kernel.UUID,
	cat category.Category,
	status Status,
	shipCarrier carrier.Carrier,
	trackingNumber string,
	declaredValue kernel.Money,
	insuredValue kernel.Money,
	insuranceConfirmed bool,
	cancelReason string,
	createdAt time.Time,
	shippedAt, deliveredAt, confirmedAt, disputeWindowEnds *time.Time,
	proofDocuments []ProofDocument,
) (*Shipment, error) {
	if err := errors.Join(
		id.Validate(),
		escrowID.Validate(),
		cat.Validate(),
		status.Validate(),
		declaredValue.Validate(),
	); err != nil {
		return nil, err
	}

	return &Shipment{
		id:                 id,
		escrowID:           escrowID,
		category:           cat,
		status:             status,
		carrier:            shipCarrier,
		trackingNumber:     trackingNumber,
		declaredValue:      declaredValue,
		insuredValue:       insuredValue,
		insuranceConfirmed: insuranceConfirmed,
		cancelReason:       cancelReason,
		createdAt:          createdAt.UTC(),
		shippedAt:          shippedAt,
		deliveredAt:        deliveredAt,
		confirmedAt:        confirmedAt,
		disputeWindowEnds:  disputeWindowEnds,
		proofDocuments:     proofDocuments,
		isConstructed:      true,
	}, nil
}

// Validate ensures the instance came from NewShipment or RestoreShipment.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by identifier.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID { return s.id }

// EscrowID returns the identifier of the escrow transaction this shipment settles.
func (s *Shipment) EscrowID() kernel.UUID { return s.escrowID }

// Category returns the item category.
func (s *Shipment) Category() category.Category { return s.category }

// Carrier returns the shipping carrier (Unknown until shipping info is added).
func (s *Shipment) Carrier() carrier.Carrier { return s.carrier }

// TrackingNumber returns the carrier tracking number ("" until shipped).
func (s *Shipment) TrackingNumber() string { return s.trackingNumber }

// DeclaredValue returns the seller-declared item value.
func (s *Shipment) DeclaredValue() kernel.Money { return s.declaredValue }

// InsuredValue returns the insured value (zero value until shipped, or when
// the category waives insurance).
func (s *Shipment) InsuredValue() kernel.Money { return s.insuredValue }

// InsuranceConfirmed reports whether the seller confirmed shipping insurance.
func (s *Shipment) InsuranceConfirmed() bool { return s.insuranceConfirmed }

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status { return s.status }

// CancelReason returns the recorded reason for cancellation ("" otherwise).
func (s *Shipment) CancelReason() string { return s.cancelReason }

// CreatedAt returns the escrow funding time.
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }

// ShippedAt returns when shipping info was added, nil before dispatch.
func (s *Shipment) ShippedAt() *time.Time { return s.shippedAt }

// DeliveredAt returns the first recorded delivery time, nil before delivery.
func (s *Shipment) DeliveredAt() *time.Time { return s.deliveredAt }

// ConfirmedAt returns when receipt was confirmed, nil before confirmation.
func (s *Shipment) ConfirmedAt() *time.Time { return s.confirmedAt }

// DisputeWindowEnds returns the dispute deadline, set once at first delivery.
func (s *Shipment) DisputeWindowEnds() *time.Time { return s.disputeWindowEnds }

// ProofDocuments returns the ordered evidence trail.
func (s *Shipment) ProofDocuments() []ProofDocument { return s.proofDocuments }

// TrackingURL returns the carrier's public tracking link for this shipment,
// or "" when no carrier/tracking info exists or the carrier has no public page.
func (s *Shipment) TrackingURL() string {
	return s.carrier.TrackingURL(s.trackingNumber)
}

// AddShippingInfo records the seller's dispatch details and moves the
// shipment to in_transit.
//
// Preconditions, checked in order:
//   - status is pending (InvalidTransitionError otherwise)
//   - carrier is valid and approved by the category policy
//     (CarrierNotApprovedError)
//   - tracking number is present
//   - when the policy requires insurance: insured value covers the policy
//     floor (InsufficientInsuranceError) and the seller confirmed the
//     insurance (ErrInsuranceNotConfirmed)
//
// On success shippedAt is set to now. On any failure the shipment is left
// untouched, still pending.
func (s *Shipment) AddShippingInfo(
	policy category.Policy,
	shipCarrier carrier.Carrier,
	trackingNumber string,
	insuredValue kernel.Money,
	insuranceConfirmed bool,
	now time.Time,
) error {
	if err := s.status.ValidateShip(); err != nil {
		return err
	}

	if err := shipCarrier.Validate(); err != nil {
		return err
	}
	if !policy.Approves(shipCarrier) {
		return &CarrierNotApprovedError{Carrier: shipCarrier, Category: s.category}
	}
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}

	if policy.RequiresInsurance {
		if err := insuredValue.Validate(); err != nil {
			return err
		}
		floor := s.declaredValue.Percent(policy.MinInsurancePercent)
		if !insuredValue.GreaterOrEqual(floor) {
			return &InsufficientInsuranceError{
				InsuredCents:  insuredValue.Cents(),
				RequiredCents: floor.Cents(),
				MinPercent:    policy.MinInsurancePercent,
			}
		}
		if !insuranceConfirmed {
			return ErrInsuranceNotConfirmed
		}
	}

	newStatus, err := s.status.Ship()
	if err != nil {
		return err
	}

	shippedAt := now.UTC()
	s.status = newStatus
	s.carrier = shipCarrier
	s.trackingNumber = trackingNumber
	s.insuredValue = insuredValue
	s.insuranceConfirmed = insuranceConfirmed
	s.shippedAt = &shippedAt
	return nil
}

// MarkDelivered records a delivery observation (carrier report or manual
// override) and moves the shipment to delivered.
//
// The first delivery sets deliveredAt and computes disputeWindowEnds as
// deliveredAt + policy.DisputeWindowHours. Once delivered, repeated calls
// are no-ops: the original delivery time and window stand even if a later
// report carries a different time.
func (s *Shipment) MarkDelivered(policy category.Policy, deliveredAt time.Time) error {
	newStatus, err := s.status.Deliver()
	if err != nil {
		return err
	}

	if s.status == Delivered {
		// Re-reported delivery. The window was already set; keep it.
		return nil
	}

	delivered := deliveredAt.UTC()
	windowEnds := delivered.Add(time.Duration(policy.DisputeWindowHours) * time.Hour)
	s.status = newStatus
	s.deliveredAt = &delivered
	s.disputeWindowEnds = &windowEnds
	return nil
}

// ConfirmReceipt records the buyer's acceptance and moves the shipment to
// confirmed. Irreversible; this is the buyer-triggered release signal.
func (s *Shipment) ConfirmReceipt(now time.Time) error {
	newStatus, err := s.status.Confirm()
	if err != nil {
		return err
	}

	confirmedAt := now.UTC()
	s.status = newStatus
	s.confirmedAt = &confirmedAt
	return nil
}

// ReportIssue records a buyer dispute and moves the shipment to disputed,
// permanently freezing release. Allowed from in_transit (non-arrival) and
// delivered (item problems); there is no automatic exit from disputed.
func (s *Shipment) ReportIssue() error {
	newStatus, err := s.status.Dispute()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// Cancel abandons the transaction. Allowed from any non-terminal status;
// confirmed and cancelled shipments reject it.
func (s *Shipment) Cancel(reason string) error {
	newStatus, err := s.status.Cancel()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.cancelReason = reason
	return nil
}

// ProcessDisputeWindowExpiry auto-confirms a delivered shipment whose
// dispute window has passed. It returns whether the shipment changed.
//
// The operation tolerates at-least-once scheduling:
//   - delivered, window passed: transition to confirmed (changed=true)
//   - delivered, window still open: nothing happens
//   - already confirmed or disputed: no-op, never an error
//   - pending, in_transit, cancelled: InvalidTransitionError — the
//     scheduler only sweeps delivered shipments, so this is a caller bug
func (s *Shipment) ProcessDisputeWindowExpiry(now time.Time) (bool, error) {
	switch s.status {
	case Confirmed, Disputed:
		return false, nil
	case Delivered:
		// fall through to the deadline check
	case Pending, InTransit, Cancelled, Unknown:
		return false, errs.NewInvalidTransitionError("process dispute window expiry", s.status.String())
	default:
		return false, errs.NewInvalidTransitionError("process dispute window expiry", s.status.String())
	}

	if s.disputeWindowEnds == nil || now.UTC().Before(*s.disputeWindowEnds) {
		return false, nil
	}

	newStatus, err := s.status.Confirm()
	if err != nil {
		return false, err
	}

	confirmedAt := now.UTC()
	s.status = newStatus
	s.confirmedAt = &confirmedAt
	return true, nil
}

// AddProofDocument appends evidence to the shipment's trail. Rejected once
// the shipment is cancelled; every other status accepts documents (disputes
// in particular collect evidence).
func (s *Shipment) AddProofDocument(doc ProofDocument) error {
	if s.status == Cancelled {
		return errs.NewInvalidTransitionError("add proof document", s.status.String())
	}

	s.proofDocuments = append(s.proofDocuments, doc)
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setEscrowID(escrowID kernel.UUID) error {
	if err := escrowID.Validate(); err != nil {
		return err
	}
	s.escrowID = escrowID
	return nil
}

func (s *Shipment) setCategory(cat category.Category) error {
	if err := cat.Validate(); err != nil {
		return err
	}
	s.category = cat
	return nil
}

func (s *Shipment) setDeclaredValue(declaredValue kernel.Money) error {
	if err := declaredValue.Validate(); err != nil {
		return err
	}
	s.declaredValue = declaredValue
	return nil
}
