package services

import (
	"time"

	"escrowship/internal/core/domain/model/category"
	"escrowship/internal/core/domain/model/shipment"
)

// TimelineEvent is one display milestone in a shipment's life. The flags
// are mutually consistent: a completed milestone is never current, and
// ActionRequired only appears on the current milestone.
type TimelineEvent struct {
	// Key is the stable machine-readable milestone identifier.
	Key string

	// Label is the human-readable milestone name.
	Label string

	// OccurredAt is when the milestone happened, nil while it has not.
	OccurredAt *time.Time

	// Completed: the milestone is in the past.
	Completed bool

	// Current: this is the milestone the shipment sits at right now.
	Current bool

	// ActionRequired: someone has to act for the shipment to move on
	// (seller must dispatch, support must resolve a dispute).
	ActionRequired bool
}

// Timeline milestone keys, in lifecycle order.
const (
	MilestoneEscrowFunded     = "escrow_funded"
	MilestoneAwaitingDispatch = "awaiting_dispatch"
	MilestoneInTransit        = "in_transit"
	MilestoneDelivered        = "delivered"
	MilestoneDisputeWindow    = "dispute_window"
	MilestoneFundsReleased    = "funds_released"
	MilestoneDisputed         = "disputed"
	MilestoneCancelled        = "cancelled"
)

// TimelineBuilder projects a shipment into an ordered milestone sequence
// for display. It is a pure derivation over the shipment's recorded state:
// no side effects, idempotent, safe to call as often as a UI refreshes.
//
// The shipment may be nil: an escrow can be funded before the seller has a
// shipment record at all, in which case the timeline shows funding done and
// dispatch pending.
type TimelineBuilder struct{}

// NewTimelineBuilder creates a new TimelineBuilder instance.
func NewTimelineBuilder() TimelineBuilder {
	return TimelineBuilder{}
}

// BuildTimelineEvents returns the milestone sequence for the shipment at
// the given instant. escrowCreatedAt anchors the first milestone and, when
// the shipment is nil, the seller's shipping SLA.
func (b TimelineBuilder) BuildTimelineEvents(
	s *shipment.Shipment,
	escrowCreatedAt time.Time,
	policy category.Policy,
	now time.Time,
) []TimelineEvent {
	now = now.UTC()
	funded := escrowCreatedAt.UTC()

	events := []TimelineEvent{{
		Key:        MilestoneEscrowFunded,
		Label:      "Escrow funded",
		OccurredAt: &funded,
		Completed:  true,
	}}

	if s == nil {
		events = append(events, b.awaitingDispatch(nil, funded, policy, now))
		events = append(events,
			TimelineEvent{Key: MilestoneInTransit, Label: "In transit"},
			TimelineEvent{Key: MilestoneDelivered, Label: "Delivered"},
			TimelineEvent{Key: MilestoneDisputeWindow, Label: "Dispute window"},
			TimelineEvent{Key: MilestoneFundsReleased, Label: "Funds released"},
		)
		return events
	}

	events = append(events, b.awaitingDispatch(s, s.CreatedAt(), policy, now))

	inTransit := TimelineEvent{
		Key:        MilestoneInTransit,
		Label:      "In transit",
		OccurredAt: s.ShippedAt(),
		Completed:  s.DeliveredAt() != nil,
		Current:    s.Status() == shipment.InTransit,
	}
	events = append(events, inTransit)

	delivered := TimelineEvent{
		Key:        MilestoneDelivered,
		Label:      "Delivered",
		OccurredAt: s.DeliveredAt(),
		Completed:  s.DeliveredAt() != nil,
	}
	events = append(events, delivered)

	window := TimelineEvent{
		Key:        MilestoneDisputeWindow,
		Label:      "Dispute window",
		OccurredAt: s.DisputeWindowEnds(),
	}
	if windowEnds := s.DisputeWindowEnds(); windowEnds != nil {
		switch {
		case s.Status() == shipment.Confirmed || !now.Before(*windowEnds):
			window.Completed = true
		case s.Status() == shipment.Delivered:
			window.Current = true
		}
	}
	events = append(events, window)

	switch s.Status() {
	case shipment.Disputed:
		events = append(events, TimelineEvent{
			Key:            MilestoneDisputed,
			Label:          "Dispute in progress",
			Current:        true,
			ActionRequired: true,
		})
	case shipment.Cancelled:
		events = append(events, TimelineEvent{
			Key:       MilestoneCancelled,
			Label:     "Cancelled",
			Completed: true,
		})
	default:
		events = append(events, TimelineEvent{
			Key:        MilestoneFundsReleased,
			Label:      "Funds released",
			OccurredAt: s.ConfirmedAt(),
			Completed:  s.Status() == shipment.Confirmed,
		})
	}

	return events
}

// awaitingDispatch builds the second milestone. The SLA alarm fires only
// while the shipment (or the shipment-less escrow) is still waiting on the
// seller; once dispatched, lateness is history, not an action item.
func (b TimelineBuilder) awaitingDispatch(
	s *shipment.Shipment,
	slaAnchor time.Time,
	policy category.Policy,
	now time.Time,
) TimelineEvent {
	event := TimelineEvent{
		Key:   MilestoneAwaitingDispatch,
		Label: "Awaiting dispatch",
	}

	if s != nil && s.ShippedAt() != nil {
		event.OccurredAt = s.ShippedAt()
		event.Completed = true
		return event
	}

	if s != nil && s.Status() == shipment.Cancelled {
		return event
	}

	event.Current = true
	slaDeadline := slaAnchor.Add(time.Duration(policy.ShippingSLADays) * 24 * time.Hour)
	event.ActionRequired = !now.Before(slaDeadline)
	return event
}
