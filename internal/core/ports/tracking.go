package ports

import (
	"context"
	"time"

	"escrowship/internal/core/domain/model/carrier"
)

// TrackingSnapshot is one observation of a parcel's whereabouts as
// reported by a carrier's tracking API.
type TrackingSnapshot struct {
	// Status is the carrier's own status wording, untranslated.
	Status string

	// Location is the last scanned location, "" when the carrier omits it.
	Location string

	// ObservedAt is when the carrier recorded the observation.
	ObservedAt time.Time
}

// DeliveryStatus is a carrier's answer to "has this parcel arrived".
type DeliveryStatus struct {
	// Delivered reports whether the carrier considers the parcel delivered.
	Delivered bool

	// DeliveredAt is the carrier-reported delivery time, nil when not
	// delivered.
	DeliveredAt *time.Time

	// SignedBy names who signed for the parcel, "" when unsigned or unknown.
	SignedBy string
}

// TrackingAdapter fetches carrier-side tracking state for a shipment.
//
// Adapter results are soft signals: a nil snapshot, an absent delivery, or
// an error means "no new information" and must never push the shipment's
// state machine anywhere. Last-known-state stays authoritative until a
// materially new observation arrives; callers log failures and move on.
type TrackingAdapter interface {
	// FetchTrackingInfo returns the carrier's latest observation for the
	// tracking number, or nil when the carrier has nothing new to say.
	FetchTrackingInfo(ctx context.Context, c carrier.Carrier, trackingNumber string) (*TrackingSnapshot, error)

	// CheckDeliveryStatus asks the carrier whether the parcel was delivered.
	CheckDeliveryStatus(ctx context.Context, c carrier.Carrier, trackingNumber string) (DeliveryStatus, error)
}
