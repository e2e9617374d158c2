// Package tracking provides carrier tracking adapters. The default adapter
// is manual-only: carriers are not polled, and delivery facts enter the
// system through operator-submitted tracking updates instead.
package tracking

import (
	"context"
	"log/slog"

	"escrowship/internal/core/domain/model/carrier"
	"escrowship/internal/core/ports"
)

// ManualTrackingAdapter is a TrackingAdapter with no carrier connectivity.
// Every call reports "no new information", so the poll job never moves a
// shipment on its own; delivery is recorded via the tracking-status command
// issued by an operator. Swap in a carrier-backed adapter to automate that.
type ManualTrackingAdapter struct {
	logger *slog.Logger
}

// NewManualTrackingAdapter creates the manual-only tracking adapter.
func NewManualTrackingAdapter(logger *slog.Logger) *ManualTrackingAdapter {
	return &ManualTrackingAdapter{
		logger: logger.With("component", "manual_tracking_adapter"),
	}
}

// FetchTrackingInfo always returns no observation.
func (a *ManualTrackingAdapter) FetchTrackingInfo(
	ctx context.Context,
	c carrier.Carrier,
	trackingNumber string,
) (*ports.TrackingSnapshot, error) {
	a.logger.DebugContext(ctx, "No carrier connectivity, skipping tracking fetch",
		"carrier", c.String(), "trackingNumber", trackingNumber)
	return nil, nil
}

// CheckDeliveryStatus always answers "not delivered as far as we know".
func (a *ManualTrackingAdapter) CheckDeliveryStatus(
	ctx context.Context,
	c carrier.Carrier,
	trackingNumber string,
) (ports.DeliveryStatus, error) {
	a.logger.DebugContext(ctx, "No carrier connectivity, skipping delivery check",
		"carrier", c.String(), "trackingNumber", trackingNumber)
	return ports.DeliveryStatus{Delivered: false}, nil
}
