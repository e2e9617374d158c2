package commands

import (
	"errors"
	"time"

	"escrowship/internal/core/domain/model/kernel"
	"escrowship/internal/pkg/guard"
)

var ErrUpdateTrackingStatusCommandIsNotConstructed = errors.New(
	"UpdateTrackingStatusCommand must be created via NewUpdateTrackingStatusCommand constructor",
)

// UpdateTrackingStatusCommand applies a delivery observation to a
// shipment. Observations come from two places with identical semantics:
// the tracking-poll job relaying a carrier's answer, and a manual operator
// override when carrier data is wrong or missing.
//
// A non-delivered observation is valid and does nothing: absence of news
// never moves the state machine.
type UpdateTrackingStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	delivered   bool
	deliveredAt *time.Time
	signedBy    string

	guard guard.ConstructorGuard
}

// NewUpdateTrackingStatusCommand creates a command carrying one delivery
// observation. deliveredAt may be nil even for a delivered observation;
// the handler then stamps the delivery with the current time.
func NewUpdateTrackingStatusCommand(
	shipmentID kernel.UUID,
	delivered bool,
	deliveredAt *time.Time,
	signedBy string,
) (UpdateTrackingStatusCommand, error) {
	cmd := UpdateTrackingStatusCommand{
		delivered:   delivered,
		deliveredAt: deliveredAt,
		signedBy:    signedBy,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return UpdateTrackingStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTrackingStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTrackingStatusCommandIsNotConstructed)
}

// ShipmentID returns the observed shipment.
func (c UpdateTrackingStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Delivered reports whether the observation says the parcel arrived.
func (c UpdateTrackingStatusCommand) Delivered() bool {
	return c.delivered
}

// DeliveredAt returns the observed delivery time, nil when unreported.
func (c UpdateTrackingStatusCommand) DeliveredAt() *time.Time {
	return c.deliveredAt
}

// SignedBy names who signed for the parcel, "" when unknown.
func (c UpdateTrackingStatusCommand) SignedBy() string {
	return c.signedBy
}

func (c *UpdateTrackingStatusCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}
