package commands

import (
	"errors"

	"escrowship/internal/core/domain/model/carrier"
	"escrowship/internal/core/domain/model/kernel"
	"escrowship/internal/pkg/errs"
	"escrowship/internal/pkg/guard"
)

var ErrAddShippingInfoCommandIsNotConstructed = errors.New(
	"AddShippingInfoCommand must be created via NewAddShippingInfoCommand constructor",
)

// AddShippingInfoCommand represents a seller's dispatch declaration:
// carrier, tracking number, and the insurance taken out on the parcel.
// The insured value may be the zero value for categories whose policy
// waives insurance; the aggregate decides whether it is acceptable.
type AddShippingInfoCommand struct { //nolint:recvcheck //using for validation
	shipmentID         kernel.UUID
	carrier            carrier.Carrier
	trackingNumber     string
	insuredValue       kernel.Money
	insuranceConfirmed bool

	guard guard.ConstructorGuard
}

// NewAddShippingInfoCommand creates a command carrying the seller's
// dispatch details. Validates the shipment ID, the carrier, and that a
// tracking number is present.
func NewAddShippingInfoCommand(
	shipmentID kernel.UUID,
	shipCarrier carrier.Carrier,
	trackingNumber string,
	insuredValue kernel.Money,
	insuranceConfirmed bool,
) (AddShippingInfoCommand, error) {
	cmd := AddShippingInfoCommand{
		insuredValue:       insuredValue,
		insuranceConfirmed: insuranceConfirmed,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setCarrier(shipCarrier),
		cmd.setTrackingNumber(trackingNumber),
	); err != nil {
		return AddShippingInfoCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddShippingInfoCommand) Validate() error {
	return c.guard.Validate(ErrAddShippingInfoCommandIsNotConstructed)
}

// ShipmentID returns the shipment being dispatched.
func (c AddShippingInfoCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Carrier returns the shipping carrier.
func (c AddShippingInfoCommand) Carrier() carrier.Carrier {
	return c.carrier
}

// TrackingNumber returns the carrier tracking number.
func (c AddShippingInfoCommand) TrackingNumber() string {
	return c.trackingNumber
}

// InsuredValue returns the insured value declared by the seller.
func (c AddShippingInfoCommand) InsuredValue() kernel.Money {
	return c.insuredValue
}

// InsuranceConfirmed reports whether the seller confirmed the insurance.
func (c AddShippingInfoCommand) InsuranceConfirmed() bool {
	return c.insuranceConfirmed
}

func (c *AddShippingInfoCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *AddShippingInfoCommand) setCarrier(shipCarrier carrier.Carrier) error {
	if err := shipCarrier.Validate(); err != nil {
		return err
	}

	c.carrier = shipCarrier
	return nil
}

func (c *AddShippingInfoCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}

	c.trackingNumber = trackingNumber
	return nil
}
