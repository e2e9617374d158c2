package commands

import (
	"errors"

	"escrowship/internal/core/domain/model/kernel"
	"escrowship/internal/pkg/errs"
	"escrowship/internal/pkg/guard"
)

var ErrCancelShipmentCommandIsNotConstructed = errors.New(
	"CancelShipmentCommand must be created via NewCancelShipmentCommand constructor",
)

// CancelShipmentCommand abandons a transaction: buyer withdrawal, mutual
// agreement, or a seller who never shipped. A reason is mandatory; it is
// the only record of why the escrow unwound.
type CancelShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

// NewCancelShipmentCommand creates a cancellation command.
func NewCancelShipmentCommand(shipmentID kernel.UUID, reason string) (CancelShipmentCommand, error) {
	cmd := CancelShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setReason(reason),
	); err != nil {
		return CancelShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment being cancelled.
func (c CancelShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Reason returns the recorded cancellation reason.
func (c CancelShipmentCommand) Reason() string {
	return c.reason
}

func (c *CancelShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CancelShipmentCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
