package commands

import (
	"errors"

	"escrowship/internal/core/domain/model/kernel"
	"escrowship/internal/pkg/guard"
)

var ErrConfirmReceiptCommandIsNotConstructed = errors.New(
	"ConfirmReceiptCommand must be created via NewConfirmReceiptCommand constructor",
)

// ConfirmReceiptCommand represents the buyer's explicit acceptance of a
// delivered item. Confirmation is irreversible and releases the escrow.
//
// Example:
//
//	cmd, err := NewConfirmReceiptCommand(shipmentID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewConfirmReceiptCommandHandler(uowFactory, clk, gateway)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("confirmation failed: %w", err)
//	}
type ConfirmReceiptCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmReceiptCommand creates a buyer confirmation command.
func NewConfirmReceiptCommand(shipmentID kernel.UUID) (ConfirmReceiptCommand, error) {
	cmd := ConfirmReceiptCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return ConfirmReceiptCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmReceiptCommand) Validate() error {
	return c.guard.Validate(ErrConfirmReceiptCommandIsNotConstructed)
}

// ShipmentID returns the shipment being confirmed.
func (c ConfirmReceiptCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *ConfirmReceiptCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}
