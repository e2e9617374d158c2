package commands

import (
	"errors"

	"escrowship/internal/core/domain/model/kernel"
	"escrowship/internal/pkg/guard"
)

var ErrProcessDisputeWindowExpiryCommandIsNotConstructed = errors.New(
	"ProcessDisputeWindowExpiryCommand must be created via NewProcessDisputeWindowExpiryCommand constructor",
)

// ProcessDisputeWindowExpiryCommand sweeps one delivered shipment whose
// dispute window may have passed. Issued by the scheduler; running it on a
// shipment whose window is still open, or that was meanwhile confirmed or
// disputed, is a harmless no-op.
type ProcessDisputeWindowExpiryCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProcessDisputeWindowExpiryCommand creates a window-expiry sweep
// command for one shipment.
func NewProcessDisputeWindowExpiryCommand(shipmentID kernel.UUID) (ProcessDisputeWindowExpiryCommand, error) {
	cmd := ProcessDisputeWindowExpiryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return ProcessDisputeWindowExpiryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessDisputeWindowExpiryCommand) Validate() error {
	return c.guard.Validate(ErrProcessDisputeWindowExpiryCommandIsNotConstructed)
}

// ShipmentID returns the swept shipment.
func (c ProcessDisputeWindowExpiryCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *ProcessDisputeWindowExpiryCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}
