package commands

import (
	"errors"

	"escrowship/internal/core/domain/model/kernel"
	"escrowship/internal/pkg/guard"
)

var ErrReportIssueCommandIsNotConstructed = errors.New(
	"ReportIssueCommand must be created via NewReportIssueCommand constructor",
)

// ReportIssueCommand represents a buyer dispute: the item never arrived,
// or arrived damaged or not as described. Filing it permanently freezes
// the escrow release.
type ReportIssueCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReportIssueCommand creates a dispute-filing command.
func NewReportIssueCommand(shipmentID kernel.UUID) (ReportIssueCommand, error) {
	cmd := ReportIssueCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return ReportIssueCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportIssueCommand) Validate() error {
	return c.guard.Validate(ErrReportIssueCommandIsNotConstructed)
}

// ShipmentID returns the disputed shipment.
func (c ReportIssueCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *ReportIssueCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}
