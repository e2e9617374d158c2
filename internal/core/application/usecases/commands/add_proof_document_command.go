package commands

import (
	"errors"

	"escrowship/internal/core/domain/model/kernel"
	"escrowship/internal/pkg/errs"
	"escrowship/internal/pkg/guard"
)

var ErrAddProofDocumentCommandIsNotConstructed = errors.New(
	"AddProofDocumentCommand must be created via NewAddProofDocumentCommand constructor",
)

// AddProofDocumentCommand attaches one piece of evidence to a shipment's
// trail: a drop-off receipt, an insurance certificate, a photo.
type AddProofDocumentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	kind       string
	uri        string

	guard guard.ConstructorGuard
}

// NewAddProofDocumentCommand creates an evidence-attachment command.
func NewAddProofDocumentCommand(shipmentID kernel.UUID, kind, uri string) (AddProofDocumentCommand, error) {
	cmd := AddProofDocumentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setKind(kind),
		cmd.setURI(uri),
	); err != nil {
		return AddProofDocumentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddProofDocumentCommand) Validate() error {
	return c.guard.Validate(ErrAddProofDocumentCommandIsNotConstructed)
}

// ShipmentID returns the shipment the evidence belongs to.
func (c AddProofDocumentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Kind returns the document kind label.
func (c AddProofDocumentCommand) Kind() string {
	return c.kind
}

// URI returns the stored document's location.
func (c AddProofDocumentCommand) URI() string {
	return c.uri
}

func (c *AddProofDocumentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *AddProofDocumentCommand) setKind(kind string) error {
	if kind == "" {
		return errs.NewValueIsRequiredError("kind")
	}

	c.kind = kind
	return nil
}

func (c *AddProofDocumentCommand) setURI(uri string) error {
	if uri == "" {
		return errs.NewValueIsRequiredError("uri")
	}

	c.uri = uri
	return nil
}
