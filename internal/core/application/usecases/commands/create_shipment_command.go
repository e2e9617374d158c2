package commands

import (
	"errors"

	"escrowship/internal/core/domain/model/category"
	"escrowship/internal/core/domain/model/kernel"
	"escrowship/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to open a shipment record for
// a freshly funded escrow transaction.
//
// Example:
//
//	shipmentID := kernel.NewUUID()
//	cmd, err := NewCreateShipmentCommand(shipmentID, escrowID, category.Jewelry, declaredValue)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, clk, gateway)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create shipment: %w", err)
//	}
//	fmt.Printf("Shipment %s created and awaiting dispatch", shipmentID)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID    kernel.UUID
	escrowID      kernel.UUID
	category      category.Category
	declaredValue kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Validates that both identifiers are valid, the category is part of the
// closed enumeration, and the declared value is positive.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	escrowID kernel.UUID,
	cat category.Category,
	declaredValue kernel.Money,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setEscrowID(escrowID),
		cmd.setCategory(cat),
		cmd.setDeclaredValue(declaredValue),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// EscrowID returns the funded escrow transaction the shipment settles.
func (c CreateShipmentCommand) EscrowID() kernel.UUID {
	return c.escrowID
}

// Category returns the item category.
func (c CreateShipmentCommand) Category() category.Category {
	return c.category
}

// DeclaredValue returns the seller-declared item value.
func (c CreateShipmentCommand) DeclaredValue() kernel.Money {
	return c.declaredValue
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setEscrowID(escrowID kernel.UUID) error {
	if err := escrowID.Validate(); err != nil {
		return err
	}

	c.escrowID = escrowID
	return nil
}

func (c *CreateShipmentCommand) setCategory(cat category.Category) error {
	if err := cat.Validate(); err != nil {
		return err
	}

	c.category = cat
	return nil
}

func (c *CreateShipmentCommand) setDeclaredValue(declaredValue kernel.Money) error {
	if err := declaredValue.Validate(); err != nil {
		return err
	}

	c.declaredValue = declaredValue
	return nil
}
