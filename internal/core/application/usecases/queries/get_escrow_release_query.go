package queries

import (
	"errors"

	"escrowship/internal/core/domain/model/kernel"
	"escrowship/internal/pkg/guard"
)

var ErrGetEscrowReleaseQueryIsNotConstructed = errors.New(
	"GetEscrowReleaseQuery must be created via NewGetEscrowReleaseQuery constructor",
)

// GetEscrowReleaseQuery asks for the on-demand release verdict of one
// shipment: may the escrowed funds move, and why or why not.
type GetEscrowReleaseQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetEscrowReleaseQuery creates a release-check query.
func NewGetEscrowReleaseQuery(shipmentID kernel.UUID) (GetEscrowReleaseQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetEscrowReleaseQuery{}, err
	}

	return GetEscrowReleaseQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetEscrowReleaseQuery) Validate() error {
	return q.guard.Validate(ErrGetEscrowReleaseQueryIsNotConstructed)
}

// ShipmentID returns the checked shipment identifier.
func (q GetEscrowReleaseQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}
