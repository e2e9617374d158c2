package queries

import (
	"errors"

	"escrowship/internal/pkg/guard"
)

var ErrGetInTransitShipmentsQueryIsNotConstructed = errors.New(
	"GetInTransitShipmentsQuery must be created via NewGetInTransitShipmentsQuery constructor",
)

// GetInTransitShipmentsQuery lists every shipment currently in transit,
// with the carrier coordinates the tracking-poll job needs.
type GetInTransitShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetInTransitShipmentsQuery creates the tracking-poll feed query.
// This is a parameterless query.
func NewGetInTransitShipmentsQuery() GetInTransitShipmentsQuery {
	return GetInTransitShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetInTransitShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetInTransitShipmentsQueryIsNotConstructed)
}
