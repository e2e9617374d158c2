package queries

import (
	"errors"
	"time"

	"escrowship/internal/pkg/guard"
)

var ErrGetDueDisputeWindowsQueryIsNotConstructed = errors.New(
	"GetDueDisputeWindowsQuery must be created via NewGetDueDisputeWindowsQuery constructor",
)

// GetDueDisputeWindowsQuery finds delivered shipments whose dispute window
// deadline has passed. This is the scheduler's work list: each hit is fed
// to the window-expiry command, which re-checks everything under a row
// lock.
type GetDueDisputeWindowsQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetDueDisputeWindowsQuery creates the sweep query for a given instant.
func NewGetDueDisputeWindowsQuery(asOf time.Time) GetDueDisputeWindowsQuery {
	return GetDueDisputeWindowsQuery{
		asOf:  asOf.UTC(),
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetDueDisputeWindowsQuery) Validate() error {
	return q.guard.Validate(ErrGetDueDisputeWindowsQueryIsNotConstructed)
}

// AsOf returns the sweep instant.
func (q GetDueDisputeWindowsQuery) AsOf() time.Time {
	return q.asOf
}
