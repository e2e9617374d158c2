package kernel

import (
	"fmt"

	"escrowship/internal/pkg/errs"
)

// ErrMoneyIsNotConstructed indicates a zero-value Money that was not created
// via NewMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney")

// Money is a value object representing a monetary amount in integer cents.
// Declared and insured values of a shipment are Money. Amounts must be
// strictly positive: an escrowed item with no value has nothing to release.
//
// Money is immutable; arithmetic helpers return new values.
type Money struct {
	cents         int64
	isConstructed bool
}

// NewMoney creates a Money amount from integer cents.
// Returns an error when cents is not positive.
func NewMoney(cents int64) (Money, error) {
	if cents <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money amount",
			fmt.Errorf("%d cents is not greater than 0", cents),
		)
	}
	return Money{cents: cents, isConstructed: true}, nil
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Percent returns p percent of the amount, rounded up. Ceiling division
// keeps derived floors (e.g. a minimum insurance requirement) from rounding
// below the policy requirement.
func (m Money) Percent(p int) Money {
	if p <= 0 {
		return Money{cents: 0, isConstructed: true}
	}
	cents := (m.cents*int64(p) + 99) / 100
	return Money{cents: cents, isConstructed: true}
}

// GreaterOrEqual reports whether the amount is at least other.
func (m Money) GreaterOrEqual(other Money) bool {
	return m.cents >= other.cents
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount as a decimal dollar string, e.g. "1250.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

// Validate returns ErrMoneyIsNotConstructed for the zero value.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
