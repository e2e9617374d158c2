package shipment

import (
	"errors"
	"fmt"

	"escrowship/internal/core/domain/model/carrier"
	"escrowship/internal/core/domain/model/category"
	"escrowship/internal/pkg/errs"
)

// ErrInsuranceNotConfirmed is returned by AddShippingInfo when the category
// policy requires insurance and the seller did not confirm it.
var ErrInsuranceNotConfirmed = errs.NewValueIsInvalidErrorWithCause(
	"insuranceConfirmed",
	errors.New("category policy requires confirmed shipping insurance"),
)

// CarrierNotApprovedError is returned by AddShippingInfo when the chosen
// carrier is not in the category policy's approved set.
type CarrierNotApprovedError struct {
	Carrier  carrier.Carrier
	Category category.Category
}

func (e *CarrierNotApprovedError) Error() string {
	return fmt.Sprintf("value is invalid: carrier %s is not approved for category %s",
		e.Carrier, e.Category)
}

func (e *CarrierNotApprovedError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

// InsufficientInsuranceError is returned by AddShippingInfo when the insured
// value is below the policy's floor (declared value x MinInsurancePercent).
type InsufficientInsuranceError struct {
	InsuredCents  int64
	RequiredCents int64
	MinPercent    int
}

func (e *InsufficientInsuranceError) Error() string {
	return fmt.Sprintf(
		"value is invalid: insured value %d cents is below the %d%% insurance floor of %d cents",
		e.InsuredCents, e.MinPercent, e.RequiredCents)
}

func (e *InsufficientInsuranceError) Unwrap() error {
	return errs.ErrValueIsInvalid
}
