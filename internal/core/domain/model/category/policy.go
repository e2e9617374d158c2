package category

import (
	"fmt"

	"escrowship/internal/core/domain/model/carrier"
	"escrowship/internal/pkg/errs"
)

// Policy is the immutable per-category rule set governing how an escrowed
// item must be shipped and how long the buyer may contest it.
//
// Policies are read-only after process start; there is no runtime mutation
// and therefore no locking.
type Policy struct {
	// ApprovedCarriers lists the carriers a seller may ship with.
	ApprovedCarriers []carrier.Carrier

	// RequiresSignature demands signature-on-delivery service.
	RequiresSignature bool

	// RequiresInsurance demands confirmed shipping insurance.
	RequiresInsurance bool

	// MinInsurancePercent is the insurance floor as a percentage of the
	// declared value. Zero when RequiresInsurance is false.
	MinInsurancePercent int

	// DisputeWindowHours is the post-delivery period during which the buyer
	// may contest the shipment before automatic release.
	DisputeWindowHours int

	// ShippingSLADays is the maximum seller-side time to dispatch after the
	// escrow is funded.
	ShippingSLADays int

	// HandlingNotes carries display guidance for sellers.
	HandlingNotes string
}

// Approves reports whether the given carrier may be used under this policy.
func (p Policy) Approves(c carrier.Carrier) bool {
	for _, approved := range p.ApprovedCarriers {
		if approved == c {
			return true
		}
	}
	return false
}

// PolicyFor returns the shipping policy for a category. Unknown categories
// are a configuration error: the caller passed a category that the closed
// enumeration does not cover (possible only via unchecked conversions or a
// missing case after adding a constant).
func PolicyFor(c Category) (Policy, error) {
	switch c {
	case Jewelry:
		return Policy{
			ApprovedCarriers:    []carrier.Carrier{carrier.FedEx, carrier.UPS},
			RequiresSignature:   true,
			RequiresInsurance:   true,
			MinInsurancePercent: 100,
			DisputeWindowHours:  72,
			ShippingSLADays:     3,
			HandlingNotes:       "Ship in unmarked packaging. Signature and full-value insurance required.",
		}, nil
	case Watches:
		return Policy{
			ApprovedCarriers:    []carrier.Carrier{carrier.FedEx, carrier.UPS},
			RequiresSignature:   true,
			RequiresInsurance:   true,
			MinInsurancePercent: 100,
			DisputeWindowHours:  72,
			ShippingSLADays:     3,
			HandlingNotes:       "Include service records if available. Full-value insurance required.",
		}, nil
	case Electronics:
		return Policy{
			ApprovedCarriers:    []carrier.Carrier{carrier.FedEx, carrier.UPS, carrier.DHL},
			RequiresSignature:   true,
			RequiresInsurance:   true,
			MinInsurancePercent: 80,
			DisputeWindowHours:  48,
			ShippingSLADays:     5,
			HandlingNotes:       "Original packaging preferred; photograph serial numbers before dispatch.",
		}, nil
	case Art:
		return Policy{
			ApprovedCarriers:    []carrier.Carrier{carrier.FedEx, carrier.LocalCourier},
			RequiresSignature:   true,
			RequiresInsurance:   true,
			MinInsurancePercent: 100,
			DisputeWindowHours:  96,
			ShippingSLADays:     7,
			HandlingNotes:       "Maintain chain-of-custody records for every handoff. Crate professionally.",
		}, nil
	case Collectibles:
		return Policy{
			ApprovedCarriers:    []carrier.Carrier{carrier.FedEx, carrier.UPS, carrier.USPS},
			RequiresSignature:   false,
			RequiresInsurance:   true,
			MinInsurancePercent: 75,
			DisputeWindowHours:  72,
			ShippingSLADays:     5,
			HandlingNotes:       "Use rigid protective sleeves; grading slabs must not be opened.",
		}, nil
	case Documents:
		return Policy{
			ApprovedCarriers:    []carrier.Carrier{carrier.FedEx, carrier.UPS, carrier.USPS, carrier.DHL},
			RequiresSignature:   true,
			RequiresInsurance:   false,
			MinInsurancePercent: 0,
			DisputeWindowHours:  24,
			ShippingSLADays:     2,
			HandlingNotes:       "Water-resistant envelope; signature on delivery required.",
		}, nil
	case Unknown:
		return Policy{}, errs.NewConfigErrorWithCause(
			"category",
			fmt.Errorf("no policy registered for category %q", c),
		)
	default:
		return Policy{}, errs.NewConfigErrorWithCause(
			"category",
			fmt.Errorf("no policy registered for category %q", c),
		)
	}
}
