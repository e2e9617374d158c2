// Package carrier defines the closed set of shipping carriers the escrow
// flow accepts, together with their public tracking URL templates.
// Which carriers a seller may use for a given item is decided by the
// category policy, not here.
package carrier

import (
	"fmt"
	"strings"

	"escrowship/internal/pkg/errs"
)

// Carrier identifies a shipping carrier. It is a closed enumeration:
// adding a carrier means adding a constant, a string mapping, and a
// tracking URL template, all checked at compile time by the exhaustive
// switches below.
type Carrier int

const (
	// Unknown is the invalid zero value.
	Unknown Carrier = iota

	// FedEx is Federal Express.
	FedEx

	// UPS is United Parcel Service.
	UPS

	// USPS is the United States Postal Service.
	USPS

	// DHL is DHL Express.
	DHL

	// LocalCourier is a hand-delivery courier without a public tracking page.
	LocalCourier
)

func carrierStrings() map[Carrier]string {
	return map[Carrier]string{
		Unknown:      "unknown",
		FedEx:        "fedex",
		UPS:          "ups",
		USPS:         "usps",
		DHL:          "dhl",
		LocalCourier: "local_courier",
	}
}

// FromString parses a wire-format carrier name ("fedex", "ups", ...).
// Parsing is case-insensitive. Unknown names are an error.
func FromString(s string) (Carrier, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for c, str := range carrierStrings() {
		if c != Unknown && str == name {
			return c, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"carrier",
		fmt.Errorf("%q is not a known carrier", s),
	)
}

// String returns the wire-format name of the carrier.
// Implements fmt.Stringer; safe on invalid values.
func (c Carrier) String() string {
	if s, ok := carrierStrings()[c]; ok {
		return s
	}
	return "unknown"
}

// Validate reports whether the value is a member of the closed set.
// Unknown and out-of-range values are invalid.
func (c Carrier) Validate() error {
	if c == Unknown {
		return errs.NewValueIsRequiredError("carrier")
	}
	if _, ok := carrierStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"carrier",
			fmt.Errorf("%d is not a valid carrier", c),
		)
	}
	return nil
}

// TrackingURL substitutes the tracking number into the carrier's public
// tracking page template. Returns "" for carriers without one; callers
// must treat an empty URL as "no link available", not an error.
func (c Carrier) TrackingURL(trackingNumber string) string {
	if trackingNumber == "" {
		return ""
	}

	switch c {
	case FedEx:
		return "https://www.fedex.com/fedextrack/?trknbr=" + trackingNumber
	case UPS:
		return "https://www.ups.com/track?tracknum=" + trackingNumber
	case USPS:
		return "https://tools.usps.com/go/TrackConfirmAction?tLabels=" + trackingNumber
	case DHL:
		return "https://www.dhl.com/en/express/tracking.html?AWB=" + trackingNumber
	case LocalCourier, Unknown:
		return ""
	default:
		return ""
	}
}
