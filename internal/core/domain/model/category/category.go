// Package category defines the closed set of item categories handled by the
// escrow flow and the static shipping policy attached to each. Policies are
// compile-time data: adding a category is a new constant plus a new case in
// the PolicyFor switch, both enforced by the compiler.
package category

import (
	"fmt"
	"strings"

	"escrowship/internal/pkg/errs"
)

// Category classifies the physical item held in escrow. It is a closed
// enumeration; free-form category strings from the outside are parsed
// through FromString and rejected if unknown.
type Category int

const (
	// Unknown is the invalid zero value.
	Unknown Category = iota

	// Jewelry covers rings, necklaces, loose stones.
	Jewelry

	// Watches covers wrist and pocket watches.
	Watches

	// Electronics covers consumer electronics and components.
	Electronics

	// Art covers paintings, sculpture, and other fine art.
	Art

	// Collectibles covers cards, coins, memorabilia.
	Collectibles

	// Documents covers deeds, certificates, and contracts.
	Documents
)

func categoryStrings() map[Category]string {
	return map[Category]string{
		Unknown:      "unknown",
		Jewelry:      "jewelry",
		Watches:      "watches",
		Electronics:  "electronics",
		Art:          "art",
		Collectibles: "collectibles",
		Documents:    "documents",
	}
}

// FromString parses a wire-format category name ("jewelry", "art", ...).
// Parsing is case-insensitive. Unknown names are an error.
func FromString(s string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for c, str := range categoryStrings() {
		if c != Unknown && str == name {
			return c, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"category",
		fmt.Errorf("%q is not a known category", s),
	)
}

// String returns the wire-format name of the category.
// Implements fmt.Stringer; safe on invalid values.
func (c Category) String() string {
	if s, ok := categoryStrings()[c]; ok {
		return s
	}
	return "unknown"
}

// Validate reports whether the value is a member of the closed set.
func (c Category) Validate() error {
	if c == Unknown {
		return errs.NewValueIsRequiredError("category")
	}
	if _, ok := categoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"category",
			fmt.Errorf("%d is not a valid category", c),
		)
	}
	return nil
}
