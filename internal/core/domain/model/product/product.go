// Package product defines the catalog of refrigerated goods and the minimum
// safe temperature each of them must be kept at during transport.
package product

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Known refrigerated products.
const (
	// Unknown represents an invalid or undefined product.
	// This value helps catch uninitialized Product values.
	Unknown Product = iota

	Bananas
	Chocolate
	Fish
	Meat
	IceCream
	FrozenPizza
	Cheese
	Sausages
	Butter
	Eggs
)

// Product identifies a kind of refrigerated good. Each product carries a
// minimum safe maintained temperature; a refrigerated container may only be
// built for a product when its maintained temperature is at or above that
// minimum.
//
// Product is a value object that validates membership in the catalog and
// provides string representations for persistence and display.
type Product int

// catalog maps every valid product to its name and minimum safe maintained
// temperature in degrees Celsius.
var catalog = map[Product]struct {
	name                string
	requiredTemperature float64
}{
	Bananas:     {"Bananas", 13.3},
	Chocolate:   {"Chocolate", 18},
	Fish:        {"Fish", 2},
	Meat:        {"Meat", -15},
	IceCream:    {"IceCream", -18},
	FrozenPizza: {"FrozenPizza", -30},
	Cheese:      {"Cheese", 7.2},
	Sausages:    {"Sausages", 5},
	Butter:      {"Butter", 20.5},
	Eggs:        {"Eggs", 19},
}

// FromString resolves a product by its catalog name.
// Returns an error when the name matches no known product.
func FromString(name string) (Product, error) {
	for p, entry := range catalog {
		if entry.name == name {
			return p, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"product",
		fmt.Errorf("%q is not a known product", name),
	)
}

// Validate checks that the product is part of the catalog.
// Unknown and out-of-range values are invalid.
func (p Product) Validate() error {
	if _, ok := catalog[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"product",
			fmt.Errorf("%d is not a valid product", p),
		)
	}
	return nil
}

// String returns the catalog name of the product, or "Unknown" for values
// outside the catalog. Implements fmt.Stringer and is safe on any value.
func (p Product) String() string {
	if entry, ok := catalog[p]; ok {
		return entry.name
	}
	return "Unknown"
}

// RequiredTemperature returns the minimum safe maintained temperature for the
// product in degrees Celsius. For values outside the catalog it returns 0;
// callers are expected to Validate first.
func (p Product) RequiredTemperature() float64 {
	return catalog[p].requiredTemperature
}
