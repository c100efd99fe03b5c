package container

import (
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// Kind discriminates the container variants. Each kind maps to a serial
// number prefix and decides the variant-specific loading and emptying
// behavior resolved inside Container.
type Kind int

const (
	// Unknown represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	Unknown Kind = iota

	// Basic is a dry container with no variant-specific behavior.
	Basic

	// Liquid carries fluids; its effective load limit depends on whether
	// the cargo is flagged dangerous.
	Liquid

	// Gas carries pressurized gas; emptying it leaves a 5% residue.
	Gas

	// Refrigerated carries a catalog product at a maintained temperature.
	Refrigerated
)

// getKindStrings returns a map of Kind values to their string representations.
func getKindStrings() map[Kind]string {
	return map[Kind]string{
		Unknown:      "Unknown",
		Basic:        "Basic",
		Liquid:       "Liquid",
		Gas:          "Gas",
		Refrigerated: "Refrigerated",
	}
}

// getKindPrefixes returns the serial number prefix for each valid kind.
func getKindPrefixes() map[Kind]kernel.Prefix {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Kind]kernel.Prefix{
		Basic:        kernel.PrefixBasic,
		Liquid:       kernel.PrefixLiquid,
		Gas:          kernel.PrefixGas,
		Refrigerated: kernel.PrefixRefrigerated,
	}
}

// KindFromString resolves a kind by its name.
// Returns an error when the name matches no valid kind.
func KindFromString(name string) (Kind, error) {
	for kind, str := range getKindStrings() {
		if str == name && kind != Unknown {
			return kind, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"kind",
		fmt.Errorf("%q is not a valid container kind", name),
	)
}

// Validate checks if the Kind value is valid.
// Valid kinds are Basic, Liquid, Gas, and Refrigerated.
func (k Kind) Validate() error {
	if _, ok := getKindPrefixes()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"kind",
			fmt.Errorf("%d is not a valid container kind", k),
		)
	}
	return nil
}

// String returns the human-readable name of the kind.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// SerialPrefix returns the serial number prefix assigned to the kind.
// Callers are expected to Validate first; invalid kinds return the zero Prefix.
func (k Kind) SerialPrefix() kernel.Prefix {
	return getKindPrefixes()[k]
}

// IsHazardCapable reports whether overload attempts on this kind raise
// hazard notifications. Only liquid and gas containers carry that capability.
func (k Kind) IsHazardCapable() bool {
	return k == Liquid || k == Gas
}
