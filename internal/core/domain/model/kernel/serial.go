package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// Serial number prefixes, one per container type.
const (
	// PrefixBasic identifies serial numbers of basic dry containers.
	PrefixBasic Prefix = "B"

	// PrefixLiquid identifies serial numbers of liquid containers.
	PrefixLiquid Prefix = "L"

	// PrefixGas identifies serial numbers of gas containers.
	PrefixGas Prefix = "G"

	// PrefixRefrigerated identifies serial numbers of refrigerated containers.
	PrefixRefrigerated Prefix = "C"
)

var (
	// ErrSerialNumberIsNotConstructed indicates that a SerialNumber was not
	// created through NewSerialNumber or SerialNumberFromString.
	ErrSerialNumberIsNotConstructed = errs.NewValueIsRequiredError(
		"SerialNumber must be created via NewSerialNumber or SerialNumberFromString",
	)

	// ErrPrefixIsInvalid indicates a serial number prefix outside the known set.
	ErrPrefixIsInvalid = errs.NewValueIsInvalidError("prefix")
)

// Prefix is the per-container-type discriminator of a serial number.
// Valid values are PrefixBasic, PrefixLiquid, PrefixGas, and PrefixRefrigerated.
type Prefix string

// Validate checks that the prefix is one of the known values.
func (p Prefix) Validate() error {
	switch p {
	case PrefixBasic, PrefixLiquid, PrefixGas, PrefixRefrigerated:
		return nil
	default:
		return ErrPrefixIsInvalid
	}
}

// String returns the prefix letter.
func (p Prefix) String() string {
	return string(p)
}

// SerialNumber is the value object identifying a container. Its textual form
// is "<PREFIX>-<sequence>", e.g. "L-1" for the first liquid container ever
// created. Sequences start at 1 and are scoped per prefix; a sequence is
// never reused, even after the container it identified is gone.
//
// SerialNumber is immutable. The zero value is invalid and fails Validate.
type SerialNumber struct {
	prefix   Prefix
	sequence uint64

	guard guard.ConstructorGuard
}

// NewSerialNumber creates a serial number from a prefix and a sequence.
// The sequence must be at least 1; allocation of fresh sequences is the
// responsibility of the fleet registry.
func NewSerialNumber(prefix Prefix, sequence uint64) (SerialNumber, error) {
	if err := prefix.Validate(); err != nil {
		return SerialNumber{}, err
	}
	if sequence == 0 {
		return SerialNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"sequence",
			fmt.Errorf("%d is not greater than 0", sequence),
		)
	}

	return SerialNumber{
		prefix:   prefix,
		sequence: sequence,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// SerialNumberFromString parses the "<PREFIX>-<sequence>" form.
// Typically used when reconstructing containers from persistence or when
// an external caller addresses a container by its printed serial.
func SerialNumberFromString(s string) (SerialNumber, error) {
	prefixPart, sequencePart, found := strings.Cut(s, "-")
	if !found {
		return SerialNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"serialNumber",
			fmt.Errorf("%q does not match <PREFIX>-<sequence>", s),
		)
	}

	sequence, err := strconv.ParseUint(sequencePart, 10, 64)
	if err != nil {
		return SerialNumber{}, errs.NewValueIsInvalidErrorWithCause("serialNumber", err)
	}

	return NewSerialNumber(Prefix(prefixPart), sequence)
}

// Prefix returns the per-type prefix of the serial number.
func (s SerialNumber) Prefix() Prefix {
	return s.prefix
}

// Sequence returns the sequential part of the serial number.
func (s SerialNumber) Sequence() uint64 {
	return s.sequence
}

// String returns the canonical "<PREFIX>-<sequence>" form.
func (s SerialNumber) String() string {
	return fmt.Sprintf("%s-%d", s.prefix, s.sequence)
}

// IsEqual compares two serial numbers by prefix and sequence.
func (s SerialNumber) IsEqual(other SerialNumber) bool {
	return s.prefix == other.prefix && s.sequence == other.sequence
}

// Validate checks that the serial number was properly constructed.
func (s SerialNumber) Validate() error {
	return s.guard.Validate(ErrSerialNumberIsNotConstructed)
}
