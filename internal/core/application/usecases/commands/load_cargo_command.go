package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrLoadCargoCommandIsNotConstructed = errors.New(
		"LoadCargoCommand must be created via NewLoadCargoCommand constructor",
	)
	ErrCargoMassIsInvalid = errors.New("cargo mass must not be negative")
)

// LoadCargoCommand represents a request to load cargo into a container.
// Loading replaces the container's current cargo mass rather than adding
// to it.
type LoadCargoCommand struct { //nolint:recvcheck //using for validation
	serial kernel.SerialNumber
	mass   float64

	guard guard.ConstructorGuard
}

// NewLoadCargoCommand creates a command to load cargo into the container
// identified by serial. Validates that the serial number is valid and the
// mass is not negative.
func NewLoadCargoCommand(serial kernel.SerialNumber, mass float64) (LoadCargoCommand, error) {
	loadCommand := LoadCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loadCommand.setSerial(serial),
		loadCommand.setMass(mass),
	); err != nil {
		return LoadCargoCommand{}, err
	}

	return loadCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrLoadCargoCommandIsNotConstructed if validation fails.
func (c LoadCargoCommand) Validate() error {
	return c.guard.Validate(ErrLoadCargoCommandIsNotConstructed)
}

// Serial returns the serial number of the target container.
func (c LoadCargoCommand) Serial() kernel.SerialNumber {
	return c.serial
}

// Mass returns the cargo mass to load in kilograms.
func (c LoadCargoCommand) Mass() float64 {
	return c.mass
}

func (c *LoadCargoCommand) setSerial(serial kernel.SerialNumber) error {
	if err := serial.Validate(); err != nil {
		return err
	}

	c.serial = serial
	return nil
}

func (c *LoadCargoCommand) setMass(mass float64) error {
	if mass < 0 {
		return ErrCargoMassIsInvalid
	}

	c.mass = mass
	return nil
}
