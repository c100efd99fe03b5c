package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrEmptyCargoCommandIsNotConstructed = errors.New(
	"EmptyCargoCommand must be created via NewEmptyCargoCommand constructor",
)

// EmptyCargoCommand represents a request to discharge a container's cargo.
// Gas containers retain a residue after discharge; every other variant
// empties completely.
type EmptyCargoCommand struct { //nolint:recvcheck //using for validation
	serial kernel.SerialNumber

	guard guard.ConstructorGuard
}

// NewEmptyCargoCommand creates a command to discharge the container
// identified by serial.
func NewEmptyCargoCommand(serial kernel.SerialNumber) (EmptyCargoCommand, error) {
	emptyCommand := EmptyCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := emptyCommand.setSerial(serial); err != nil {
		return EmptyCargoCommand{}, err
	}

	return emptyCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEmptyCargoCommandIsNotConstructed if validation fails.
func (c EmptyCargoCommand) Validate() error {
	return c.guard.Validate(ErrEmptyCargoCommandIsNotConstructed)
}

// Serial returns the serial number of the target container.
func (c EmptyCargoCommand) Serial() kernel.SerialNumber {
	return c.serial
}

func (c *EmptyCargoCommand) setSerial(serial kernel.SerialNumber) error {
	if err := serial.Validate(); err != nil {
		return err
	}

	c.serial = serial
	return nil
}
