package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrRemoveContainerCommandIsNotConstructed = errors.New(
	"RemoveContainerCommand must be created via NewRemoveContainerCommand constructor",
)

// RemoveContainerCommand represents a request to take a container off a
// ship. The container returns to the unassigned pool and keeps its cargo.
type RemoveContainerCommand struct { //nolint:recvcheck //using for validation
	shipID kernel.UUID
	serial kernel.SerialNumber

	guard guard.ConstructorGuard
}

// NewRemoveContainerCommand creates a command to remove the identified
// container from the identified ship.
func NewRemoveContainerCommand(
	shipID kernel.UUID,
	serial kernel.SerialNumber,
) (RemoveContainerCommand, error) {
	removeCommand := RemoveContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		removeCommand.setShipID(shipID),
		removeCommand.setSerial(serial),
	); err != nil {
		return RemoveContainerCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveContainerCommandIsNotConstructed if validation fails.
func (c RemoveContainerCommand) Validate() error {
	return c.guard.Validate(ErrRemoveContainerCommandIsNotConstructed)
}

// ShipID returns the unique identifier of the ship.
func (c RemoveContainerCommand) ShipID() kernel.UUID {
	return c.shipID
}

// Serial returns the serial number of the container to remove.
func (c RemoveContainerCommand) Serial() kernel.SerialNumber {
	return c.serial
}

func (c *RemoveContainerCommand) setShipID(shipID kernel.UUID) error {
	if err := shipID.Validate(); err != nil {
		return err
	}

	c.shipID = shipID
	return nil
}

func (c *RemoveContainerCommand) setSerial(serial kernel.SerialNumber) error {
	if err := serial.Validate(); err != nil {
		return err
	}

	c.serial = serial
	return nil
}
