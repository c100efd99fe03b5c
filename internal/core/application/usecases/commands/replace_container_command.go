package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrReplaceContainerCommandIsNotConstructed = errors.New(
	"ReplaceContainerCommand must be created via NewReplaceContainerCommand constructor",
)

// ReplaceContainerCommand represents a request to swap one container on a
// ship for another in a single move. The swap bypasses the count limit
// because the count does not change, but the weight limit still applies.
type ReplaceContainerCommand struct { //nolint:recvcheck //using for validation
	shipID    kernel.UUID
	oldSerial kernel.SerialNumber
	newSerial kernel.SerialNumber

	guard guard.ConstructorGuard
}

// NewReplaceContainerCommand creates a command to replace the container
// identified by oldSerial with the one identified by newSerial on the
// identified ship.
func NewReplaceContainerCommand(
	shipID kernel.UUID,
	oldSerial kernel.SerialNumber,
	newSerial kernel.SerialNumber,
) (ReplaceContainerCommand, error) {
	replaceCommand := ReplaceContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		replaceCommand.setShipID(shipID),
		replaceCommand.setOldSerial(oldSerial),
		replaceCommand.setNewSerial(newSerial),
	); err != nil {
		return ReplaceContainerCommand{}, err
	}

	return replaceCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReplaceContainerCommandIsNotConstructed if validation fails.
func (c ReplaceContainerCommand) Validate() error {
	return c.guard.Validate(ErrReplaceContainerCommandIsNotConstructed)
}

// ShipID returns the unique identifier of the ship.
func (c ReplaceContainerCommand) ShipID() kernel.UUID {
	return c.shipID
}

// OldSerial returns the serial number of the container leaving the ship.
func (c ReplaceContainerCommand) OldSerial() kernel.SerialNumber {
	return c.oldSerial
}

// NewSerial returns the serial number of the container taking its place.
func (c ReplaceContainerCommand) NewSerial() kernel.SerialNumber {
	return c.newSerial
}

func (c *ReplaceContainerCommand) setShipID(shipID kernel.UUID) error {
	if err := shipID.Validate(); err != nil {
		return err
	}

	c.shipID = shipID
	return nil
}

func (c *ReplaceContainerCommand) setOldSerial(oldSerial kernel.SerialNumber) error {
	if err := oldSerial.Validate(); err != nil {
		return err
	}

	c.oldSerial = oldSerial
	return nil
}

func (c *ReplaceContainerCommand) setNewSerial(newSerial kernel.SerialNumber) error {
	if err := newSerial.Validate(); err != nil {
		return err
	}

	c.newSerial = newSerial
	return nil
}
