package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrLoadContainersCommandIsNotConstructed = errors.New(
		"LoadContainersCommand must be created via NewLoadContainersCommand constructor",
	)
	ErrSerialsAreRequired = errors.New("at least one container serial is required")
)

// LoadContainersCommand represents a request to load a batch of containers
// onto a specific ship. The batch is all or nothing: if any container would
// push the ship past its count or weight limit, none are loaded.
type LoadContainersCommand struct { //nolint:recvcheck //using for validation
	shipID  kernel.UUID
	serials []kernel.SerialNumber

	guard guard.ConstructorGuard
}

// NewLoadContainersCommand creates a command to load the identified
// containers onto the identified ship. Validates the ship ID and every
// serial in the batch, which must not be empty.
func NewLoadContainersCommand(
	shipID kernel.UUID,
	serials []kernel.SerialNumber,
) (LoadContainersCommand, error) {
	loadCommand := LoadContainersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loadCommand.setShipID(shipID),
		loadCommand.setSerials(serials),
	); err != nil {
		return LoadContainersCommand{}, err
	}

	return loadCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrLoadContainersCommandIsNotConstructed if validation fails.
func (c LoadContainersCommand) Validate() error {
	return c.guard.Validate(ErrLoadContainersCommandIsNotConstructed)
}

// ShipID returns the unique identifier of the target ship.
func (c LoadContainersCommand) ShipID() kernel.UUID {
	return c.shipID
}

// Serials returns a copy of the serial numbers in the batch.
func (c LoadContainersCommand) Serials() []kernel.SerialNumber {
	serials := make([]kernel.SerialNumber, len(c.serials))
	copy(serials, c.serials)
	return serials
}

func (c *LoadContainersCommand) setShipID(shipID kernel.UUID) error {
	if err := shipID.Validate(); err != nil {
		return err
	}

	c.shipID = shipID
	return nil
}

func (c *LoadContainersCommand) setSerials(serials []kernel.SerialNumber) error {
	if len(serials) == 0 {
		return ErrSerialsAreRequired
	}

	for _, serial := range serials {
		if err := serial.Validate(); err != nil {
			return err
		}
	}

	c.serials = make([]kernel.SerialNumber, len(serials))
	copy(c.serials, serials)
	return nil
}
