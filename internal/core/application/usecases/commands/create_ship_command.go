package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateShipCommandIsNotConstructed = errors.New(
		"CreateShipCommand must be created via NewCreateShipCommand constructor",
	)
	ErrShipNameIsRequired         = errors.New("ship name is required")
	ErrMaxSpeedIsInvalid          = errors.New("max speed must be greater than 0")
	ErrMaxContainerCountIsInvalid = errors.New("max container count must be greater than 0")
	ErrMaxWeightIsInvalid         = errors.New("max weight must be greater than 0")
)

// CreateShipCommand represents a request to commission a new container ship.
// Encapsulates the ship's name and its capacity limits.
//
// Example:
//
//	shipID := kernel.NewUUID()
//	cmd, err := NewCreateShipCommand(shipID, "MV Meridian", 22.5, 4, 30)
//	if err != nil {
//	    return fmt.Errorf("invalid ship data: %w", err)
//	}
//
//	handler := NewCreateShipCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to commission ship: %w", err)
//	}
type CreateShipCommand struct { //nolint:recvcheck //using for validation
	shipID            kernel.UUID
	name              string
	maxSpeedKnots     float64
	maxContainerCount int
	maxWeightTons     float64

	guard guard.ConstructorGuard
}

// NewCreateShipCommand creates a command to commission a new ship.
// Validates that the ship ID is valid, the name is not empty, and the
// speed and capacity limits are positive.
func NewCreateShipCommand(
	shipID kernel.UUID,
	name string,
	maxSpeedKnots float64,
	maxContainerCount int,
	maxWeightTons float64,
) (CreateShipCommand, error) {
	shipCommand := CreateShipCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipCommand.setShipID(shipID),
		shipCommand.setName(name),
		shipCommand.setMaxSpeedKnots(maxSpeedKnots),
		shipCommand.setMaxContainerCount(maxContainerCount),
		shipCommand.setMaxWeightTons(maxWeightTons),
	); err != nil {
		return CreateShipCommand{}, err
	}

	return shipCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipCommandIsNotConstructed if validation fails.
func (c CreateShipCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipCommandIsNotConstructed)
}

// ShipID returns the unique identifier for the ship.
func (c CreateShipCommand) ShipID() kernel.UUID {
	return c.shipID
}

// Name returns the ship's display name.
func (c CreateShipCommand) Name() string {
	return c.name
}

// MaxSpeedKnots returns the ship's maximum speed in knots.
func (c CreateShipCommand) MaxSpeedKnots() float64 {
	return c.maxSpeedKnots
}

// MaxContainerCount returns the maximum number of containers the ship
// can carry.
func (c CreateShipCommand) MaxContainerCount() int {
	return c.maxContainerCount
}

// MaxWeightTons returns the maximum total container weight in metric tons.
func (c CreateShipCommand) MaxWeightTons() float64 {
	return c.maxWeightTons
}

func (c *CreateShipCommand) setShipID(shipID kernel.UUID) error {
	if err := shipID.Validate(); err != nil {
		return err
	}

	c.shipID = shipID
	return nil
}

func (c *CreateShipCommand) setName(name string) error {
	if name == "" {
		return ErrShipNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateShipCommand) setMaxSpeedKnots(maxSpeedKnots float64) error {
	if maxSpeedKnots <= 0 {
		return ErrMaxSpeedIsInvalid
	}

	c.maxSpeedKnots = maxSpeedKnots
	return nil
}

func (c *CreateShipCommand) setMaxContainerCount(maxContainerCount int) error {
	if maxContainerCount <= 0 {
		return ErrMaxContainerCountIsInvalid
	}

	c.maxContainerCount = maxContainerCount
	return nil
}

func (c *CreateShipCommand) setMaxWeightTons(maxWeightTons float64) error {
	if maxWeightTons <= 0 {
		return ErrMaxWeightIsInvalid
	}

	c.maxWeightTons = maxWeightTons
	return nil
}
