package commands

import (
	"context"

	"freight/internal/core/domain/model/ship"
)

// CreateShipCommandHandler handles the business logic for commissioning
// a new container ship. Ships are created empty and become stowage targets
// for the planner as soon as they are persisted.
type CreateShipCommandHandler struct {
	uowFactory ShipUoWFactory
}

// NewCreateShipCommandHandler creates a handler for ship commissioning.
// Requires a ShipUoWFactory for transactional persistence.
func NewCreateShipCommandHandler(uowFactory ShipUoWFactory) CreateShipCommandHandler {
	return CreateShipCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the ship commissioning command.
// Uses a transaction to ensure the ship is properly persisted or rolled
// back on error.
func (h *CreateShipCommandHandler) Handle(ctx context.Context, cmd CreateShipCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newShip, err := ship.NewContainerShip(
		cmd.ShipID(),
		cmd.Name(),
		cmd.MaxSpeedKnots(),
		cmd.MaxContainerCount(),
		cmd.MaxWeightTons(),
	)
	if err != nil {
		return err
	}

	if err = uow.ShipRepository().Add(ctx, newShip); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
