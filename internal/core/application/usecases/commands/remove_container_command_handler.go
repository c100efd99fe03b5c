package commands

import (
	"context"
)

// RemoveContainerCommandHandler handles the business logic for taking a
// container off a ship.
type RemoveContainerCommandHandler struct {
	uowFactory ShipUoWFactory
}

// NewRemoveContainerCommandHandler creates a handler for container
// removal. Requires a ShipUoWFactory for transactional persistence.
func NewRemoveContainerCommandHandler(uowFactory ShipUoWFactory) RemoveContainerCommandHandler {
	return RemoveContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the container removal command.
// Fetches the ship, removes the container through the aggregate, and
// persists the new manifest. Returns ship.ErrContainerNotFound when the
// container is not on board.
func (h *RemoveContainerCommandHandler) Handle(ctx context.Context, cmd RemoveContainerCommand) error {
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

	shipRepo := uow.ShipRepository()
	targetShip, err := shipRepo.Get(ctx, cmd.ShipID())
	if err != nil {
		return err
	}

	if err = targetShip.RemoveContainer(cmd.Serial()); err != nil {
		return err
	}

	if err = shipRepo.Update(ctx, targetShip); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
