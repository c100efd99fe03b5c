package commands

import (
	"context"
)

// ReplaceContainerCommandHandler handles the business logic for swapping
// one container on a ship for another. The swap spans both aggregates:
// the replacement comes from the unassigned pool and the old container
// returns to it.
type ReplaceContainerCommandHandler struct {
	uowFactory UoWFactory
}

// NewReplaceContainerCommandHandler creates a handler for container
// replacement. Requires a UoWFactory because the operation spans both
// the container and ship aggregates.
func NewReplaceContainerCommandHandler(uowFactory UoWFactory) ReplaceContainerCommandHandler {
	return ReplaceContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the container replacement command.
// Fetches the ship and the replacement container, swaps them through the
// aggregate, and persists the new manifest. A weight violation rolls the
// whole operation back.
func (h *ReplaceContainerCommandHandler) Handle(ctx context.Context, cmd ReplaceContainerCommand) error {
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

	replacement, err := uow.ContainerRepository().Get(ctx, cmd.NewSerial())
	if err != nil {
		return err
	}

	if err = targetShip.ReplaceContainer(cmd.OldSerial(), replacement); err != nil {
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
