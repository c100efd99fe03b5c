package commands

import (
	"context"

	"freight/internal/core/domain/model/container"
)

// LoadContainersCommandHandler handles the business logic for loading a
// batch of containers onto a ship. The ship aggregate enforces the count
// and weight limits atomically, so a rejected batch leaves the ship and
// every container untouched.
type LoadContainersCommandHandler struct {
	uowFactory UoWFactory
}

// NewLoadContainersCommandHandler creates a handler for batch loading.
// Requires a UoWFactory because the operation spans both the container
// and ship aggregates.
func NewLoadContainersCommandHandler(uowFactory UoWFactory) LoadContainersCommandHandler {
	return LoadContainersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch loading command.
// Fetches the ship and every container in the batch, loads them through
// the aggregate, and persists the ship's new manifest. Rolls back on any
// error, including a count or weight violation.
func (h *LoadContainersCommandHandler) Handle(ctx context.Context, cmd LoadContainersCommand) error {
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

	containerRepo := uow.ContainerRepository()
	batch := make([]*container.Container, 0, len(cmd.Serials()))
	for _, serial := range cmd.Serials() {
		entity, getErr := containerRepo.Get(ctx, serial)
		if getErr != nil {
			return getErr
		}
		batch = append(batch, entity)
	}

	if err = targetShip.LoadContainers(batch); err != nil {
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
