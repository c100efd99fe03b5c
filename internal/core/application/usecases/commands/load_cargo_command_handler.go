package commands

import (
	"context"
)

// LoadCargoCommandHandler handles the business logic for loading cargo
// into a container. The domain entity enforces the effective load limit,
// so an overload attempt surfaces as container.ErrOverfill and leaves the
// container unchanged.
type LoadCargoCommandHandler struct {
	uowFactory ContainerUoWFactory
}

// NewLoadCargoCommandHandler creates a handler for cargo loading.
// Requires a ContainerUoWFactory for transactional persistence.
func NewLoadCargoCommandHandler(uowFactory ContainerUoWFactory) LoadCargoCommandHandler {
	return LoadCargoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cargo loading command.
// Fetches the container, applies the load through the entity, and persists
// the new cargo mass. Rolls back on any error.
func (h *LoadCargoCommandHandler) Handle(ctx context.Context, cmd LoadCargoCommand) error {
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

	containerRepo := uow.ContainerRepository()
	entity, err := containerRepo.Get(ctx, cmd.Serial())
	if err != nil {
		return err
	}

	if err = entity.LoadCargo(cmd.Mass()); err != nil {
		return err
	}

	if err = containerRepo.Update(ctx, entity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
