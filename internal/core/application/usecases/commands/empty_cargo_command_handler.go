package commands

import (
	"context"
)

// EmptyCargoCommandHandler handles the business logic for discharging a
// container's cargo.
type EmptyCargoCommandHandler struct {
	uowFactory ContainerUoWFactory
}

// NewEmptyCargoCommandHandler creates a handler for cargo discharge.
// Requires a ContainerUoWFactory for transactional persistence.
func NewEmptyCargoCommandHandler(uowFactory ContainerUoWFactory) EmptyCargoCommandHandler {
	return EmptyCargoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cargo discharge command.
// Fetches the container, discharges it through the entity, and persists
// the resulting cargo mass. Rolls back on any error.
func (h *EmptyCargoCommandHandler) Handle(ctx context.Context, cmd EmptyCargoCommand) error {
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

	entity.EmptyCargo()

	if err = containerRepo.Update(ctx, entity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
