package commands

import (
	"context"
	"errors"

	"freight/internal/core/domain/services"
)

// StowContainersCommandHandler orchestrates a stowage planning round.
// Every unassigned container is offered to the fleet through the planner;
// ships that took containers are persisted at the end of the round.
type StowContainersCommandHandler struct {
	uowFactory     UoWFactory
	stowagePlanner services.StowagePlanner
}

// NewStowContainersCommandHandler creates a handler for stowage planning
// rounds. Requires a UoWFactory for coordinating updates across the
// container and ship repositories.
func NewStowContainersCommandHandler(
	uowFactory UoWFactory,
	stowagePlanner services.StowagePlanner,
) StowContainersCommandHandler {
	return StowContainersCommandHandler{
		uowFactory:     uowFactory,
		stowagePlanner: stowagePlanner,
	}
}

// Handle processes the stowage planning command.
// Retrieves every unassigned container and the whole fleet, plans each
// container onto the best available ship, and persists every ship that
// changed. A container no ship can accept is skipped, not an error.
// All updates occur within a single transaction.
func (h *StowContainersCommandHandler) Handle(ctx context.Context, cmd StowContainersCommand) error {
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
	shipRepo := uow.ShipRepository()

	unassigned, err := containerRepo.GetAllUnassigned(ctx)
	if err != nil {
		return err
	}

	ships, err := shipRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	changed := make(map[string]bool)
	for _, entity := range unassigned {
		best, planErr := h.stowagePlanner.Plan(entity, ships)
		if errors.Is(planErr, services.ErrShipNotFound) {
			continue
		}
		if planErr != nil {
			return planErr
		}

		changed[best.ID().String()] = true
	}

	for _, s := range ships {
		if !changed[s.ID().String()] {
			continue
		}

		if err = shipRepo.Update(ctx, s); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
