package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/ship"
)

// ShipRepository defines the persistence contract for container ship
// aggregates, including the containers currently on board.
type ShipRepository interface {
	// Add persists a new ship aggregate.
	Add(ctx context.Context, ship *ship.ContainerShip) error

	// Update persists changes to an existing ship aggregate, including
	// additions to and removals from its stow.
	Update(ctx context.Context, ship *ship.ContainerShip) error

	// Get retrieves a ship by its identifier with its complete stow.
	// Returns errs.ObjectNotFoundError when no such ship exists.
	Get(ctx context.Context, id kernel.UUID) (*ship.ContainerShip, error)

	// GetAll retrieves every ship with its stow, in name order.
	GetAll(ctx context.Context) ([]*ship.ContainerShip, error)
}
