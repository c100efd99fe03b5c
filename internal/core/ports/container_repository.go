// Package ports defines repository interfaces for the freight domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
)

// ContainerRepository defines the persistence contract for container
// entities, whether they sit ashore or on board a ship.
type ContainerRepository interface {
	// Add persists a newly created container.
	Add(ctx context.Context, container *container.Container) error

	// Update persists changes to an existing container (cargo mass and
	// ship assignment are the only mutable parts).
	Update(ctx context.Context, container *container.Container) error

	// Get retrieves a container by its serial number.
	// Returns errs.ObjectNotFoundError when no such container exists.
	Get(ctx context.Context, serial kernel.SerialNumber) (*container.Container, error)

	// GetAllUnassigned retrieves every container that is not on board any
	// ship, in serial order. These are the candidates for stowage planning.
	GetAllUnassigned(ctx context.Context) ([]*container.Container, error)

	// MaxSequence returns the highest serial sequence ever persisted for
	// the prefix, or 0 when none exists. Used to seed the fleet registry at
	// startup so restarts never mint a serial twice.
	MaxSequence(ctx context.Context, prefix kernel.Prefix) (uint64, error)
}
