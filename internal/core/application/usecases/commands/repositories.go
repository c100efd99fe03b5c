// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"freight/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across aggregate
// boundaries.
type (
	// TxManager handles the database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ContainerRepoFactory provides access to the container repository
	// within a transaction.
	ContainerRepoFactory interface {
		ContainerRepository() ports.ContainerRepository
	}

	// ShipRepoFactory provides access to the ship repository within a
	// transaction.
	ShipRepoFactory interface {
		ShipRepository() ports.ShipRepository
	}

	// ContainerUoW manages transactions for container-only operations.
	ContainerUoW interface {
		TxManager
		ContainerRepoFactory
	}

	// ContainerUoWFactory creates new container unit of work instances.
	ContainerUoWFactory interface {
		Create() ContainerUoW
	}

	// ShipUoW manages transactions for ship-only operations.
	ShipUoW interface {
		TxManager
		ShipRepoFactory
	}

	// ShipUoWFactory creates new ship unit of work instances.
	ShipUoWFactory interface {
		Create() ShipUoW
	}

	// UoW manages transactions across both container and ship aggregates.
	// Used for commands that move containers on and off ships.
	UoW interface {
		TxManager
		ContainerRepoFactory
		ShipRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
