package commands

import (
	"errors"

	"freight/internal/pkg/guard"
)

// StowContainersCommand triggers a planning round that distributes every
// unassigned container across the fleet. Containers that no ship can accept
// stay ashore and are retried on the next round.
//
// Example:
//
//	cmd := NewStowContainersCommand()
//	handler := NewStowContainersCommandHandler(uowFactory, planner)
//
//	// Run periodically from the scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Stowage round failed: %v", err)
//	}
type StowContainersCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrStowContainersCommandIsNotConstructed = errors.New(
		"StowContainersCommand must be created via NewStowContainersCommand constructor",
	)
)

// NewStowContainersCommand creates a command to trigger a stowage planning
// round. This is a parameterless command that processes the whole
// unassigned pool.
func NewStowContainersCommand() StowContainersCommand {
	command := StowContainersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrStowContainersCommandIsNotConstructed if validation fails.
func (c *StowContainersCommand) Validate() error {
	return c.guard.Validate(ErrStowContainersCommandIsNotConstructed)
}
