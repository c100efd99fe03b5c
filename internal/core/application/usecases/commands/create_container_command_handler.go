package commands

import (
	"context"
	"fmt"

	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
)

// CreateContainerCommandHandler handles the business logic for container
// registration. It mints the serial number through the fleet registry,
// builds the requested variant, and persists it within a transaction.
//
// Hazard-capable variants are wired to the handler's notifier so overload
// attempts reach the hazard side channel from the moment of creation.
type CreateContainerCommandHandler struct {
	uowFactory ContainerUoWFactory
	registry   *container.Registry
	notifier   container.HazardNotifier
}

// NewCreateContainerCommandHandler creates a handler for container
// registration. The registry is the process-wide serial allocator; the
// notifier may be nil when no hazard side channel is configured.
func NewCreateContainerCommandHandler(
	uowFactory ContainerUoWFactory,
	registry *container.Registry,
	notifier container.HazardNotifier,
) CreateContainerCommandHandler {
	return CreateContainerCommandHandler{
		uowFactory: uowFactory,
		registry:   registry,
		notifier:   notifier,
	}
}

// Handle processes the container creation command and returns the serial
// number assigned to the new container. Rolls back on any error so a failed
// creation leaves no trace.
func (h *CreateContainerCommandHandler) Handle(
	ctx context.Context,
	cmd CreateContainerCommand,
) (kernel.SerialNumber, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.SerialNumber{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.SerialNumber{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	entity, err := h.buildContainer(cmd)
	if err != nil {
		return kernel.SerialNumber{}, err
	}

	if err = uow.ContainerRepository().Add(ctx, entity); err != nil {
		return kernel.SerialNumber{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.SerialNumber{}, err
	}

	return entity.Serial(), nil
}

// buildContainer constructs the variant requested by the command.
func (h *CreateContainerCommandHandler) buildContainer(cmd CreateContainerCommand) (*container.Container, error) {
	switch cmd.Kind() {
	case container.Basic:
		return container.NewBasicContainer(
			h.registry, cmd.Height(), cmd.Depth(), cmd.TareWeight(), cmd.MaxPayload(),
		)
	case container.Liquid:
		return container.NewLiquidContainer(
			h.registry, cmd.Height(), cmd.Depth(), cmd.TareWeight(), cmd.MaxPayload(),
			cmd.Dangerous(), h.notifier,
		)
	case container.Gas:
		return container.NewGasContainer(
			h.registry, cmd.Height(), cmd.Depth(), cmd.TareWeight(), cmd.MaxPayload(),
			cmd.Pressure(), h.notifier,
		)
	case container.Refrigerated:
		return container.NewRefrigeratedContainer(
			h.registry, cmd.Height(), cmd.Depth(), cmd.TareWeight(), cmd.MaxPayload(),
			cmd.Product(), cmd.Temperature(),
		)
	case container.Unknown:
	}
	return nil, fmt.Errorf("unsupported container kind %s", cmd.Kind())
}
