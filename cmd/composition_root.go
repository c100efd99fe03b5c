package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"freight/internal/adapters/in/http"
	"freight/internal/adapters/out/postgres"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/services"
	"freight/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	registry   *container.Registry
	notifier   container.HazardNotifier
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	notifier := container.HazardNotifierFunc(func(message string) {
		logger.Warn("hazard reported", "message", message)
	})

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB, notifier),
		registry:   container.NewRegistry(),
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) Registry() *container.Registry {
	return c.registry
}

// SeedRegistry advances the serial registry past every sequence already
// persisted, so restarts never remint a serial that is on record.
func (c *CompositionRoot) SeedRegistry(ctx context.Context) error {
	repo := c.uowFactory.Create().ContainerRepository()

	prefixes := []kernel.Prefix{
		kernel.PrefixBasic,
		kernel.PrefixLiquid,
		kernel.PrefixGas,
		kernel.PrefixRefrigerated,
	}
	for _, prefix := range prefixes {
		last, err := repo.MaxSequence(ctx, prefix)
		if err != nil {
			return fmt.Errorf("read max sequence for prefix %s: %w", prefix, err)
		}
		if err := c.registry.Seed(prefix, last); err != nil {
			return fmt.Errorf("seed registry for prefix %s: %w", prefix, err)
		}
	}
	return nil
}

func (c *CompositionRoot) CreateCreateContainerCommandHandler() commands.CreateContainerCommandHandler {
	var f commands.ContainerUoWFactory = FuncContainerUoWFactory(func() commands.ContainerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateContainerCommandHandler(f, c.registry, c.notifier)
}

func (c *CompositionRoot) CreateCreateShipCommandHandler() commands.CreateShipCommandHandler {
	var f commands.ShipUoWFactory = FuncShipUoWFactory(func() commands.ShipUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipCommandHandler(f)
}

func (c *CompositionRoot) CreateLoadCargoCommandHandler() commands.LoadCargoCommandHandler {
	var f commands.ContainerUoWFactory = FuncContainerUoWFactory(func() commands.ContainerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLoadCargoCommandHandler(f)
}

func (c *CompositionRoot) CreateEmptyCargoCommandHandler() commands.EmptyCargoCommandHandler {
	var f commands.ContainerUoWFactory = FuncContainerUoWFactory(func() commands.ContainerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEmptyCargoCommandHandler(f)
}

func (c *CompositionRoot) CreateLoadContainersCommandHandler() commands.LoadContainersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewLoadContainersCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveContainerCommandHandler() commands.RemoveContainerCommandHandler {
	var f commands.ShipUoWFactory = FuncShipUoWFactory(func() commands.ShipUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveContainerCommandHandler(f)
}

func (c *CompositionRoot) CreateReplaceContainerCommandHandler() commands.ReplaceContainerCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewReplaceContainerCommandHandler(f)
}

func (c *CompositionRoot) CreateStowContainersCommandHandler() commands.StowContainersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewStowContainersCommandHandler(f, services.NewStowagePlanner())
}

func (c *CompositionRoot) CreateGetAllShipsQueryHandler() queries.GetAllShipsQueryHandler {
	return queries.NewGetAllShipsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnassignedContainersQueryHandler() queries.GetUnassignedContainersQueryHandler {
	return queries.NewGetUnassignedContainersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(
		c.CreateCreateContainerCommandHandler(),
		c.CreateCreateShipCommandHandler(),
		c.CreateLoadCargoCommandHandler(),
		c.CreateEmptyCargoCommandHandler(),
		c.CreateLoadContainersCommandHandler(),
		c.CreateRemoveContainerCommandHandler(),
		c.CreateReplaceContainerCommandHandler(),
		c.CreateStowContainersCommandHandler(),
		c.CreateGetAllShipsQueryHandler(),
		c.CreateGetUnassignedContainersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateStowContainersCommandHandler(), c.logger)
}

type FuncContainerUoWFactory func() commands.ContainerUoW

func (f FuncContainerUoWFactory) Create() commands.ContainerUoW {
	return f()
}

type FuncShipUoWFactory func() commands.ShipUoW

func (f FuncShipUoWFactory) Create() commands.ShipUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
