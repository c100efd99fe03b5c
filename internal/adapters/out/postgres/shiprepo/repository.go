package shiprepo

import (
	"context"
	"errors"

	"freight/internal/adapters/out/postgres/containerrepo"
	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/ship"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipRepository implements ShipRepository using GORM.
type GormShipRepository struct {
	db       *gorm.DB
	tracker  aggregateTracker
	notifier container.HazardNotifier
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormShipRepository creates a new GORM ship repository.
// The notifier is re-attached to every container restored as part of a
// ship's stow; it may be nil when no hazard side channel is configured.
func NewGormShipRepository(
	db *gorm.DB,
	tracker aggregateTracker,
	notifier container.HazardNotifier,
) *GormShipRepository {
	return &GormShipRepository{
		db:       db,
		tracker:  tracker,
		notifier: notifier,
	}
}

// Add saves a new ship to the database. New ships are empty, so no
// container rows need updating.
func (r *GormShipRepository) Add(ctx context.Context, aggregate *ship.ContainerShip) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := r.syncStow(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update saves an existing ship to the database and reconciles the ship_id
// column on the containers table with the aggregate's current stow. Cargo
// state of the stowed containers is persisted too, so a load followed by a
// stow within one transaction is not lost.
func (r *GormShipRepository) Update(ctx context.Context, aggregate *ship.ContainerShip) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.syncStow(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves a ship by ID together with its stowed containers.
func (r *GormShipRepository) Get(ctx context.Context, id kernel.UUID) (*ship.ContainerShip, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ship", id.String())
		}
		return nil, err
	}

	containers, err := r.stowedContainers(ctx, id)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, containers)
}

// GetAll retrieves every ship with its stow, in name order.
func (r *GormShipRepository) GetAll(ctx context.Context) ([]*ship.ContainerShip, error) {
	var dtos []ShipDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	ships := make([]*ship.ContainerShip, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}

		containers, err := r.stowedContainers(ctx, id)
		if err != nil {
			return nil, err
		}

		s, err := toDomain(dto, containers)
		if err != nil {
			return nil, err
		}
		ships = append(ships, s)
	}

	return ships, nil
}

// stowedContainers loads and restores the containers assigned to the ship,
// in serial order.
func (r *GormShipRepository) stowedContainers(
	ctx context.Context,
	id kernel.UUID,
) ([]*container.Container, error) {
	var dtos []containerrepo.ContainerDTO
	if err := r.db.WithContext(ctx).
		Where("ship_id = ?", id.Bytes()).
		Order("prefix, sequence").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	containers := make([]*container.Container, 0, len(dtos))
	for _, dto := range dtos {
		c, err := containerrepo.ToDomain(dto, r.notifier)
		if err != nil {
			return nil, err
		}
		containers = append(containers, c)
	}

	return containers, nil
}

// syncStow reconciles the containers table with the aggregate's stow:
// rows previously assigned to the ship but no longer on board are released,
// and every container currently on board gets its ship_id plus its latest
// cargo state written back.
func (r *GormShipRepository) syncStow(ctx context.Context, aggregate *ship.ContainerShip) error {
	shipID := aggregate.ID().Bytes()

	stowed := aggregate.Containers()
	serials := make([]string, 0, len(stowed))
	for _, c := range stowed {
		serials = append(serials, c.Serial().String())
	}

	release := r.db.WithContext(ctx).
		Model(&containerrepo.ContainerDTO{}).
		Where("ship_id = ?", shipID)
	if len(serials) > 0 {
		release = release.Where("serial NOT IN ?", serials)
	}
	if err := release.Update("ship_id", nil).Error; err != nil {
		return err
	}

	for _, c := range stowed {
		err := r.db.WithContext(ctx).
			Model(&containerrepo.ContainerDTO{}).
			Where("serial = ?", c.Serial().String()).
			Updates(map[string]any{
				"ship_id":    shipID,
				"cargo_mass": c.CargoMass(),
			}).Error
		if err != nil {
			return err
		}
	}

	return nil
}
