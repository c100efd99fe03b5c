package containerrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormContainerRepository implements ContainerRepository using GORM.
type GormContainerRepository struct {
	db       *gorm.DB
	tracker  aggregateTracker
	notifier container.HazardNotifier
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormContainerRepository creates a new GORM container repository.
// The notifier is re-attached to every container restored from the
// database; it may be nil when no hazard side channel is configured.
func NewGormContainerRepository(
	db *gorm.DB,
	tracker aggregateTracker,
	notifier container.HazardNotifier,
) *GormContainerRepository {
	return &GormContainerRepository{
		db:       db,
		tracker:  tracker,
		notifier: notifier,
	}
}

// Add saves a new container to the database.
func (r *GormContainerRepository) Add(ctx context.Context, aggregate *container.Container) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.Serial().String(), aggregate)
	return nil
}

// Update saves an existing container to the database.
// The ship assignment column is left untouched; it belongs to the ship
// aggregate and is maintained by the ship repository.
func (r *GormContainerRepository) Update(ctx context.Context, aggregate *container.Container) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)

	result := r.db.WithContext(ctx).Omit("ship_id").Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.Serial().String(), aggregate)
	return nil
}

// Get retrieves a container by its serial number.
func (r *GormContainerRepository) Get(
	ctx context.Context,
	serial kernel.SerialNumber,
) (*container.Container, error) {
	if err := serial.Validate(); err != nil {
		return nil, err
	}

	var dto ContainerDTO
	if err := r.db.WithContext(ctx).First(&dto, "serial = ?", serial.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("container", serial.String())
		}
		return nil, err
	}

	return ToDomain(dto, r.notifier)
}

// GetAllUnassigned retrieves every container not on board any ship, in
// serial order.
func (r *GormContainerRepository) GetAllUnassigned(ctx context.Context) ([]*container.Container, error) {
	var dtos []ContainerDTO
	if err := r.db.WithContext(ctx).
		Where("ship_id IS NULL").
		Order("prefix, sequence").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	containers := make([]*container.Container, 0, len(dtos))
	for _, dto := range dtos {
		c, err := ToDomain(dto, r.notifier)
		if err != nil {
			return nil, err
		}
		containers = append(containers, c)
	}

	return containers, nil
}

// MaxSequence returns the highest serial sequence ever persisted for the
// prefix, or 0 when none exists.
func (r *GormContainerRepository) MaxSequence(
	ctx context.Context,
	prefix kernel.Prefix,
) (uint64, error) {
	if err := prefix.Validate(); err != nil {
		return 0, err
	}

	var maxSequence uint64
	err := r.db.WithContext(ctx).
		Model(&ContainerDTO{}).
		Where("prefix = ?", prefix.String()).
		Select("COALESCE(MAX(sequence), 0)").
		Scan(&maxSequence).Error
	if err != nil {
		return 0, err
	}

	return maxSequence, nil
}
