// Package shiprepo provides data transfer objects and mapping functions for
// ship persistence. The ship aggregate owns the assignment of containers to
// ships: the repository maintains the ship_id column on the containers table
// to mirror the in-memory stow.
package shiprepo

import (
	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/ship"

	"github.com/google/uuid"
)

// ShipDTO represents the database structure for persisting ship aggregates.
// The stowed containers live in the containers table and reference the ship
// through their ship_id column.
type ShipDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"type:varchar(255);not null"`
	MaxSpeedKnots     float64   `gorm:"type:numeric;not null"`
	MaxContainerCount int       `gorm:"type:int;not null"`
	MaxWeightTons     float64   `gorm:"type:numeric;not null"`
}

// TableName specifies the database table name for ship entities.
// Overrides GORM's default naming convention to use "ships" instead of
// "ship_dtos".
func (ShipDTO) TableName() string {
	return "ships"
}

// fromDomain converts a ship aggregate to its database representation.
func fromDomain(s *ship.ContainerShip) ShipDTO {
	return ShipDTO{
		ID:                s.ID().Bytes(),
		Name:              s.Name(),
		MaxSpeedKnots:     s.MaxSpeedKnots(),
		MaxContainerCount: s.MaxContainerCount(),
		MaxWeightTons:     s.MaxWeightTons(),
	}
}

// toDomain converts a database DTO plus its stowed containers to a ship
// aggregate.
func toDomain(dto ShipDTO, containers []*container.Container) (*ship.ContainerShip, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return ship.RestoreContainerShip(
		id,
		dto.Name,
		dto.MaxSpeedKnots,
		dto.MaxContainerCount,
		dto.MaxWeightTons,
		containers,
	)
}
