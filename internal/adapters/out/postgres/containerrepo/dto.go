// Package containerrepo provides data transfer objects and mapping functions
// for container persistence. It implements the repository pattern for the
// container aggregate, handling the conversion between domain entities and
// database representations.
package containerrepo

import (
	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ContainerDTO represents the database structure for persisting containers.
// The serial number is the primary key; prefix and sequence are stored
// separately so the fleet registry can be reseeded after a restart. ShipID
// is set while the container is on board a ship and NULL while it waits
// ashore.
type ContainerDTO struct {
	Serial      string     `gorm:"type:varchar(32);primaryKey"`
	Prefix      string     `gorm:"type:varchar(1);not null;index:idx_containers_prefix_sequence"`
	Sequence    uint64     `gorm:"type:bigint;not null;index:idx_containers_prefix_sequence"`
	Kind        string     `gorm:"type:varchar(16);not null"`
	Height      float64    `gorm:"type:numeric;not null"`
	Depth       float64    `gorm:"type:numeric;not null"`
	TareWeight  float64    `gorm:"type:numeric;not null"`
	MaxPayload  float64    `gorm:"type:numeric;not null"`
	CargoMass   float64    `gorm:"type:numeric;not null"`
	Dangerous   bool       `gorm:"type:boolean;not null"`
	Pressure    float64    `gorm:"type:numeric;not null"`
	Product     *string    `gorm:"type:varchar(32)"`
	Temperature float64    `gorm:"type:numeric;not null"`
	ShipID      *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for container entities.
// Overrides GORM's default naming convention to use "containers" instead
// of "container_dtos".
func (ContainerDTO) TableName() string {
	return "containers"
}

// FromDomain converts a container aggregate to its database representation.
// The ship assignment is intentionally left empty; it belongs to the ship
// aggregate and is maintained by the ship repository.
func FromDomain(c *container.Container) ContainerDTO {
	var prod *string
	if c.Kind() == container.Refrigerated {
		name := c.Product().String()
		prod = &name
	}

	return ContainerDTO{
		Serial:      c.Serial().String(),
		Prefix:      c.Serial().Prefix().String(),
		Sequence:    c.Serial().Sequence(),
		Kind:        c.Kind().String(),
		Height:      c.Height(),
		Depth:       c.Depth(),
		TareWeight:  c.TareWeight(),
		MaxPayload:  c.MaxPayload(),
		CargoMass:   c.CargoMass(),
		Dangerous:   c.IsDangerous(),
		Pressure:    c.Pressure(),
		Product:     prod,
		Temperature: c.Temperature(),
	}
}

// ToDomain converts a database DTO to a container aggregate.
// The notifier is re-attached here because it cannot be persisted; pass the
// process-wide hazard notifier so restored containers keep reporting
// rejected overloads.
func ToDomain(dto ContainerDTO, notifier container.HazardNotifier) (*container.Container, error) {
	serial, err := kernel.SerialNumberFromString(dto.Serial)
	if err != nil {
		return nil, err
	}

	kind, err := container.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	prod := product.Unknown
	if dto.Product != nil {
		prod, err = product.FromString(*dto.Product)
		if err != nil {
			return nil, err
		}
	}

	return container.RestoreContainer(
		serial,
		kind,
		dto.Height,
		dto.Depth,
		dto.TareWeight,
		dto.MaxPayload,
		dto.CargoMass,
		dto.Dangerous,
		dto.Pressure,
		prod,
		dto.Temperature,
		notifier,
	)
}
