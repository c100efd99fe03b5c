package ship

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// kilogramsPerTon converts container weights to the unit of the ship's cap.
const kilogramsPerTon = 1000.0

var (
	// ErrCapacityExceeded indicates that loading would push the ship past
	// its maximum container count.
	ErrCapacityExceeded = errors.New("ship container capacity exceeded")

	// ErrWeightExceeded indicates that a mutation would push the ship's
	// total weight past its cap.
	ErrWeightExceeded = errors.New("ship maximum weight exceeded")

	// ErrContainerNotFound indicates that no container with the requested
	// serial number is on board.
	ErrContainerNotFound = errors.New("container not found on this ship")

	// ErrShipIsNotConstructed is returned when using a ContainerShip that
	// was not created via NewContainerShip.
	ErrShipIsNotConstructed = errors.New("ContainerShip must be created via NewContainerShip constructor")
)

// ContainerShip is the aggregate root for stowage. It owns the ordered
// collection of containers on board and re-validates the count and weight
// invariants on every mutation.
//
// Capacity parameters are immutable after construction. All count and weight
// checks are evaluated before any mutation, so every operation is
// all-or-nothing.
type ContainerShip struct {
	// id uniquely identifies the ship
	id kernel.UUID
	// name is the human-readable vessel name
	name string
	// maxSpeedKnots is the ship's top speed, informational
	maxSpeedKnots float64
	// maxContainerCount caps how many containers fit on board
	maxContainerCount int
	// maxWeightTons caps the summed tare+cargo weight of the stow
	maxWeightTons float64
	// containers is the ordered stow
	containers []*container.Container

	guard guard.ConstructorGuard
}

// NewContainerShip creates an empty ship with the given capacity parameters.
// Name must be non-empty; speed, container count, and weight cap must be
// positive.
func NewContainerShip(
	id kernel.UUID,
	name string,
	maxSpeedKnots float64,
	maxContainerCount int,
	maxWeightTons float64,
) (*ContainerShip, error) {
	s := &ContainerShip{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setMaxSpeedKnots(maxSpeedKnots),
		s.setMaxContainerCount(maxContainerCount),
		s.setMaxWeightTons(maxWeightTons),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreContainerShip reconstructs a ship from persistent storage together
// with the containers on board. The restored stow must already satisfy the
// ship's invariants; a persisted state violating them is rejected.
func RestoreContainerShip(
	id kernel.UUID,
	name string,
	maxSpeedKnots float64,
	maxContainerCount int,
	maxWeightTons float64,
	containers []*container.Container,
) (*ContainerShip, error) {
	s, err := NewContainerShip(id, name, maxSpeedKnots, maxContainerCount, maxWeightTons)
	if err != nil {
		return nil, err
	}

	if err := s.setContainers(containers); err != nil {
		return nil, err
	}

	return s, nil
}

// IsEqual compares two ships by their unique identifiers.
func (s *ContainerShip) IsEqual(other *ContainerShip) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// Validate checks that the ship was created via NewContainerShip.
func (s *ContainerShip) Validate() error {
	if s == nil {
		return ErrShipIsNotConstructed
	}
	return s.guard.Validate(ErrShipIsNotConstructed)
}

// ID returns the ship's unique identifier.
func (s *ContainerShip) ID() kernel.UUID {
	return s.id
}

// Name returns the vessel name.
func (s *ContainerShip) Name() string {
	return s.name
}

// MaxSpeedKnots returns the ship's top speed.
func (s *ContainerShip) MaxSpeedKnots() float64 {
	return s.maxSpeedKnots
}

// MaxContainerCount returns the cap on how many containers fit on board.
func (s *ContainerShip) MaxContainerCount() int {
	return s.maxContainerCount
}

// MaxWeightTons returns the ship's weight cap in tons.
func (s *ContainerShip) MaxWeightTons() float64 {
	return s.maxWeightTons
}

// Containers returns a snapshot of the stow in loading order. Mutating the
// returned slice never affects ship state.
func (s *ContainerShip) Containers() []*container.Container {
	out := make([]*container.Container, len(s.containers))
	copy(out, s.containers)
	return out
}

// ContainerCount returns how many containers are on board.
func (s *ContainerShip) ContainerCount() int {
	return len(s.containers)
}

// TotalWeightTons returns the summed tare+cargo weight of the stow in tons.
func (s *ContainerShip) TotalWeightTons() float64 {
	var kg float64
	for _, c := range s.containers {
		kg += c.TotalWeight()
	}
	return kg / kilogramsPerTon
}

// CanAccept reports whether loading the container would keep both the count
// and weight invariants. It validates the container and never mutates the
// ship; the stowage planner uses it to pick candidate ships.
func (s *ContainerShip) CanAccept(c *container.Container) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}

	if len(s.containers)+1 > s.maxContainerCount {
		return false, nil
	}
	return s.TotalWeightTons()+c.TotalWeight()/kilogramsPerTon <= s.maxWeightTons, nil
}

// RemainingWeightTons returns how much weight the ship can still take before
// hitting its cap.
func (s *ContainerShip) RemainingWeightTons() float64 {
	return s.maxWeightTons - s.TotalWeightTons()
}

// LoadContainer appends a container to the stow.
//
// The count cap is checked first: a full ship fails with ErrCapacityExceeded
// regardless of weight. Then the weight cap is checked against the
// container's tare+cargo converted to tons, failing with ErrWeightExceeded.
// On any failure the stow is unchanged.
func (s *ContainerShip) LoadContainer(c *container.Container) error {
	return s.LoadContainers([]*container.Container{c})
}

// LoadContainers appends a batch of containers atomically: the count and
// weight checks run against the combined batch, and either every container
// is added or none is.
func (s *ContainerShip) LoadContainers(batch []*container.Container) error {
	if len(batch) == 0 {
		return errs.NewValueIsRequiredError("containers")
	}

	var batchKg float64
	for _, c := range batch {
		if err := c.Validate(); err != nil {
			return err
		}
		batchKg += c.TotalWeight()
	}

	if len(s.containers)+len(batch) > s.maxContainerCount {
		return ErrCapacityExceeded
	}

	if s.TotalWeightTons()+batchKg/kilogramsPerTon > s.maxWeightTons {
		return ErrWeightExceeded
	}

	s.containers = append(s.containers, batch...)
	return nil
}

// RemoveContainer takes the container with the given serial off the ship.
// Serials are unique, so at most one container matches; a miss fails with
// ErrContainerNotFound.
func (s *ContainerShip) RemoveContainer(serial kernel.SerialNumber) error {
	if err := serial.Validate(); err != nil {
		return err
	}

	idx := s.indexOf(serial)
	if idx < 0 {
		return ErrContainerNotFound
	}

	s.containers = append(s.containers[:idx], s.containers[idx+1:]...)
	return nil
}

// ReplaceContainer swaps the container with oldSerial for the replacement,
// in place, keeping the stow order and the container count unchanged.
//
// The weight cap is re-checked as if the old container were removed and the
// replacement added; a violation fails with ErrWeightExceeded and leaves the
// stow untouched. No count check is needed since the count cannot change.
func (s *ContainerShip) ReplaceContainer(oldSerial kernel.SerialNumber, replacement *container.Container) error {
	if err := oldSerial.Validate(); err != nil {
		return err
	}
	if err := replacement.Validate(); err != nil {
		return err
	}

	idx := s.indexOf(oldSerial)
	if idx < 0 {
		return ErrContainerNotFound
	}

	newTons := s.TotalWeightTons() +
		(replacement.TotalWeight()-s.containers[idx].TotalWeight())/kilogramsPerTon
	if newTons > s.maxWeightTons {
		return ErrWeightExceeded
	}

	s.containers[idx] = replacement
	return nil
}

// FindContainer returns the container with the given serial, or
// ErrContainerNotFound when it is not on board.
func (s *ContainerShip) FindContainer(serial kernel.SerialNumber) (*container.Container, error) {
	if err := serial.Validate(); err != nil {
		return nil, err
	}

	idx := s.indexOf(serial)
	if idx < 0 {
		return nil, ErrContainerNotFound
	}
	return s.containers[idx], nil
}

// String returns a formatted one-line summary of the ship: name, speed,
// caps, and current stow figures.
func (s *ContainerShip) String() string {
	return fmt.Sprintf(
		"%s: max speed %.1f kn, capacity %d containers / %.1f t, loaded %d containers / %.2f t",
		s.name, s.maxSpeedKnots, s.maxContainerCount, s.maxWeightTons,
		len(s.containers), s.TotalWeightTons(),
	)
}

// indexOf returns the stow position of the serial, or -1.
func (s *ContainerShip) indexOf(serial kernel.SerialNumber) int {
	for i, c := range s.containers {
		if c.Serial().IsEqual(serial) {
			return i
		}
	}
	return -1
}

func (s *ContainerShip) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.id = id
	return nil
}

func (s *ContainerShip) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	s.name = name
	return nil
}

func (s *ContainerShip) setMaxSpeedKnots(maxSpeedKnots float64) error {
	if maxSpeedKnots <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxSpeedKnots",
			fmt.Errorf("%g is not greater than 0", maxSpeedKnots),
		)
	}

	s.maxSpeedKnots = maxSpeedKnots
	return nil
}

func (s *ContainerShip) setMaxContainerCount(maxContainerCount int) error {
	if maxContainerCount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxContainerCount",
			fmt.Errorf("%d is not greater than 0", maxContainerCount),
		)
	}

	s.maxContainerCount = maxContainerCount
	return nil
}

func (s *ContainerShip) setMaxWeightTons(maxWeightTons float64) error {
	if maxWeightTons <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxWeightTons",
			fmt.Errorf("%g is not greater than 0", maxWeightTons),
		)
	}

	s.maxWeightTons = maxWeightTons
	return nil
}

// setContainers rehydrates the stow during restoration, re-checking the
// ship's invariants against the persisted collection.
func (s *ContainerShip) setContainers(containers []*container.Container) error {
	var kg float64
	for _, c := range containers {
		if err := c.Validate(); err != nil {
			return err
		}
		kg += c.TotalWeight()
	}

	if len(containers) > s.maxContainerCount {
		return ErrCapacityExceeded
	}
	if kg/kilogramsPerTon > s.maxWeightTons {
		return ErrWeightExceeded
	}

	s.containers = make([]*container.Container, len(containers))
	copy(s.containers, containers)
	return nil
}
