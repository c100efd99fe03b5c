package services

import (
	"errors"

	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/ship"
)

// ErrShipNotFound is returned when no ship in the candidate set can accept
// the container, either because every ship is at its container cap or
// because the container's weight would tip every remaining weight budget.
var ErrShipNotFound = errors.New("no ship can accept this container")

// StowagePlanner is a domain service that picks the best ship for a
// container. Among the ships that can accept the container it selects the
// one with the greatest remaining weight budget, spreading load across the
// fleet instead of filling one vessel to its cap.
//
// Example usage:
//
//	planner := services.NewStowagePlanner()
//	best, err := planner.Plan(cargo, fleet)
//	if errors.Is(err, services.ErrShipNotFound) {
//	    // no capacity anywhere, leave the container ashore
//	    return
//	}
type StowagePlanner struct{}

// NewStowagePlanner creates a new StowagePlanner instance.
func NewStowagePlanner() StowagePlanner {
	return StowagePlanner{}
}

// Plan selects the ship for the container and loads it aboard.
//
// The container and every candidate ship are validated first. Selection is
// greatest-remaining-weight-first among ships whose count and weight caps
// both hold; the load itself re-runs the ship's invariant checks, so a
// concurrent change surfaces as the ship's own error.
func (p StowagePlanner) Plan(c *container.Container, ships []*ship.ContainerShip) (*ship.ContainerShip, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	best, err := p.findBestShip(c, ships)
	if err != nil {
		return nil, err
	}

	if err := best.LoadContainer(c); err != nil {
		return nil, err
	}

	return best, nil
}

// findBestShip returns the accepting ship with the greatest remaining weight
// budget, or ErrShipNotFound when none qualifies.
func (p StowagePlanner) findBestShip(
	c *container.Container,
	ships []*ship.ContainerShip,
) (*ship.ContainerShip, error) {
	var best *ship.ContainerShip

	for _, s := range ships {
		if err := s.Validate(); err != nil {
			return nil, err
		}

		ok, err := s.CanAccept(c)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		if best == nil || s.RemainingWeightTons() > best.RemainingWeightTons() {
			best = s
		}
	}

	if best == nil {
		return nil, ErrShipNotFound
	}
	return best, nil
}
