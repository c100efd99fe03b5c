// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrGetAllShipsQueryIsNotConstructed = errors.New(
		"GetAllShipsQuery must be created via NewGetAllShipsQuery constructor",
	)
)

// GetAllShipsQuery retrieves information about every ship in the fleet
// together with its stowed containers. Used for fleet monitoring and
// manifest display.
//
// Example:
//
//	query := NewGetAllShipsQuery()
//	handler := NewGetAllShipsQueryHandler(db)
//
//	ships, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve fleet: %w", err)
//	}
//
//	for _, ship := range ships {
//	    fmt.Printf("%s carries %d containers\n", ship.Name, len(ship.Containers))
//	}
type GetAllShipsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllShipsQuery creates a query to retrieve the whole fleet.
// This is a parameterless query.
func NewGetAllShipsQuery() GetAllShipsQuery {
	return GetAllShipsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllShipsQueryIsNotConstructed if validation fails.
func (q GetAllShipsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllShipsQueryIsNotConstructed)
}

// StowedContainerResponse represents a container on board a ship in the
// read model.
type StowedContainerResponse struct {
	Serial        string
	Kind          string
	TotalWeightKg float64
}

// GetAllShipsQueryResponse represents ship information in the read model.
// Contains the ship's limits plus its current manifest.
type GetAllShipsQueryResponse struct {
	ID                kernel.UUID
	Name              string
	MaxSpeedKnots     float64
	MaxContainerCount int
	MaxWeightTons     float64
	Containers        []StowedContainerResponse
}
