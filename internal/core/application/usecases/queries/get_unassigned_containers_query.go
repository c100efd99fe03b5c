package queries

import (
	"errors"

	"freight/internal/pkg/guard"
)

var (
	ErrGetUnassignedContainersQueryIsNotConstructed = errors.New(
		"GetUnassignedContainersQuery must be created via NewGetUnassignedContainersQuery constructor",
	)
)

// GetUnassignedContainersQuery retrieves every container waiting ashore.
// These are the candidates for the next stowage planning round.
//
// Example:
//
//	query := NewGetUnassignedContainersQuery()
//	handler := NewGetUnassignedContainersQueryHandler(db)
//
//	containers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve containers: %w", err)
//	}
type GetUnassignedContainersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnassignedContainersQuery creates a query to retrieve every
// container not on board any ship. This is a parameterless query.
func NewGetUnassignedContainersQuery() GetUnassignedContainersQuery {
	return GetUnassignedContainersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnassignedContainersQueryIsNotConstructed if validation
// fails.
func (q GetUnassignedContainersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedContainersQueryIsNotConstructed)
}

// GetUnassignedContainersQueryResponse represents a shore-side container
// in the read model.
type GetUnassignedContainersQueryResponse struct {
	Serial        string
	Kind          string
	CargoMassKg   float64
	MaxPayloadKg  float64
	TotalWeightKg float64
}
