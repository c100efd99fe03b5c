package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUnassignedContainersQueryHandler retrieves shore-side containers from
// the database. Uses direct SQL queries for optimal read performance in
// the CQRS pattern.
type GetUnassignedContainersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedContainersQueryHandler creates a handler for unassigned
// container queries. Requires a GORM database connection for query
// execution.
func NewGetUnassignedContainersQueryHandler(db *gorm.DB) GetUnassignedContainersQueryHandler {
	return GetUnassignedContainersQueryHandler{db: db}
}

// Handle executes the query to retrieve every container not on board any
// ship, in serial order.
func (h GetUnassignedContainersQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedContainersQuery,
) ([]GetUnassignedContainersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	containers := make([]GetUnassignedContainersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			serial,
			kind,
			cargo_mass,
			max_payload,
			tare_weight + cargo_mass AS total_weight
		FROM containers
		WHERE ship_id IS NULL
		ORDER BY prefix, sequence
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c GetUnassignedContainersQueryResponse

		err = rows.Scan(
			&c.Serial,
			&c.Kind,
			&c.CargoMassKg,
			&c.MaxPayloadKg,
			&c.TotalWeightKg,
		)
		if err != nil {
			return nil, err
		}

		containers = append(containers, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return containers, nil
}
