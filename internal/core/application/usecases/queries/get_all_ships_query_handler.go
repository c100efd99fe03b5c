package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllShipsQueryHandler retrieves the whole fleet from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllShipsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllShipsQueryHandler creates a handler for fleet retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllShipsQueryHandler(db *gorm.DB) GetAllShipsQueryHandler {
	return GetAllShipsQueryHandler{db: db}
}

// Handle executes the query to retrieve every ship and its manifest.
// Returns a slice of ship read models sorted by name; containers within a
// manifest come back in serial order.
func (h GetAllShipsQueryHandler) Handle(
	ctx context.Context,
	query GetAllShipsQuery,
) ([]GetAllShipsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ships, order, err := h.fetchShips(ctx)
	if err != nil {
		return nil, err
	}

	if err = h.attachManifests(ctx, ships); err != nil {
		return nil, err
	}

	result := make([]GetAllShipsQueryResponse, 0, len(order))
	for _, key := range order {
		result = append(result, *ships[key])
	}

	return result, nil
}

func (h GetAllShipsQueryHandler) fetchShips(
	ctx context.Context,
) (map[string]*GetAllShipsQueryResponse, []string, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			max_speed_knots,
			max_container_count,
			max_weight_tons
		FROM ships
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	ships := make(map[string]*GetAllShipsQueryResponse)
	order := make([]string, 0)

	for rows.Next() {
		var ship GetAllShipsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&ship.Name,
			&ship.MaxSpeedKnots,
			&ship.MaxContainerCount,
			&ship.MaxWeightTons,
		)
		if err != nil {
			return nil, nil, err
		}

		shipID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}
		ship.ID = shipID
		ship.Containers = make([]StowedContainerResponse, 0)

		ships[id.String()] = &ship
		order = append(order, id.String())
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return ships, order, nil
}

func (h GetAllShipsQueryHandler) attachManifests(
	ctx context.Context,
	ships map[string]*GetAllShipsQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ship_id,
			serial,
			kind,
			tare_weight + cargo_mass AS total_weight
		FROM containers
		WHERE ship_id IS NOT NULL
		ORDER BY prefix, sequence
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var shipID uuid.UUID
		var stowed StowedContainerResponse

		err = rows.Scan(
			&shipID,
			&stowed.Serial,
			&stowed.Kind,
			&stowed.TotalWeightKg,
		)
		if err != nil {
			return err
		}

		ship, ok := ships[shipID.String()]
		if !ok {
			continue
		}
		ship.Containers = append(ship.Containers, stowed)
	}

	return rows.Err()
}
