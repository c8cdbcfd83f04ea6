package queries

import (
	"context"

	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/core/domain/model/station"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStationsQueryHandler retrieves a tenant's stations from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetStationsQueryHandler struct {
	db *gorm.DB
}

// NewGetStationsQueryHandler creates a handler for station retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetStationsQueryHandler(db *gorm.DB) GetStationsQueryHandler {
	return GetStationsQueryHandler{db: db}
}

// Handle executes the query to retrieve the tenant's stations.
// Returns a slice of station read models sorted by name.
func (h GetStationsQueryHandler) Handle(
	ctx context.Context,
	query GetStationsQuery,
) ([]GetStationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stations := make([]GetStationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			station_type,
			capacity,
			current_load,
			active
		FROM stations
		WHERE tenant_id = ?
		ORDER BY name
	`, query.TenantID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetStationsQueryResponse
		var id uuid.UUID
		var stationType string

		err = rows.Scan(
			&id,
			&response.Name,
			&stationType,
			&response.Capacity,
			&response.CurrentLoad,
			&response.Active,
		)
		if err != nil {
			return nil, err
		}

		stationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = stationID
		response.Type = station.Type(stationType)
		stations = append(stations, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stations, nil
}
