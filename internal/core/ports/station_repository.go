package ports

import (
	"context"

	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/core/domain/model/station"
)

// StationRepository defines the persistence contract for station
// aggregates. Every operation is tenant-scoped.
type StationRepository interface {
	// Add persists a new station.
	Add(ctx context.Context, aggregate *station.Station) error

	// Get retrieves a station by its unique identifier within the
	// tenant. Returns an ObjectNotFoundError kind when absent.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*station.Station, error)

	// GetAll retrieves every station of the tenant.
	GetAll(ctx context.Context, tenantID kernel.UUID) ([]*station.Station, error)

	// GetActive retrieves the tenant's active stations.
	GetActive(ctx context.Context, tenantID kernel.UUID) ([]*station.Station, error)

	// AdjustLoad atomically adds delta to the station's load counter.
	// The write is guarded so the stored load never exceeds capacity or
	// drops below zero; ok is false when the guard rejected the change
	// (no headroom, or a concurrent adjustment won the race).
	AdjustLoad(ctx context.Context, tenantID, id kernel.UUID, delta int) (ok bool, err error)

	// SetActive persists the station's active flag.
	SetActive(ctx context.Context, aggregate *station.Station) error
}
