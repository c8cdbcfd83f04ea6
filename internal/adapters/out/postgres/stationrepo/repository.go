package stationrepo

import (
	"context"
	"errors"
	"time"

	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/core/domain/model/station"
	"kitchenops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStationRepository implements StationRepository using GORM.
type GormStationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStationRepository creates a new GORM station repository.
func NewGormStationRepository(db *gorm.DB, tracker aggregateTracker) *GormStationRepository {
	return &GormStationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new station to the database.
func (r *GormStationRepository) Add(ctx context.Context, aggregate *station.Station) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a station by tenant and ID.
func (r *GormStationRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*station.Station, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StationDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("station", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all stations of a tenant sorted by name.
func (r *GormStationRepository) GetAll(ctx context.Context, tenantID kernel.UUID) ([]*station.Station, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StationDTO
	err := r.db.WithContext(ctx).
		Order("name").
		Find(&dtos, "tenant_id = ?", tenantID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetActive retrieves the tenant's active stations sorted by name.
// These are the assignment candidates the dispatcher chooses from.
func (r *GormStationRepository) GetActive(ctx context.Context, tenantID kernel.UUID) ([]*station.Station, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StationDTO
	err := r.db.WithContext(ctx).
		Order("name").
		Find(&dtos, "tenant_id = ? AND active = ?", tenantID.Bytes(), true).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// AdjustLoad changes the station's load counter by delta with a single
// guarded update. The write only succeeds while the result stays within
// 0..capacity, which makes concurrent assignments race-safe: the loser
// sees ok=false and leaves its kitchen order unassigned.
func (r *GormStationRepository) AdjustLoad(ctx context.Context, tenantID, id kernel.UUID, delta int) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Model(&StationDTO{}).
		Where("id = ? AND tenant_id = ? AND current_load + ? >= 0 AND current_load + ? <= capacity",
			id.Bytes(), tenantID.Bytes(), delta, delta).
		Updates(map[string]any{
			"current_load": gorm.Expr("current_load + ?", delta),
			"updated_at":   time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// SetActive persists the station's activation flag.
func (r *GormStationRepository) SetActive(ctx context.Context, aggregate *station.Station) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&StationDTO{}).
		Where("id = ? AND tenant_id = ?", aggregate.ID().Bytes(), aggregate.TenantID().Bytes()).
		Updates(map[string]any{
			"active":     aggregate.IsActive(),
			"updated_at": aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("station", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// toDomainSlice converts station DTOs to domain aggregates.
func toDomainSlice(dtos []StationDTO) ([]*station.Station, error) {
	stations := make([]*station.Station, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		stations = append(stations, s)
	}
	return stations, nil
}
