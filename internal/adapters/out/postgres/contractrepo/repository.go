package contractrepo

import (
	"context"
	"errors"
	"fmt"

	"kitchenops/internal/core/domain/model/contract"
	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormContractRepository implements ContractRepository using GORM.
type GormContractRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormContractRepository creates a new GORM contract repository.
func NewGormContractRepository(db *gorm.DB, tracker aggregateTracker) *GormContractRepository {
	return &GormContractRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new production contract to the database.
func (r *GormContractRepository) Add(ctx context.Context, aggregate *contract.ProductionContract) error {
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

// Get retrieves a production contract by tenant and ID.
func (r *GormContractRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*contract.ProductionContract, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ContractDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("contract", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the production contract generated for an order.
func (r *GormContractRepository) GetByOrderID(ctx context.Context, tenantID, orderID kernel.UUID) (*contract.ProductionContract, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto ContractDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&dto, "order_id = ? AND tenant_id = ?", orderID.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update persists contract changes with an optimistic concurrency check.
// The aggregate bumps its version on every mutation, so the write only
// matches when the database still holds the previous version. A stale
// aggregate fails with the version-is-invalid error kind.
func (r *GormContractRepository) Update(ctx context.Context, aggregate *contract.ProductionContract) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Items = nil
	result := r.db.WithContext(ctx).Model(&ContractDTO{}).
		Where("id = ? AND tenant_id = ? AND version = ?",
			dto.ID, dto.TenantID, aggregate.Version()-1).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause("version",
			fmt.Errorf("contract %s was modified concurrently or does not exist", aggregate.ID()))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
