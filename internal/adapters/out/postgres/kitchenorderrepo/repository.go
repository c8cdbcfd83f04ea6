package kitchenorderrepo

import (
	"context"
	"errors"

	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/core/domain/model/kitchenorder"
	"kitchenops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormKitchenOrderRepository implements KitchenOrderRepository using GORM.
type GormKitchenOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormKitchenOrderRepository creates a new GORM kitchen order repository.
func NewGormKitchenOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormKitchenOrderRepository {
	return &GormKitchenOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new kitchen order to the database.
func (r *GormKitchenOrderRepository) Add(ctx context.Context, aggregate *kitchenorder.KitchenOrder) error {
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

// Get retrieves a kitchen order by tenant and ID.
func (r *GormKitchenOrderRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*kitchenorder.KitchenOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto KitchenOrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("kitchenOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the kitchen order created for a customer order.
func (r *GormKitchenOrderRepository) GetByOrderID(ctx context.Context, tenantID, orderID kernel.UUID) (*kitchenorder.KitchenOrder, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto KitchenOrderDTO
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

// GetAllUnassigned retrieves pending kitchen orders without a station,
// across all tenants. The retry job feeds these back into assignment.
func (r *GormKitchenOrderRepository) GetAllUnassigned(ctx context.Context) ([]*kitchenorder.KitchenOrder, error) {
	var dtos []KitchenOrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Find(&dtos, "status = ? AND station_id IS NULL", kitchenorder.StatusPending.String()).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*kitchenorder.KitchenOrder, 0, len(dtos))
	for _, dto := range dtos {
		ko, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		orders = append(orders, ko)
	}

	return orders, nil
}

// UpdateStatus persists the kitchen order's lifecycle columns. Items are
// written through UpdateItemStatus, so only the order row is touched.
func (r *GormKitchenOrderRepository) UpdateStatus(ctx context.Context, aggregate *kitchenorder.KitchenOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&KitchenOrderDTO{}).
		Where("id = ? AND tenant_id = ?", dto.ID, dto.TenantID).
		Updates(map[string]any{
			"status":                 dto.Status,
			"station_id":             dto.StationID,
			"actual_completion_time": dto.ActualCompletionTime,
			"updated_at":             dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("kitchenOrder", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateItemStatus persists one item's status and timing marks.
func (r *GormKitchenOrderRepository) UpdateItemStatus(ctx context.Context, aggregate *kitchenorder.KitchenOrder, itemID kernel.UUID) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var target *kitchenorder.Item
	for _, item := range aggregate.Items() {
		if item.ID().IsEqual(itemID) {
			found := item
			target = &found
			break
		}
	}
	if target == nil {
		return errs.NewObjectNotFoundError("itemID", itemID.String())
	}

	result := r.db.WithContext(ctx).Model(&ItemDTO{}).
		Where("id = ? AND kitchen_order_id = ?", itemID.Bytes(), aggregate.ID().Bytes()).
		Updates(map[string]any{
			"status":       target.Status().String(),
			"started_at":   target.StartedAt(),
			"completed_at": target.CompletedAt(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("itemID", itemID.String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
