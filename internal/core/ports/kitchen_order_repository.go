package ports

import (
	"context"

	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/core/domain/model/kitchenorder"
)

// KitchenOrderRepository defines the persistence contract for kitchen
// order aggregates. Every operation is tenant-scoped.
type KitchenOrderRepository interface {
	// Add persists a new kitchen order with its items. A unique
	// constraint on the order reference backs the
	// one-kitchen-order-per-order rule.
	Add(ctx context.Context, aggregate *kitchenorder.KitchenOrder) error

	// Get retrieves a kitchen order with its items by its unique
	// identifier within the tenant. Returns an ObjectNotFoundError kind
	// when absent.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*kitchenorder.KitchenOrder, error)

	// GetByOrderID retrieves the kitchen order referencing an order, if
	// any. Returns an ObjectNotFoundError kind when the order has none.
	GetByOrderID(ctx context.Context, tenantID, orderID kernel.UUID) (*kitchenorder.KitchenOrder, error)

	// GetAllUnassigned retrieves the kitchen orders of any tenant still
	// waiting for a station, oldest first. Used by the assignment retry
	// job.
	GetAllUnassigned(ctx context.Context) ([]*kitchenorder.KitchenOrder, error)

	// UpdateStatus persists the kitchen order's status, station
	// assignment and completion timestamps.
	UpdateStatus(ctx context.Context, aggregate *kitchenorder.KitchenOrder) error

	// UpdateItemStatus persists a single item's status and timing marks.
	UpdateItemStatus(ctx context.Context, aggregate *kitchenorder.KitchenOrder, itemID kernel.UUID) error
}
