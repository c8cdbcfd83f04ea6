package ports

import (
	"context"

	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Every operation is tenant-scoped: lookups and mutations only see rows
// of the given tenant.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier within
	// the tenant. Returns an ObjectNotFoundError kind when absent.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error)

	// UpdateStatus persists the order's current status and updated
	// timestamp. The aggregate has already validated the transition.
	UpdateStatus(ctx context.Context, aggregate *order.Order) error
}
