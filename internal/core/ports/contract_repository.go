package ports

import (
	"context"

	"kitchenops/internal/core/domain/model/contract"
	"kitchenops/internal/core/domain/model/kernel"
)

// ContractRepository defines the persistence contract for production
// contract aggregates. Every operation is tenant-scoped.
type ContractRepository interface {
	// Add persists a new contract. A unique constraint on the order
	// reference backs the one-contract-per-order rule.
	Add(ctx context.Context, aggregate *contract.ProductionContract) error

	// Get retrieves a contract by its unique identifier within the
	// tenant. Returns an ObjectNotFoundError kind when absent.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*contract.ProductionContract, error)

	// GetByOrderID retrieves the contract created for an order, if any.
	// Returns an ObjectNotFoundError kind when the order has none yet.
	GetByOrderID(ctx context.Context, tenantID, orderID kernel.UUID) (*contract.ProductionContract, error)

	// Update persists the contract's status, station assignment and
	// version. The stored version must match the aggregate's previous
	// version; a mismatch surfaces as a VersionIsInvalidError kind.
	Update(ctx context.Context, aggregate *contract.ProductionContract) error
}
