package queries

import (
	"errors"
	"time"

	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/pkg/guard"
)

var ErrGetActiveKitchenOrdersQueryIsNotConstructed = errors.New(
	"GetActiveKitchenOrdersQuery must be created via NewGetActiveKitchenOrdersQuery constructor",
)

// GetActiveKitchenOrdersQuery retrieves a tenant's kitchen orders that
// are still in flight. Completed and failed orders are excluded to
// provide active production workload visibility for display boards.
type GetActiveKitchenOrdersQuery struct {
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveKitchenOrdersQuery creates a query to retrieve a tenant's
// in-flight kitchen orders.
func NewGetActiveKitchenOrdersQuery(tenantID kernel.UUID) (GetActiveKitchenOrdersQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return GetActiveKitchenOrdersQuery{}, err
	}

	return GetActiveKitchenOrdersQuery{
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveKitchenOrdersQueryIsNotConstructed if validation fails.
func (q GetActiveKitchenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveKitchenOrdersQueryIsNotConstructed)
}

// TenantID returns the tenant whose kitchen orders are requested.
func (q GetActiveKitchenOrdersQuery) TenantID() kernel.UUID {
	return q.tenantID
}

// GetActiveKitchenOrdersQueryResponse represents an in-flight kitchen
// order in the read model. StationID is nil while the order is
// unassigned.
type GetActiveKitchenOrdersQueryResponse struct {
	ID                      kernel.UUID
	OrderID                 kernel.UUID
	ContractID              kernel.UUID
	Priority                string
	Status                  string
	StationID               *kernel.UUID
	EstimatedCompletionTime time.Time
	ItemCount               int
}
