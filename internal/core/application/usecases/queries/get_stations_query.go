// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/core/domain/model/station"
	"kitchenops/internal/pkg/guard"
)

var ErrGetStationsQueryIsNotConstructed = errors.New(
	"GetStationsQuery must be created via NewGetStationsQuery constructor",
)

// GetStationsQuery retrieves all kitchen stations of a tenant.
// Returns station identities, capacity, and current load for monitoring
// and manual assignment decisions.
//
// Example:
//
//	query, err := NewGetStationsQuery(tenantID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetStationsQueryHandler(db)
//
//	stations, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve stations: %w", err)
//	}
//
//	for _, s := range stations {
//	    fmt.Printf("Station %s (%s): %d/%d\n", s.Name, s.Type, s.CurrentLoad, s.Capacity)
//	}
type GetStationsQuery struct {
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStationsQuery creates a query to retrieve a tenant's stations.
func NewGetStationsQuery(tenantID kernel.UUID) (GetStationsQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return GetStationsQuery{}, err
	}

	return GetStationsQuery{
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStationsQueryIsNotConstructed if validation fails.
func (q GetStationsQuery) Validate() error {
	return q.guard.Validate(ErrGetStationsQueryIsNotConstructed)
}

// TenantID returns the tenant whose stations are requested.
func (q GetStationsQuery) TenantID() kernel.UUID {
	return q.tenantID
}

// GetStationsQueryResponse represents station information in the read model.
// Contains capacity and load data for display and dispatching decisions.
type GetStationsQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Type        station.Type
	Capacity    int
	CurrentLoad int
	Active      bool
}
