package station

import (
	"errors"
	"fmt"
	"time"

	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/pkg/errs"
)

// ErrStationIsNotConstructed is returned when a Station instance was not
// created through the NewStation or RestoreStation factory methods.
var ErrStationIsNotConstructed = errors.New(
	"Station must be created via NewStation or RestoreStation constructor")

// Station is a physical work area in a kitchen with a bounded number of
// concurrent kitchen orders. The in-memory load counter is advisory;
// the persistence layer enforces the capacity bound atomically, so the
// stored load can never exceed capacity or go below zero regardless of
// concurrent assignment.
//
// Station follows these invariants:
//   - Must have valid unique and tenant identifiers
//   - Capacity is positive
//   - 0 ≤ currentLoad ≤ capacity
//   - Can only be created through NewStation / RestoreStation
type Station struct {
	id          kernel.UUID
	tenantID    kernel.UUID
	name        string
	stationType Type
	capacity    int
	currentLoad int
	active      bool
	createdAt   time.Time
	updatedAt   time.Time

	// isConstructed ensures the station was created via a constructor
	isConstructed bool
}

// NewStation creates a new active Station with zero load.
func NewStation(
	id kernel.UUID,
	tenantID kernel.UUID,
	name string,
	stationType Type,
	capacity int,
) (*Station, error) {
	now := time.Now().UTC()
	s := &Station{
		active:        true,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTenantID(tenantID),
		s.setName(name),
		s.setType(stationType),
		s.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStation reconstructs a Station from persistence, including its
// current load and active flag.
func RestoreStation(
	id kernel.UUID,
	tenantID kernel.UUID,
	name string,
	stationType Type,
	capacity int,
	currentLoad int,
	active bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*Station, error) {
	s, err := NewStation(id, tenantID, name, stationType, capacity)
	if err != nil {
		return nil, err
	}

	if currentLoad < 0 || currentLoad > capacity {
		return nil, errs.NewValueIsOutOfRangeError("currentLoad", currentLoad, 0, capacity)
	}

	s.currentLoad = currentLoad
	s.active = active
	s.createdAt = createdAt
	s.updatedAt = updatedAt
	return s, nil
}

// Validate ensures the Station was properly constructed.
func (s *Station) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStationIsNotConstructed
	}
	return nil
}

// IsEqual compares two stations by their unique identifiers.
func (s *Station) IsEqual(other *Station) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the station's unique identifier.
func (s *Station) ID() kernel.UUID {
	return s.id
}

// TenantID returns the owning tenant's identifier.
func (s *Station) TenantID() kernel.UUID {
	return s.tenantID
}

// Name returns the station display name.
func (s *Station) Name() string {
	return s.name
}

// Type returns the kind of work the station performs.
func (s *Station) Type() Type {
	return s.stationType
}

// Capacity returns the maximum concurrent kitchen orders.
func (s *Station) Capacity() int {
	return s.capacity
}

// CurrentLoad returns the number of kitchen orders currently assigned.
func (s *Station) CurrentLoad() int {
	return s.currentLoad
}

// IsActive reports whether the station accepts new assignments.
func (s *Station) IsActive() bool {
	return s.active
}

// CreatedAt returns when the station was registered.
func (s *Station) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns when the station was last modified.
func (s *Station) UpdatedAt() time.Time {
	return s.updatedAt
}

// HasHeadroom reports whether the station is active and can take one
// more kitchen order.
func (s *Station) HasHeadroom() bool {
	return s.active && s.currentLoad < s.capacity
}

// Activate makes the station available for assignment.
func (s *Station) Activate() error {
	if err := s.Validate(); err != nil {
		return err
	}
	s.active = true
	s.updatedAt = time.Now().UTC()
	return nil
}

// Deactivate removes the station from the assignment pool. Orders
// already assigned keep running.
func (s *Station) Deactivate() error {
	if err := s.Validate(); err != nil {
		return err
	}
	s.active = false
	s.updatedAt = time.Now().UTC()
	return nil
}

// setID validates and sets the station's unique identifier.
func (s *Station) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

// setTenantID validates and sets the owning tenant.
func (s *Station) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	s.tenantID = tenantID
	return nil
}

// setName validates and sets the display name.
func (s *Station) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

// setType validates and sets the station type.
func (s *Station) setType(stationType Type) error {
	if err := stationType.Validate(); err != nil {
		return err
	}
	s.stationType = stationType
	return nil
}

// setCapacity validates and sets the concurrent order bound.
func (s *Station) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity",
			fmt.Errorf("%d is not greater than 0", capacity))
	}
	s.capacity = capacity
	return nil
}
