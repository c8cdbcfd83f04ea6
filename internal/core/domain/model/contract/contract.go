package contract

import (
	"errors"
	"time"

	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/pkg/errs"
)

// ErrProductionContractIsNotConstructed is returned when a
// ProductionContract instance was not created through the
// NewProductionContract or RestoreProductionContract factory methods.
var ErrProductionContractIsNotConstructed = errors.New(
	"ProductionContract must be created via NewProductionContract or RestoreProductionContract constructor")

// ProductionContract is the kitchen-facing work agreement derived from a
// confirmed order. It is the aggregate root that carries what must be
// produced, how urgent it is, and when production is expected to finish.
// Exactly one contract exists per order.
//
// ProductionContract follows these invariants:
//   - Must have valid unique, order and tenant identifiers
//   - Must have at least one production item
//   - TotalEstimatedMinutes always equals the sum over items of
//     quantity × per-unit estimate
//   - Status is always reachable from Pending via the transition table
//   - Version is monotonically increasing: every mutation bumps it
//   - Can only be created through NewProductionContract /
//     RestoreProductionContract
//
// The struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type ProductionContract struct {
	id                      kernel.UUID
	orderID                 kernel.UUID
	tenantID                kernel.UUID
	items                   []ProductionItem
	priority                Priority
	status                  Status
	stationID               *kernel.UUID
	specialInstructions     string
	allergenAlerts          []string
	estimatedCompletionTime time.Time
	version                 int64
	createdAt               time.Time
	updatedAt               time.Time

	// isConstructed ensures the contract was created via a constructor
	isConstructed bool
}

// NewProductionContract creates a new ProductionContract in Pending
// status with validation. This is the only way to create a fresh
// contract, ensuring all business invariants hold from the start.
//
// Parameters:
//   - id, orderID, tenantID: constructed UUIDs
//   - items: at least one validated production item
//   - priority: computed or manually assigned urgency
//   - specialInstructions, allergenAlerts: aggregated by the factory
//   - estimatedCompletionTime: expected production finish
func NewProductionContract(
	id kernel.UUID,
	orderID kernel.UUID,
	tenantID kernel.UUID,
	items []ProductionItem,
	priority Priority,
	specialInstructions string,
	allergenAlerts []string,
	estimatedCompletionTime time.Time,
) (*ProductionContract, error) {
	now := time.Now().UTC()
	c := &ProductionContract{
		specialInstructions:     specialInstructions,
		allergenAlerts:          append([]string(nil), allergenAlerts...),
		status:                  StatusPending,
		estimatedCompletionTime: estimatedCompletionTime,
		version:                 1,
		createdAt:               now,
		updatedAt:               now,
		isConstructed:           true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setOrderID(orderID),
		c.setTenantID(tenantID),
		c.setItems(items),
		c.setPriority(priority),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreProductionContract reconstructs a ProductionContract from
// persistence, including its current status, station assignment, version
// and timestamps.
func RestoreProductionContract(
	id kernel.UUID,
	orderID kernel.UUID,
	tenantID kernel.UUID,
	items []ProductionItem,
	priority Priority,
	status Status,
	stationID *kernel.UUID,
	specialInstructions string,
	allergenAlerts []string,
	estimatedCompletionTime time.Time,
	version int64,
	createdAt time.Time,
	updatedAt time.Time,
) (*ProductionContract, error) {
	c, err := NewProductionContract(id, orderID, tenantID, items, priority,
		specialInstructions, allergenAlerts, estimatedCompletionTime)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if stationID != nil {
		if err := stationID.Validate(); err != nil {
			return nil, err
		}
	}
	if version <= 0 {
		return nil, errs.NewVersionIsInvalidError("version")
	}

	c.status = status
	c.stationID = stationID
	c.version = version
	c.createdAt = createdAt
	c.updatedAt = updatedAt
	return c, nil
}

// Validate ensures the ProductionContract was properly constructed.
func (c *ProductionContract) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrProductionContractIsNotConstructed
	}
	return nil
}

// IsEqual compares two contracts by their unique identifiers.
func (c *ProductionContract) IsEqual(other *ProductionContract) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the contract's unique identifier.
func (c *ProductionContract) ID() kernel.UUID {
	return c.id
}

// OrderID returns the originating order's identifier.
func (c *ProductionContract) OrderID() kernel.UUID {
	return c.orderID
}

// TenantID returns the owning tenant's identifier.
func (c *ProductionContract) TenantID() kernel.UUID {
	return c.tenantID
}

// Items returns a copy of the production items.
func (c *ProductionContract) Items() []ProductionItem {
	return append([]ProductionItem(nil), c.items...)
}

// Priority returns the production urgency.
func (c *ProductionContract) Priority() Priority {
	return c.priority
}

// Status returns the current lifecycle status of the contract.
func (c *ProductionContract) Status() Status {
	return c.status
}

// StationID returns the assigned station's identifier, or nil while the
// contract is unassigned.
func (c *ProductionContract) StationID() *kernel.UUID {
	return c.stationID
}

// SpecialInstructions returns the aggregated special instructions for
// the whole contract.
func (c *ProductionContract) SpecialInstructions() string {
	return c.specialInstructions
}

// AllergenAlerts returns the deduplicated allergens aggregated over all
// items.
func (c *ProductionContract) AllergenAlerts() []string {
	return append([]string(nil), c.allergenAlerts...)
}

// EstimatedCompletionTime returns the expected production finish.
func (c *ProductionContract) EstimatedCompletionTime() time.Time {
	return c.estimatedCompletionTime
}

// Version returns the mutation counter used for optimistic checks.
func (c *ProductionContract) Version() int64 {
	return c.version
}

// CreatedAt returns when the contract was created.
func (c *ProductionContract) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns when the contract was last mutated.
func (c *ProductionContract) UpdatedAt() time.Time {
	return c.updatedAt
}

// TotalEstimatedMinutes returns the sum over items of quantity × per-unit
// estimate. It is computed, never stored, so it cannot drift from the
// item list.
func (c *ProductionContract) TotalEstimatedMinutes() int {
	var total int
	for _, item := range c.items {
		total += item.TotalMinutes()
	}
	return total
}

// Assign binds the contract to a station and moves it to Assigned.
// The transition is validated against the contract state machine.
func (c *ProductionContract) Assign(stationID kernel.UUID) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := stationID.Validate(); err != nil {
		return err
	}
	if err := c.status.ValidateTransition(StatusAssigned); err != nil {
		return err
	}

	c.stationID = &stationID
	c.status = StatusAssigned
	c.touch()
	return nil
}

// ChangeStatus moves the contract to a new lifecycle status.
//
// The transition is validated against the contract state machine; an
// InvalidTransitionError is returned (and nothing mutated) when the
// lifecycle table does not permit the move. Station assignment must go
// through Assign so a contract never becomes Assigned without a station.
func (c *ProductionContract) ChangeStatus(to Status) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if to == StatusAssigned {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("assignment requires a station, use Assign"))
	}
	if err := c.status.ValidateTransition(to); err != nil {
		return err
	}

	c.status = to
	c.touch()
	return nil
}

// touch bumps the version and updatedAt together on every mutation.
func (c *ProductionContract) touch() {
	c.version++
	c.updatedAt = time.Now().UTC()
}

// setID validates and sets the contract's unique identifier.
func (c *ProductionContract) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// setOrderID validates and sets the originating order reference.
func (c *ProductionContract) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

// setTenantID validates and sets the owning tenant.
func (c *ProductionContract) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	c.tenantID = tenantID
	return nil
}

// setItems validates and sets the production items. At least one is required.
func (c *ProductionContract) setItems(items []ProductionItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.items = append([]ProductionItem(nil), items...)
	return nil
}

// setPriority validates and sets the production urgency.
func (c *ProductionContract) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}
