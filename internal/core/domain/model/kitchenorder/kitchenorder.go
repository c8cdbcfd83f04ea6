package kitchenorder

import (
	"errors"
	"time"

	"kitchenops/internal/core/domain/model/contract"
	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/pkg/errs"
)

// ErrKitchenOrderIsNotConstructed is returned when a KitchenOrder
// instance was not created through the NewKitchenOrder or
// RestoreKitchenOrder factory methods.
var ErrKitchenOrderIsNotConstructed = errors.New(
	"KitchenOrder must be created via NewKitchenOrder or RestoreKitchenOrder constructor")

// KitchenOrder is the work ticket a station sees. It is created from
// exactly one production contract and references both the contract and
// the original order.
//
// KitchenOrder follows these invariants:
//   - Must have valid unique, contract, order and tenant identifiers
//   - Must have at least one item
//   - Item statuses only move along the item state machine
//   - Reaches Ready only when every item is Completed
//   - Status is always reachable from Pending via the transition table
//   - Can only be created through NewKitchenOrder / RestoreKitchenOrder
//
// The struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type KitchenOrder struct {
	id                      kernel.UUID
	contractID              kernel.UUID
	orderID                 kernel.UUID
	tenantID                kernel.UUID
	items                   []Item
	priority                contract.Priority
	status                  Status
	stationID               *kernel.UUID
	estimatedCompletionTime time.Time
	actualCompletionTime    *time.Time
	createdAt               time.Time
	updatedAt               time.Time

	// isConstructed ensures the kitchen order was created via a constructor
	isConstructed bool
}

// NewKitchenOrder creates a new KitchenOrder in Pending status with
// validation. This is the only way to create a fresh kitchen order,
// ensuring all business invariants hold from the start.
func NewKitchenOrder(
	id kernel.UUID,
	contractID kernel.UUID,
	orderID kernel.UUID,
	tenantID kernel.UUID,
	items []Item,
	priority contract.Priority,
	estimatedCompletionTime time.Time,
) (*KitchenOrder, error) {
	now := time.Now().UTC()
	ko := &KitchenOrder{
		status:                  StatusPending,
		estimatedCompletionTime: estimatedCompletionTime,
		createdAt:               now,
		updatedAt:               now,
		isConstructed:           true,
	}

	if err := errors.Join(
		ko.setID(id),
		ko.setContractID(contractID),
		ko.setOrderID(orderID),
		ko.setTenantID(tenantID),
		ko.setItems(items),
		ko.setPriority(priority),
	); err != nil {
		return nil, err
	}

	return ko, nil
}

// RestoreKitchenOrder reconstructs a KitchenOrder from persistence,
// including its current status, station assignment and timestamps.
func RestoreKitchenOrder(
	id kernel.UUID,
	contractID kernel.UUID,
	orderID kernel.UUID,
	tenantID kernel.UUID,
	items []Item,
	priority contract.Priority,
	status Status,
	stationID *kernel.UUID,
	estimatedCompletionTime time.Time,
	actualCompletionTime *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*KitchenOrder, error) {
	ko, err := NewKitchenOrder(id, contractID, orderID, tenantID, items, priority, estimatedCompletionTime)
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

	ko.status = status
	ko.stationID = stationID
	ko.actualCompletionTime = actualCompletionTime
	ko.createdAt = createdAt
	ko.updatedAt = updatedAt
	return ko, nil
}

// Validate ensures the KitchenOrder was properly constructed.
func (ko *KitchenOrder) Validate() error {
	if ko == nil || !ko.isConstructed {
		return ErrKitchenOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two kitchen orders by their unique identifiers.
func (ko *KitchenOrder) IsEqual(other *KitchenOrder) bool {
	return other != nil && ko.id.IsEqual(other.id)
}

// ID returns the kitchen order's unique identifier.
func (ko *KitchenOrder) ID() kernel.UUID {
	return ko.id
}

// ContractID returns the originating production contract's identifier.
func (ko *KitchenOrder) ContractID() kernel.UUID {
	return ko.contractID
}

// OrderID returns the original customer order's identifier.
func (ko *KitchenOrder) OrderID() kernel.UUID {
	return ko.orderID
}

// TenantID returns the owning tenant's identifier.
func (ko *KitchenOrder) TenantID() kernel.UUID {
	return ko.tenantID
}

// Items returns a copy of the kitchen order items.
func (ko *KitchenOrder) Items() []Item {
	return append([]Item(nil), ko.items...)
}

// Priority returns the production urgency inherited from the contract.
func (ko *KitchenOrder) Priority() contract.Priority {
	return ko.priority
}

// Status returns the current kitchen-side status.
func (ko *KitchenOrder) Status() Status {
	return ko.status
}

// StationID returns the assigned station's identifier, or nil while the
// order is unassigned.
func (ko *KitchenOrder) StationID() *kernel.UUID {
	return ko.stationID
}

// EstimatedCompletionTime returns the expected production finish.
func (ko *KitchenOrder) EstimatedCompletionTime() time.Time {
	return ko.estimatedCompletionTime
}

// ActualCompletionTime returns when the order actually completed, or
// nil if it has not.
func (ko *KitchenOrder) ActualCompletionTime() *time.Time {
	return ko.actualCompletionTime
}

// CreatedAt returns when the kitchen order was created.
func (ko *KitchenOrder) CreatedAt() time.Time {
	return ko.createdAt
}

// UpdatedAt returns when the kitchen order was last mutated.
func (ko *KitchenOrder) UpdatedAt() time.Time {
	return ko.updatedAt
}

// AllItemsCompleted reports whether every item reached Completed.
func (ko *KitchenOrder) AllItemsCompleted() bool {
	for _, item := range ko.items {
		if item.Status() != ItemStatusCompleted {
			return false
		}
	}
	return true
}

// AssignStation binds the kitchen order to a station and moves it to
// Assigned. Reassignment of an already assigned order is legal; the
// previous station id is returned so the caller can release its load.
func (ko *KitchenOrder) AssignStation(stationID kernel.UUID) (previous *kernel.UUID, err error) {
	if err := ko.Validate(); err != nil {
		return nil, err
	}
	if err := stationID.Validate(); err != nil {
		return nil, err
	}
	if err := ko.status.ValidateTransition(StatusAssigned); err != nil {
		return nil, err
	}

	previous = ko.stationID
	ko.stationID = &stationID
	ko.status = StatusAssigned
	ko.updatedAt = time.Now().UTC()
	return previous, nil
}

// ChangeStatus moves the kitchen order to a new lifecycle status.
//
// The transition is validated against the kitchen order state machine.
// Ready additionally requires every item to be Completed; Completed
// stamps the actual completion time. Failed drops the station binding,
// so a retried order re-enters assignment with no stale station and the
// released load slot is never released twice. Station assignment must
// go through AssignStation.
func (ko *KitchenOrder) ChangeStatus(to Status) error {
	if err := ko.Validate(); err != nil {
		return err
	}
	if to == StatusAssigned {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("assignment requires a station, use AssignStation"))
	}
	if err := ko.status.ValidateTransition(to); err != nil {
		return err
	}
	if to == StatusReady && !ko.AllItemsCompleted() {
		return errs.NewInvalidTransitionErrorWithCause("kitchen order", ko.status.String(), to.String(),
			errors.New("not all items are completed"))
	}

	ko.status = to
	now := time.Now().UTC()
	if to == StatusCompleted {
		ko.actualCompletionTime = &now
	}
	if to == StatusFailed {
		ko.stationID = nil
	}
	ko.updatedAt = now
	return nil
}

// ChangeItemStatus moves a single item to a new preparation status,
// stamping the started/completed marks. The item is addressed by its
// id; an ObjectNotFoundError is returned when no item matches.
func (ko *KitchenOrder) ChangeItemStatus(itemID kernel.UUID, to ItemStatus) error {
	if err := ko.Validate(); err != nil {
		return err
	}

	for idx := range ko.items {
		if !ko.items[idx].id.IsEqual(itemID) {
			continue
		}

		if err := ko.items[idx].status.ValidateTransition(to); err != nil {
			return err
		}

		now := time.Now().UTC()
		ko.items[idx].status = to
		switch to {
		case ItemStatusPreparing:
			ko.items[idx].startedAt = &now
		case ItemStatusCompleted:
			ko.items[idx].completedAt = &now
		case ItemStatusPending:
			// retry after failure clears the old marks
			ko.items[idx].startedAt = nil
			ko.items[idx].completedAt = nil
		}
		ko.updatedAt = now
		return nil
	}

	return errs.NewObjectNotFoundError("itemID", itemID)
}

// setID validates and sets the kitchen order's unique identifier.
func (ko *KitchenOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	ko.id = id
	return nil
}

// setContractID validates and sets the contract reference.
func (ko *KitchenOrder) setContractID(contractID kernel.UUID) error {
	if err := contractID.Validate(); err != nil {
		return err
	}
	ko.contractID = contractID
	return nil
}

// setOrderID validates and sets the order reference.
func (ko *KitchenOrder) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	ko.orderID = orderID
	return nil
}

// setTenantID validates and sets the owning tenant.
func (ko *KitchenOrder) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	ko.tenantID = tenantID
	return nil
}

// setItems validates and sets the items. At least one is required.
func (ko *KitchenOrder) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	ko.items = append([]Item(nil), items...)
	return nil
}

// setPriority validates and sets the production urgency.
func (ko *KitchenOrder) setPriority(priority contract.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	ko.priority = priority
	return nil
}
