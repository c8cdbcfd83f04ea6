package events

import (
	"time"

	"kitchenops/internal/core/domain/model/kernel"
)

// Event is a write-once record of a domain fact. Events are published
// after the producing transaction commits and are never mutated or
// replayed.
type Event interface {
	// EventType returns the stable wire tag of the event.
	EventType() string

	// EventTenantID returns the tenant the event belongs to.
	EventTenantID() kernel.UUID

	// EventOccurredAt returns when the fact happened.
	EventOccurredAt() time.Time
}

// Header carries the fields shared by every domain event.
type Header struct {
	TenantID   kernel.UUID
	OccurredAt time.Time
}

// NewHeader stamps a header for the given tenant at the current time.
func NewHeader(tenantID kernel.UUID) Header {
	return Header{TenantID: tenantID, OccurredAt: time.Now().UTC()}
}

// EventTenantID returns the tenant the event belongs to.
func (h Header) EventTenantID() kernel.UUID {
	return h.TenantID
}

// EventOccurredAt returns when the fact happened.
func (h Header) EventOccurredAt() time.Time {
	return h.OccurredAt
}

// OrderConfirmed is published when an order passes confirmation and
// production is triggered.
type OrderConfirmed struct {
	Header
	OrderID     kernel.UUID
	CustomerID  kernel.UUID
	Number      int64
	ConfirmedAt time.Time
}

func (OrderConfirmed) EventType() string { return "order.confirmed" }

// ProductionContractCreated is published when the factory generates the
// contract for a confirmed order.
type ProductionContractCreated struct {
	Header
	ContractID              kernel.UUID
	OrderID                 kernel.UUID
	Priority                string
	EstimatedCompletionTime time.Time
	ItemCount               int
}

func (ProductionContractCreated) EventType() string { return "production_contract.created" }

// KitchenOrderCreated is published when a kitchen order is built from a
// production contract.
type KitchenOrderCreated struct {
	Header
	KitchenOrderID          kernel.UUID
	OrderID                 kernel.UUID
	ContractID              kernel.UUID
	Priority                string
	EstimatedCompletionTime time.Time
}

func (KitchenOrderCreated) EventType() string { return "kitchen_order.created" }

// KitchenOrderStatusChanged is published on every kitchen order status
// move, including station assignment. AssignedStation and
// EstimatedCompletionTime are nil when unchanged or unknown.
type KitchenOrderStatusChanged struct {
	Header
	KitchenOrderID          kernel.UUID
	OrderID                 kernel.UUID
	PreviousStatus          string
	NewStatus               string
	AssignedStation         *kernel.UUID
	EstimatedCompletionTime *time.Time
}

func (KitchenOrderStatusChanged) EventType() string { return "kitchen_order.status_changed" }

// IngredientConsumed is published once per item when a kitchen order
// completes. Ingredient deduction is the inventory collaborator's
// responsibility, triggered by this event.
type IngredientConsumed struct {
	Header
	OrderID    kernel.UUID
	ProductID  kernel.UUID
	Quantity   int
	ConsumedAt time.Time
}

func (IngredientConsumed) EventType() string { return "ingredient.consumed" }
