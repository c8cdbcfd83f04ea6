package services

import (
	"kitchenops/internal/core/domain/model/kitchenorder"
	"kitchenops/internal/core/domain/model/order"
)

// StatusMapper translates between kitchen order statuses and customer
// order statuses. Both directions are partial: most statuses have no
// counterpart, and the mapper reports that with the ok flag so callers
// skip the sync instead of guessing.
//
// The two tables are intentionally asymmetric. Kitchen progress only
// surfaces to the customer at preparing and ready; assignment shuffling,
// completion and failures are kitchen-internal. In the other direction,
// only confirmed, preparing and ready have kitchen-side meaning.
type StatusMapper struct{}

// NewStatusMapper creates a new StatusMapper instance.
func NewStatusMapper() StatusMapper {
	return StatusMapper{}
}

// kitchenToOrder maps kitchen order statuses to the customer order
// status they surface as.
var kitchenToOrder = map[kitchenorder.Status]order.Status{
	kitchenorder.StatusPreparing: order.Preparing,
	kitchenorder.StatusReady:     order.Ready,
}

// orderToKitchen maps customer order statuses to their kitchen-side
// counterpart.
var orderToKitchen = map[order.Status]kitchenorder.Status{
	order.Confirmed: kitchenorder.StatusPending,
	order.Preparing: kitchenorder.StatusPreparing,
	order.Ready:     kitchenorder.StatusReady,
}

// ToOrderStatus returns the customer order status a kitchen status maps
// to. ok is false when the kitchen status has no customer-facing
// counterpart.
func (m StatusMapper) ToOrderStatus(s kitchenorder.Status) (order.Status, bool) {
	mapped, ok := kitchenToOrder[s]
	return mapped, ok
}

// ToKitchenStatus returns the kitchen order status a customer order
// status maps to. ok is false when the order status has no kitchen-side
// counterpart.
func (m StatusMapper) ToKitchenStatus(s order.Status) (kitchenorder.Status, bool) {
	mapped, ok := orderToKitchen[s]
	return mapped, ok
}
