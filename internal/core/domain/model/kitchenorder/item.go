package kitchenorder

import (
	"fmt"
	"time"

	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/pkg/errs"
)

// ItemStatus represents the preparation state of a single kitchen order
// item. Items move pending → preparing → completed, with failed as an
// escape from preparing and pending as the retry target of failed.
type ItemStatus int

const (
	// ItemStatusUnknown represents an invalid or undefined item status.
	ItemStatusUnknown ItemStatus = iota

	// ItemStatusPending indicates the item has not been started.
	ItemStatusPending

	// ItemStatusPreparing indicates the item is being cooked.
	ItemStatusPreparing

	// ItemStatusCompleted indicates the item is finished.
	// This is a terminal state with no further transitions allowed.
	ItemStatusCompleted

	// ItemStatusFailed indicates the item preparation failed; it goes
	// back to Pending for a retry.
	ItemStatusFailed
)

// getItemStatusStrings returns a map of ItemStatus values to their
// string representations.
func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemStatusUnknown:   "unknown",
		ItemStatusPending:   "pending",
		ItemStatusPreparing: "preparing",
		ItemStatusCompleted: "completed",
		ItemStatusFailed:    "failed",
	}
}

// itemTransitions is the per-item lifecycle table.
var itemTransitions = map[ItemStatus]map[ItemStatus]struct{}{
	ItemStatusPending:   {ItemStatusPreparing: {}},
	ItemStatusPreparing: {ItemStatusCompleted: {}, ItemStatusFailed: {}},
	ItemStatusCompleted: {},
	ItemStatusFailed:    {ItemStatusPending: {}},
}

// ItemStatusFromString parses an item status from its string representation.
func ItemStatusFromString(s string) (ItemStatus, error) {
	for status, str := range getItemStatusStrings() {
		if str == s && status != ItemStatusUnknown {
			return status, nil
		}
	}
	return ItemStatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid kitchen order item status", s))
}

// Validate checks if the ItemStatus value is valid.
func (s ItemStatus) Validate() error {
	if _, ok := itemTransitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid item status", s))
	}
	return nil
}

// String returns the human-readable name of the item status.
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsValidTransition reports whether the item status may move to the target.
func (s ItemStatus) IsValidTransition(to ItemStatus) bool {
	targets, ok := itemTransitions[s]
	if !ok {
		return false
	}
	_, ok = targets[to]
	return ok
}

// ValidateTransition checks that the item status may move to the target,
// failing with an InvalidTransitionError otherwise.
func (s ItemStatus) ValidateTransition(to ItemStatus) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}
	if !s.IsValidTransition(to) {
		return errs.NewInvalidTransitionError("kitchen order item", s.String(), to.String())
	}
	return nil
}

// Item is one product to prepare inside a kitchen order. It mirrors a
// production item (same id, product, quantity and modifications) and
// adds its own preparation status and timing marks. Items are entities
// owned by the KitchenOrder aggregate and are only mutated through it.
type Item struct {
	id               kernel.UUID
	productID        kernel.UUID
	name             string
	quantity         int
	modifications    []string
	estimatedMinutes int
	status           ItemStatus
	startedAt        *time.Time
	completedAt      *time.Time
}

// NewItem creates a validated kitchen order item in Pending status. The
// id is the production item id the kitchen item mirrors.
func NewItem(id, productID kernel.UUID, name string, quantity int,
	modifications []string, estimatedMinutes int) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("name")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if estimatedMinutes <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("estimatedMinutes",
			fmt.Errorf("%d is not greater than 0", estimatedMinutes))
	}

	return Item{
		id:               id,
		productID:        productID,
		name:             name,
		quantity:         quantity,
		modifications:    append([]string(nil), modifications...),
		estimatedMinutes: estimatedMinutes,
		status:           ItemStatusPending,
	}, nil
}

// RestoreItem reconstructs an item from persistence with its status and
// timing marks.
func RestoreItem(id, productID kernel.UUID, name string, quantity int,
	modifications []string, estimatedMinutes int,
	status ItemStatus, startedAt, completedAt *time.Time) (Item, error) {
	item, err := NewItem(id, productID, name, quantity, modifications, estimatedMinutes)
	if err != nil {
		return Item{}, err
	}
	if err := status.Validate(); err != nil {
		return Item{}, err
	}

	item.status = status
	item.startedAt = startedAt
	item.completedAt = completedAt
	return item, nil
}

// ID returns the item's identifier, shared with the production item it
// mirrors.
func (i Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the prepared product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product display name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns how many units must be prepared.
func (i Item) Quantity() int {
	return i.quantity
}

// Modifications returns the customer's modifications for this item.
func (i Item) Modifications() []string {
	return append([]string(nil), i.modifications...)
}

// EstimatedMinutes returns the per-unit preparation estimate.
func (i Item) EstimatedMinutes() int {
	return i.estimatedMinutes
}

// Status returns the item's preparation status.
func (i Item) Status() ItemStatus {
	return i.status
}

// StartedAt returns when preparation began, or nil if it has not.
func (i Item) StartedAt() *time.Time {
	return i.startedAt
}

// CompletedAt returns when preparation finished, or nil if it has not.
func (i Item) CompletedAt() *time.Time {
	return i.completedAt
}
