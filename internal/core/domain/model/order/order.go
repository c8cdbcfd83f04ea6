package order

import (
	"errors"
	"fmt"
	"time"

	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through the NewOrder or RestoreOrder factory methods. This
// ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// PaymentSummary captures how the order is (to be) paid. Amounts are
// integer cents and must not be negative.
type PaymentSummary struct {
	Method     string
	Paid       bool
	AmountCent int64
}

// DeliverySummary captures how the prepared order leaves the restaurant.
// Fee is integer cents and must not be negative.
type DeliverySummary struct {
	Mode    string
	Address string
	FeeCent int64
}

// Order represents a customer order in the system. It is the aggregate
// root that manages the order lifecycle from draft through confirmation,
// preparation and delivery. Orders are tenant-scoped: every repository
// lookup and mutation carries the tenant id.
//
// Order follows these invariants:
//   - Must have valid unique and tenant identifiers
//   - Must have at least one line item
//   - Computed totals are never negative
//   - Status is always reachable from Draft via the transition table
//   - Can only be created through NewOrder / RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	id          kernel.UUID
	tenantID    kernel.UUID
	number      int64
	customerID  kernel.UUID
	items       []LineItem
	status      Status
	statusNotes string
	channel     Channel
	payment     PaymentSummary
	delivery    DeliverySummary
	createdAt   time.Time
	updatedAt   time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Draft status with validation. This is
// the only way to create a fresh order, ensuring all business invariants
// hold from the start.
//
// Parameters:
//   - id, tenantID, customerID: constructed UUIDs
//   - number: sequential display number (positive)
//   - channel: origin platform
//   - items: at least one validated line item
//   - payment, delivery: summaries with non-negative amounts
func NewOrder(
	id kernel.UUID,
	tenantID kernel.UUID,
	number int64,
	customerID kernel.UUID,
	channel Channel,
	items []LineItem,
	payment PaymentSummary,
	delivery DeliverySummary,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Draft,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTenantID(tenantID),
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setChannel(channel),
		o.setItems(items),
		o.setPayment(payment),
		o.setDelivery(delivery),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its
// current status and timestamps. The status must be a valid member of
// the lifecycle table; reachability was enforced when it was written.
func RestoreOrder(
	id kernel.UUID,
	tenantID kernel.UUID,
	number int64,
	customerID kernel.UUID,
	channel Channel,
	items []LineItem,
	payment PaymentSummary,
	delivery DeliverySummary,
	status Status,
	statusNotes string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, tenantID, number, customerID, channel, items, payment, delivery)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.statusNotes = statusNotes
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Call when reconstructing orders from persistence to ensure integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TenantID returns the owning tenant's identifier.
func (o *Order) TenantID() kernel.UUID {
	return o.tenantID
}

// Number returns the sequential display number shown to staff and customers.
func (o *Order) Number() int64 {
	return o.number
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns a copy of the ordered line items.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// StatusNotes returns the note recorded with the latest status change,
// empty when the change carried none.
func (o *Order) StatusNotes() string {
	return o.statusNotes
}

// Channel returns the origin platform of the order.
func (o *Order) Channel() Channel {
	return o.channel
}

// Payment returns the payment summary.
func (o *Order) Payment() PaymentSummary {
	return o.payment
}

// Delivery returns the delivery summary.
func (o *Order) Delivery() DeliverySummary {
	return o.delivery
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last mutated.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// SubtotalCent returns the sum of the line item totals in integer cents.
// Never negative: line items validate quantity and price on construction.
func (o *Order) SubtotalCent() int64 {
	var total int64
	for _, item := range o.items {
		total += item.TotalCent()
	}
	return total
}

// TotalCent returns subtotal plus the delivery fee in integer cents.
func (o *Order) TotalCent() int64 {
	return o.SubtotalCent() + o.delivery.FeeCent
}

// ChangeStatus moves the order to a new lifecycle status.
//
// The transition is validated against the order state machine; an
// InvalidTransitionError is returned (and nothing mutated) when the
// lifecycle table does not permit the move. This is the only mutation
// path for order status, so no caller can skip a lifecycle stage.
func (o *Order) ChangeStatus(to Status) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := o.status.ValidateTransition(to); err != nil {
		return err
	}

	o.status = to
	o.statusNotes = ""
	o.updatedAt = time.Now().UTC()
	return nil
}

// ChangeStatusWithNotes moves the order to a new lifecycle status and
// records the caller's note for the change. The note belongs to the
// latest transition only; a plain ChangeStatus clears it.
func (o *Order) ChangeStatusWithNotes(to Status, notes string) error {
	if err := o.ChangeStatus(to); err != nil {
		return err
	}

	o.statusNotes = notes
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setTenantID validates and sets the owning tenant.
func (o *Order) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	o.tenantID = tenantID
	return nil
}

// setNumber validates and sets the sequential display number.
func (o *Order) setNumber(number int64) error {
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("number", fmt.Errorf("%d is not greater than 0", number))
	}
	o.number = number
	return nil
}

// setCustomerID validates and sets the customer reference.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setChannel validates and sets the origin platform.
func (o *Order) setChannel(channel Channel) error {
	if err := channel.Validate(); err != nil {
		return err
	}
	o.channel = channel
	return nil
}

// setItems validates and sets the line items. At least one is required.
func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = append([]LineItem(nil), items...)
	return nil
}

// setPayment validates and sets the payment summary.
func (o *Order) setPayment(payment PaymentSummary) error {
	if payment.AmountCent < 0 {
		return errs.NewValueIsInvalidErrorWithCause("payment amount",
			fmt.Errorf("%d is negative", payment.AmountCent))
	}
	o.payment = payment
	return nil
}

// setDelivery validates and sets the delivery summary.
func (o *Order) setDelivery(delivery DeliverySummary) error {
	if delivery.FeeCent < 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivery fee",
			fmt.Errorf("%d is negative", delivery.FeeCent))
	}
	o.delivery = delivery
	return nil
}
