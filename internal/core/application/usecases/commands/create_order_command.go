package commands

import (
	"errors"

	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/core/domain/model/order"
	"kitchenops/internal/pkg/errs"
	"kitchenops/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItemInput is the command-level shape of one ordered line item.
type OrderItemInput struct {
	ProductID     kernel.UUID
	Name          string
	Quantity      int
	UnitPriceCent int64
	Modifications []string
	Extras        []string
}

// CreateOrderCommand represents a request to register a new customer
// order. The order is persisted in pending status, ready for
// confirmation.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	tenantID   kernel.UUID
	number     int64
	customerID kernel.UUID
	channel    order.Channel
	items      []OrderItemInput
	payment    order.PaymentSummary
	delivery   order.DeliverySummary

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Item-level validation is delegated to the order aggregate; the command
// only checks identities, the channel and that items exist at all.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	tenantID kernel.UUID,
	number int64,
	customerID kernel.UUID,
	channel order.Channel,
	items []OrderItemInput,
	payment order.PaymentSummary,
	delivery order.DeliverySummary,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		number:   number,
		payment:  payment,
		delivery: delivery,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTenantID(tenantID),
		cmd.setCustomerID(customerID),
		cmd.setChannel(channel),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TenantID returns the owning tenant.
func (c CreateOrderCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// Number returns the sequential display number.
func (c CreateOrderCommand) Number() int64 {
	return c.number
}

// CustomerID returns the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Channel returns the origin platform.
func (c CreateOrderCommand) Channel() order.Channel {
	return c.channel
}

// Items returns the ordered line item inputs.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return c.items
}

// Payment returns the payment summary.
func (c CreateOrderCommand) Payment() order.PaymentSummary {
	return c.payment
}

// Delivery returns the delivery summary.
func (c CreateOrderCommand) Delivery() order.DeliverySummary {
	return c.delivery
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setChannel(channel order.Channel) error {
	if err := channel.Validate(); err != nil {
		return err
	}

	c.channel = channel
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	c.items = items
	return nil
}
