package commands

import (
	"errors"

	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/core/domain/model/order"
	"kitchenops/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order to a
// new lifecycle status. Used for the customer-facing moves the kitchen
// does not drive: cancellation, delivering and delivered. Confirmation
// goes through ConfirmOrderCommand, which also triggers production.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	tenantID kernel.UUID
	status   order.Status
	notes    string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's
// status. Notes are optional free text recorded with the change; pass
// an empty string to omit them.
func NewUpdateOrderStatusCommand(orderID, tenantID kernel.UUID, status order.Status, notes string) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTenantID(tenantID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TenantID returns the owning tenant.
func (c UpdateOrderStatusCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// Status returns the target lifecycle status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// Notes returns the free-text note for the change, empty when omitted.
func (c UpdateOrderStatusCommand) Notes() string {
	return c.notes
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
