package commands

import (
	"errors"

	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/core/domain/model/kitchenorder"
	"kitchenops/internal/pkg/guard"
)

var ErrUpdateKitchenOrderItemStatusCommandIsNotConstructed = errors.New(
	"UpdateKitchenOrderItemStatusCommand must be created via NewUpdateKitchenOrderItemStatusCommand constructor",
)

// UpdateKitchenOrderItemStatusCommand represents a request to move one
// item of a kitchen order to a new preparation status.
type UpdateKitchenOrderItemStatusCommand struct { //nolint:recvcheck //using for validation
	kitchenOrderID kernel.UUID
	tenantID       kernel.UUID
	itemID         kernel.UUID
	status         kitchenorder.ItemStatus

	guard guard.ConstructorGuard
}

// NewUpdateKitchenOrderItemStatusCommand creates a command to change an
// item's preparation status.
func NewUpdateKitchenOrderItemStatusCommand(
	kitchenOrderID kernel.UUID,
	tenantID kernel.UUID,
	itemID kernel.UUID,
	status kitchenorder.ItemStatus,
) (UpdateKitchenOrderItemStatusCommand, error) {
	cmd := UpdateKitchenOrderItemStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setKitchenOrderID(kitchenOrderID),
		cmd.setTenantID(tenantID),
		cmd.setItemID(itemID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateKitchenOrderItemStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateKitchenOrderItemStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateKitchenOrderItemStatusCommandIsNotConstructed)
}

// KitchenOrderID returns the owning kitchen order.
func (c UpdateKitchenOrderItemStatusCommand) KitchenOrderID() kernel.UUID {
	return c.kitchenOrderID
}

// TenantID returns the owning tenant.
func (c UpdateKitchenOrderItemStatusCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// ItemID returns the item to update.
func (c UpdateKitchenOrderItemStatusCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Status returns the target preparation status.
func (c UpdateKitchenOrderItemStatusCommand) Status() kitchenorder.ItemStatus {
	return c.status
}

func (c *UpdateKitchenOrderItemStatusCommand) setKitchenOrderID(kitchenOrderID kernel.UUID) error {
	if err := kitchenOrderID.Validate(); err != nil {
		return err
	}

	c.kitchenOrderID = kitchenOrderID
	return nil
}

func (c *UpdateKitchenOrderItemStatusCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *UpdateKitchenOrderItemStatusCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateKitchenOrderItemStatusCommand) setStatus(status kitchenorder.ItemStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
