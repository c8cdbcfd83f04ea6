package commands

import (
	"errors"

	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/pkg/guard"
)

var ErrAssignStationCommandIsNotConstructed = errors.New(
	"AssignStationCommand must be created via NewAssignStationCommand constructor",
)

// AssignStationCommand represents a request to route a kitchen order to
// the optimal available station.
type AssignStationCommand struct { //nolint:recvcheck //using for validation
	kitchenOrderID kernel.UUID
	tenantID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignStationCommand creates a command to assign a kitchen order to
// a station.
func NewAssignStationCommand(kitchenOrderID, tenantID kernel.UUID) (AssignStationCommand, error) {
	cmd := AssignStationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setKitchenOrderID(kitchenOrderID),
		cmd.setTenantID(tenantID),
	); err != nil {
		return AssignStationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignStationCommand) Validate() error {
	return c.guard.Validate(ErrAssignStationCommandIsNotConstructed)
}

// KitchenOrderID returns the kitchen order to assign.
func (c AssignStationCommand) KitchenOrderID() kernel.UUID {
	return c.kitchenOrderID
}

// TenantID returns the owning tenant.
func (c AssignStationCommand) TenantID() kernel.UUID {
	return c.tenantID
}

func (c *AssignStationCommand) setKitchenOrderID(kitchenOrderID kernel.UUID) error {
	if err := kitchenOrderID.Validate(); err != nil {
		return err
	}

	c.kitchenOrderID = kitchenOrderID
	return nil
}

func (c *AssignStationCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}
