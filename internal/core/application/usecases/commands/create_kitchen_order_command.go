package commands

import (
	"errors"

	"kitchenops/internal/core/domain/model/contract"
	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/pkg/guard"
)

var ErrCreateKitchenOrderCommandIsNotConstructed = errors.New(
	"CreateKitchenOrderCommand must be created via NewCreateKitchenOrderCommand constructor",
)

// CreateKitchenOrderCommand represents a request to build the kitchen
// order for a production contract. The optional priority overrides the
// contract's computed one; this is the manual path to low and urgent.
type CreateKitchenOrderCommand struct { //nolint:recvcheck //using for validation
	contractID kernel.UUID
	tenantID   kernel.UUID
	priority   *contract.Priority

	guard guard.ConstructorGuard
}

// NewCreateKitchenOrderCommand creates a command to build a kitchen
// order from a contract. A nil priority inherits the contract's.
func NewCreateKitchenOrderCommand(contractID, tenantID kernel.UUID, priority *contract.Priority) (CreateKitchenOrderCommand, error) {
	cmd := CreateKitchenOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setContractID(contractID),
		cmd.setTenantID(tenantID),
		cmd.setPriority(priority),
	); err != nil {
		return CreateKitchenOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateKitchenOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateKitchenOrderCommandIsNotConstructed)
}

// ContractID returns the contract to build the kitchen order from.
func (c CreateKitchenOrderCommand) ContractID() kernel.UUID {
	return c.contractID
}

// TenantID returns the owning tenant.
func (c CreateKitchenOrderCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// Priority returns the manual priority override, or nil to inherit.
func (c CreateKitchenOrderCommand) Priority() *contract.Priority {
	return c.priority
}

func (c *CreateKitchenOrderCommand) setContractID(contractID kernel.UUID) error {
	if err := contractID.Validate(); err != nil {
		return err
	}

	c.contractID = contractID
	return nil
}

func (c *CreateKitchenOrderCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *CreateKitchenOrderCommand) setPriority(priority *contract.Priority) error {
	if priority == nil {
		return nil
	}
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}
