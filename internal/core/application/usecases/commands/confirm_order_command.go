package commands

import (
	"errors"

	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ProductDetail enriches one ordered product with catalog data the
// order itself does not carry: the recipe reference, declared allergens
// and the preparation estimate. A zero PrepMinutes means unknown.
type ProductDetail struct {
	ProductID   kernel.UUID
	RecipeID    *kernel.UUID
	Allergens   []string
	PrepMinutes int
}

// ConfirmOrderCommand represents a request to confirm a pending order.
// Confirmation is the single point where production is triggered: the
// order moves to confirmed and exactly one production contract is
// generated for it.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	tenantID            kernel.UUID
	specialInstructions string
	productDetails      []ProductDetail

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm an order. Product
// details are optional; products without one fall back to the default
// preparation estimate and no allergens.
func NewConfirmOrderCommand(
	orderID kernel.UUID,
	tenantID kernel.UUID,
	specialInstructions string,
	productDetails []ProductDetail,
) (ConfirmOrderCommand, error) {
	cmd := ConfirmOrderCommand{
		specialInstructions: specialInstructions,
		productDetails:      productDetails,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTenantID(tenantID),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// OrderID returns the order to confirm.
func (c ConfirmOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TenantID returns the owning tenant.
func (c ConfirmOrderCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// SpecialInstructions returns the aggregated instructions for the
// production contract.
func (c ConfirmOrderCommand) SpecialInstructions() string {
	return c.specialInstructions
}

// ProductDetails returns the catalog enrichment for the ordered products.
func (c ConfirmOrderCommand) ProductDetails() []ProductDetail {
	return c.productDetails
}

func (c *ConfirmOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmOrderCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}
