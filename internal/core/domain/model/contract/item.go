package contract

import (
	"fmt"

	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/pkg/errs"
)

// ProductionItem is one product to produce under a contract, together
// with its modifications, allergen list and the per-unit preparation
// estimate in minutes. ProductionItem is an immutable value object.
type ProductionItem struct {
	id               kernel.UUID
	productID        kernel.UUID
	recipeID         *kernel.UUID
	name             string
	quantity         int
	modifications    []string
	allergens        []string
	estimatedMinutes int
}

// NewProductionItem creates a validated production item.
//
// Validation rules:
//   - id and productID must be constructed UUIDs
//   - recipeID, when present, must be a constructed UUID
//   - name must not be empty
//   - quantity must be positive
//   - estimatedMinutes must be positive
func NewProductionItem(
	id kernel.UUID,
	productID kernel.UUID,
	recipeID *kernel.UUID,
	name string,
	quantity int,
	modifications []string,
	allergens []string,
	estimatedMinutes int,
) (ProductionItem, error) {
	if err := id.Validate(); err != nil {
		return ProductionItem{}, err
	}
	if err := productID.Validate(); err != nil {
		return ProductionItem{}, err
	}
	if recipeID != nil {
		if err := recipeID.Validate(); err != nil {
			return ProductionItem{}, err
		}
	}
	if name == "" {
		return ProductionItem{}, errs.NewValueIsRequiredError("name")
	}
	if quantity <= 0 {
		return ProductionItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if estimatedMinutes <= 0 {
		return ProductionItem{}, errs.NewValueIsInvalidErrorWithCause("estimatedMinutes",
			fmt.Errorf("%d is not greater than 0", estimatedMinutes))
	}

	return ProductionItem{
		id:               id,
		productID:        productID,
		recipeID:         recipeID,
		name:             name,
		quantity:         quantity,
		modifications:    append([]string(nil), modifications...),
		allergens:        append([]string(nil), allergens...),
		estimatedMinutes: estimatedMinutes,
	}, nil
}

// ID returns the production item's identifier.
func (pi ProductionItem) ID() kernel.UUID {
	return pi.id
}

// ProductID returns the produced product's identifier.
func (pi ProductionItem) ProductID() kernel.UUID {
	return pi.productID
}

// RecipeID returns the recipe reference, or nil when the product has no
// recipe on file.
func (pi ProductionItem) RecipeID() *kernel.UUID {
	return pi.recipeID
}

// Name returns the product display name.
func (pi ProductionItem) Name() string {
	return pi.name
}

// Quantity returns how many units must be produced.
func (pi ProductionItem) Quantity() int {
	return pi.quantity
}

// Modifications returns the customer's modifications for this item.
func (pi ProductionItem) Modifications() []string {
	return append([]string(nil), pi.modifications...)
}

// Allergens returns the allergens declared for this item.
func (pi ProductionItem) Allergens() []string {
	return append([]string(nil), pi.allergens...)
}

// EstimatedMinutes returns the per-unit preparation estimate.
func (pi ProductionItem) EstimatedMinutes() int {
	return pi.estimatedMinutes
}

// TotalMinutes returns quantity × per-unit estimate.
func (pi ProductionItem) TotalMinutes() int {
	return pi.quantity * pi.estimatedMinutes
}
