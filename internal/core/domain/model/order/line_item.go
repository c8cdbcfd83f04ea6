package order

import (
	"fmt"

	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/pkg/errs"
)

// LineItem is one ordered product with its quantity, selected
// modifications and extras. LineItem is an immutable value object; prices
// are integer cents.
type LineItem struct {
	productID     kernel.UUID
	name          string
	quantity      int
	unitPriceCent int64
	modifications []string
	extras        []string
}

// NewLineItem creates a validated line item.
//
// Validation rules:
//   - productID must be a constructed UUID
//   - name must not be empty
//   - quantity must be positive
//   - unit price must not be negative
func NewLineItem(productID kernel.UUID, name string, quantity int, unitPriceCent int64, modifications, extras []string) (LineItem, error) {
	if err := productID.Validate(); err != nil {
		return LineItem{}, err
	}
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("name")
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPriceCent < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("unitPriceCent",
			fmt.Errorf("%d is negative", unitPriceCent))
	}

	return LineItem{
		productID:     productID,
		name:          name,
		quantity:      quantity,
		unitPriceCent: unitPriceCent,
		modifications: append([]string(nil), modifications...),
		extras:        append([]string(nil), extras...),
	}, nil
}

// ProductID returns the ordered product's identifier.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Name returns the product display name at order time.
func (li LineItem) Name() string {
	return li.name
}

// Quantity returns how many units were ordered.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPriceCent returns the per-unit price in integer cents.
func (li LineItem) UnitPriceCent() int64 {
	return li.unitPriceCent
}

// Modifications returns the customer's modifications for this item.
func (li LineItem) Modifications() []string {
	return append([]string(nil), li.modifications...)
}

// Extras returns the add-ons selected for this item.
func (li LineItem) Extras() []string {
	return append([]string(nil), li.extras...)
}

// TotalCent returns quantity × unit price in integer cents.
func (li LineItem) TotalCent() int64 {
	return int64(li.quantity) * li.unitPriceCent
}
