package services

import (
	"time"

	"kitchenops/internal/core/domain/model/contract"
	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/core/domain/model/order"
	"kitchenops/internal/pkg/errs"
)

// defaultPrepMinutes is used when a product's preparation time is unknown.
const defaultPrepMinutes = 15

// largeOrderItemCount is the item count above which a contract is
// produced at high priority.
const largeOrderItemCount = 5

// ContractItemSpec is the factory input for one production item. A zero
// PrepMinutes means the product's preparation time is unknown and the
// default applies.
type ContractItemSpec struct {
	ProductID     kernel.UUID
	RecipeID      *kernel.UUID
	Name          string
	Quantity      int
	Modifications []string
	Allergens     []string
	PrepMinutes   int
}

// ContractFactory is a domain service that builds the production
// contract for a confirmed order.
//
// Business rules:
//   - Per-item estimated minutes default to 15 when unknown
//   - Priority: aggregator channel or more than 5 items produce high,
//     everything else produces medium (low and urgent are reserved for
//     manual override paths)
//   - Total estimated minutes = Σ(item minutes × quantity)
//   - Estimated completion = generation time + total minutes
//   - Allergen alerts are the deduplicated union over all items
//
// The factory's math is idempotent, but it must be invoked at most once
// per order; the orchestrator checks for an existing contract before
// calling Generate.
type ContractFactory struct{}

// NewContractFactory creates a new ContractFactory instance.
func NewContractFactory() ContractFactory {
	return ContractFactory{}
}

// Generate builds a pending production contract for the order.
func (f ContractFactory) Generate(
	orderID kernel.UUID,
	tenantID kernel.UUID,
	specs []ContractItemSpec,
	channel order.Channel,
	specialInstructions string,
) (*contract.ProductionContract, error) {
	if len(specs) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	if err := channel.Validate(); err != nil {
		return nil, err
	}

	items := make([]contract.ProductionItem, 0, len(specs))
	var totalMinutes int
	var alerts []string
	seen := make(map[string]struct{})

	for _, spec := range specs {
		minutes := spec.PrepMinutes
		if minutes <= 0 {
			minutes = defaultPrepMinutes
		}

		item, err := contract.NewProductionItem(
			kernel.NewUUID(),
			spec.ProductID,
			spec.RecipeID,
			spec.Name,
			spec.Quantity,
			spec.Modifications,
			spec.Allergens,
			minutes,
		)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
		totalMinutes += item.TotalMinutes()

		for _, allergen := range spec.Allergens {
			if _, ok := seen[allergen]; ok {
				continue
			}
			seen[allergen] = struct{}{}
			alerts = append(alerts, allergen)
		}
	}

	priority := f.computePriority(channel, len(specs))
	eta := time.Now().UTC().Add(time.Duration(totalMinutes) * time.Minute)

	return contract.NewProductionContract(
		kernel.NewUUID(),
		orderID,
		tenantID,
		items,
		priority,
		specialInstructions,
		alerts,
		eta,
	)
}

// computePriority derives the contract priority from the order channel
// and item count. There is no automatic low assignment.
func (f ContractFactory) computePriority(channel order.Channel, itemCount int) contract.Priority {
	switch {
	case channel.IsAggregator():
		return contract.PriorityHigh
	case itemCount > largeOrderItemCount:
		return contract.PriorityHigh
	default:
		return contract.PriorityMedium
	}
}
