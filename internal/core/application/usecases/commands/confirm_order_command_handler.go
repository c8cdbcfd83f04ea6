package commands

import (
	"context"
	"errors"

	"kitchenops/internal/core/domain/events"
	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/core/domain/model/order"
	"kitchenops/internal/core/domain/services"
	"kitchenops/internal/core/ports"
	"kitchenops/internal/pkg/errs"
)

// ConfirmOrderCommandHandler handles order confirmation: the order moves
// to confirmed and the production contract is generated, atomically.
//
// Business rules:
//   - Only a pending order can be confirmed (order state machine)
//   - At most one contract per order: an existing contract fails the
//     command with the duplicate-contract error kind
//   - OrderConfirmed and ProductionContractCreated are published only
//     after the transaction commits
type ConfirmOrderCommandHandler struct {
	uowFactory ProductionUoWFactory
	factory    services.ContractFactory
	bus        ports.EventBus
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(
	uowFactory ProductionUoWFactory,
	factory services.ContractFactory,
	bus ports.EventBus,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		factory:    factory,
		bus:        bus,
	}
}

// Handle processes the confirmation command.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.TenantID(), cmd.OrderID())
	if err != nil {
		return err
	}

	contractRepo := uow.ContractRepository()
	if _, err = contractRepo.GetByOrderID(ctx, cmd.TenantID(), cmd.OrderID()); err == nil {
		return errs.NewDuplicateContractError(cmd.OrderID())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = aggregate.ChangeStatus(order.Confirmed); err != nil {
		return err
	}

	newContract, err := h.factory.Generate(
		aggregate.ID(),
		aggregate.TenantID(),
		h.buildItemSpecs(aggregate, cmd.ProductDetails()),
		aggregate.Channel(),
		cmd.SpecialInstructions(),
	)
	if err != nil {
		return err
	}

	if err = contractRepo.Add(ctx, newContract); err != nil {
		return err
	}
	if err = orderRepo.UpdateStatus(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.bus.Publish(ctx, events.OrderConfirmed{
		Header:      events.NewHeader(aggregate.TenantID()),
		OrderID:     aggregate.ID(),
		CustomerID:  aggregate.CustomerID(),
		Number:      aggregate.Number(),
		ConfirmedAt: aggregate.UpdatedAt(),
	})
	h.bus.Publish(ctx, events.ProductionContractCreated{
		Header:                  events.NewHeader(newContract.TenantID()),
		ContractID:              newContract.ID(),
		OrderID:                 newContract.OrderID(),
		Priority:                newContract.Priority().String(),
		EstimatedCompletionTime: newContract.EstimatedCompletionTime(),
		ItemCount:               len(newContract.Items()),
	})

	return nil
}

// buildItemSpecs joins the order's line items with the commanded product
// details by product id.
func (h *ConfirmOrderCommandHandler) buildItemSpecs(aggregate *order.Order, details []ProductDetail) []services.ContractItemSpec {
	detailByProduct := make(map[kernel.UUID]ProductDetail, len(details))
	for _, detail := range details {
		detailByProduct[detail.ProductID] = detail
	}

	specs := make([]services.ContractItemSpec, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		spec := services.ContractItemSpec{
			ProductID:     item.ProductID(),
			Name:          item.Name(),
			Quantity:      item.Quantity(),
			Modifications: item.Modifications(),
		}
		if detail, ok := detailByProduct[item.ProductID()]; ok {
			spec.RecipeID = detail.RecipeID
			spec.Allergens = detail.Allergens
			spec.PrepMinutes = detail.PrepMinutes
		}
		specs = append(specs, spec)
	}
	return specs
}
