package commands

import (
	"context"
	"errors"

	"kitchenops/internal/core/domain/events"
	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/core/domain/model/kitchenorder"
	"kitchenops/internal/core/ports"
	"kitchenops/internal/pkg/errs"
)

// CreateKitchenOrderCommandHandler builds the kitchen order for a
// production contract.
//
// Business rules:
//   - The contract must exist (object-not-found error kind otherwise)
//   - At most one kitchen order per order: an existing kitchen order for
//     the contract's order fails with the duplicate error kind
//   - Kitchen items are built 1:1 from the contract's production items
//   - KitchenOrderCreated is published only after the transaction commits
type CreateKitchenOrderCommandHandler struct {
	uowFactory KitchenUoWFactory
	bus        ports.EventBus
}

// NewCreateKitchenOrderCommandHandler creates a handler for kitchen
// order creation.
func NewCreateKitchenOrderCommandHandler(uowFactory KitchenUoWFactory, bus ports.EventBus) CreateKitchenOrderCommandHandler {
	return CreateKitchenOrderCommandHandler{
		uowFactory: uowFactory,
		bus:        bus,
	}
}

// Handle processes the kitchen order creation command.
func (h *CreateKitchenOrderCommandHandler) Handle(ctx context.Context, cmd CreateKitchenOrderCommand) error {
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

	productionContract, err := uow.ContractRepository().Get(ctx, cmd.TenantID(), cmd.ContractID())
	if err != nil {
		return err
	}

	kitchenRepo := uow.KitchenOrderRepository()
	if _, err = kitchenRepo.GetByOrderID(ctx, cmd.TenantID(), productionContract.OrderID()); err == nil {
		return errs.NewDuplicateKitchenOrderError(productionContract.OrderID())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	items := make([]kitchenorder.Item, 0, len(productionContract.Items()))
	for _, productionItem := range productionContract.Items() {
		item, err := kitchenorder.NewItem(
			productionItem.ID(),
			productionItem.ProductID(),
			productionItem.Name(),
			productionItem.Quantity(),
			productionItem.Modifications(),
			productionItem.EstimatedMinutes(),
		)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	priority := productionContract.Priority()
	if cmd.Priority() != nil {
		priority = *cmd.Priority()
	}

	aggregate, err := kitchenorder.NewKitchenOrder(
		kernel.NewUUID(),
		productionContract.ID(),
		productionContract.OrderID(),
		productionContract.TenantID(),
		items,
		priority,
		productionContract.EstimatedCompletionTime(),
	)
	if err != nil {
		return err
	}

	if err = kitchenRepo.Add(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.bus.Publish(ctx, events.KitchenOrderCreated{
		Header:                  events.NewHeader(aggregate.TenantID()),
		KitchenOrderID:          aggregate.ID(),
		OrderID:                 aggregate.OrderID(),
		ContractID:              aggregate.ContractID(),
		Priority:                aggregate.Priority().String(),
		EstimatedCompletionTime: aggregate.EstimatedCompletionTime(),
	})

	return nil
}
