package commands

import (
	"context"

	"kitchenops/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order
// registration. Builds the aggregate from the command inputs and
// persists it in pending status.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order registration.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order registration command.
// The order is created as a draft and submitted to pending in the same
// transaction, so persisted orders always await confirmation.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items := make([]order.LineItem, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		item, err := order.NewLineItem(input.ProductID, input.Name, input.Quantity,
			input.UnitPriceCent, input.Modifications, input.Extras)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.TenantID(), cmd.Number(),
		cmd.CustomerID(), cmd.Channel(), items, cmd.Payment(), cmd.Delivery())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(order.Pending); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
