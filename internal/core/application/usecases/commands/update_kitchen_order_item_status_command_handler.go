package commands

import (
	"context"
	"log/slog"

	"kitchenops/internal/core/domain/events"
	"kitchenops/internal/core/domain/model/kitchenorder"
	"kitchenops/internal/core/domain/services"
	"kitchenops/internal/core/ports"
)

// UpdateKitchenOrderItemStatusCommandHandler handles per-item
// preparation moves.
//
// Business rules:
//   - The item state machine validates the move
//   - When the update completes the last item while the kitchen order is
//     preparing, the order auto-promotes to ready and the parent order
//     is synchronized best-effort
//   - The promotion publishes KitchenOrderStatusChanged after commit
type UpdateKitchenOrderItemStatusCommandHandler struct {
	uowFactory OrchestrationUoWFactory
	mapper     services.StatusMapper
	bus        ports.EventBus
	logger     *slog.Logger
}

// NewUpdateKitchenOrderItemStatusCommandHandler creates a handler for
// item status changes.
func NewUpdateKitchenOrderItemStatusCommandHandler(
	uowFactory OrchestrationUoWFactory,
	mapper services.StatusMapper,
	bus ports.EventBus,
	logger *slog.Logger,
) UpdateKitchenOrderItemStatusCommandHandler {
	return UpdateKitchenOrderItemStatusCommandHandler{
		uowFactory: uowFactory,
		mapper:     mapper,
		bus:        bus,
		logger:     logger.With("component", "kitchen-item-status"),
	}
}

// Handle processes the item status change command.
func (h *UpdateKitchenOrderItemStatusCommandHandler) Handle(ctx context.Context, cmd UpdateKitchenOrderItemStatusCommand) error {
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

	kitchenRepo := uow.KitchenOrderRepository()
	aggregate, err := kitchenRepo.Get(ctx, cmd.TenantID(), cmd.KitchenOrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeItemStatus(cmd.ItemID(), cmd.Status()); err != nil {
		return err
	}
	if err = kitchenRepo.UpdateItemStatus(ctx, aggregate, cmd.ItemID()); err != nil {
		return err
	}

	promoted := false
	previousStatus := aggregate.Status()
	if aggregate.AllItemsCompleted() && aggregate.Status() == kitchenorder.StatusPreparing {
		if err = aggregate.ChangeStatus(kitchenorder.StatusReady); err != nil {
			return err
		}
		if err = kitchenRepo.UpdateStatus(ctx, aggregate); err != nil {
			return err
		}
		h.syncParentOrder(ctx, uow, aggregate)
		promoted = true
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if promoted {
		h.bus.Publish(ctx, events.KitchenOrderStatusChanged{
			Header:          events.NewHeader(aggregate.TenantID()),
			KitchenOrderID:  aggregate.ID(),
			OrderID:         aggregate.OrderID(),
			PreviousStatus:  previousStatus.String(),
			NewStatus:       aggregate.Status().String(),
			AssignedStation: aggregate.StationID(),
		})
	}

	return nil
}

// syncParentOrder pushes the promoted status to the customer order.
// Failures are logged, not propagated.
func (h *UpdateKitchenOrderItemStatusCommandHandler) syncParentOrder(ctx context.Context, uow OrchestrationUoW,
	aggregate *kitchenorder.KitchenOrder) {
	mapped, ok := h.mapper.ToOrderStatus(aggregate.Status())
	if !ok {
		return
	}

	orderRepo := uow.OrderRepository()
	parent, err := orderRepo.Get(ctx, aggregate.TenantID(), aggregate.OrderID())
	if err == nil {
		if err = parent.ChangeStatus(mapped); err == nil {
			err = orderRepo.UpdateStatus(ctx, parent)
		}
	}
	if err != nil {
		h.logger.WarnContext(ctx, "failed to sync parent order status",
			"order_id", aggregate.OrderID().String(),
			"kitchen_status", aggregate.Status().String(),
			"error", err)
	}
}
