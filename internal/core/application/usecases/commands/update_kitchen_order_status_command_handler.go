package commands

import (
	"context"
	"log/slog"

	"kitchenops/internal/core/domain/events"
	"kitchenops/internal/core/domain/model/contract"
	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/core/domain/model/kitchenorder"
	"kitchenops/internal/core/domain/services"
	"kitchenops/internal/core/ports"
)

// kitchenToContract maps kitchen order statuses to the contract status
// they advance to.
var kitchenToContract = map[kitchenorder.Status]contract.Status{
	kitchenorder.StatusPreparing: contract.StatusInPreparation,
	kitchenorder.StatusReady:     contract.StatusReady,
	kitchenorder.StatusCompleted: contract.StatusCompleted,
}

// UpdateKitchenOrderStatusCommandHandler handles kitchen-side status
// moves and their ripple effects.
//
// Business rules:
//   - The kitchen order state machine validates the move
//   - Parent order and contract are synchronized best-effort: a sync
//     failure is logged, never propagated, so the kitchen flow is not
//     blocked by display-side state
//   - On reassignment the old station's load is released and the new
//     one's taken, both attempted even if one fails
//   - Completed and failed release the current station's load
//   - KitchenOrderStatusChanged is published after commit; completed
//     additionally publishes IngredientConsumed per item
type UpdateKitchenOrderStatusCommandHandler struct {
	uowFactory OrchestrationUoWFactory
	mapper     services.StatusMapper
	bus        ports.EventBus
	logger     *slog.Logger
}

// NewUpdateKitchenOrderStatusCommandHandler creates a handler for
// kitchen order status changes.
func NewUpdateKitchenOrderStatusCommandHandler(
	uowFactory OrchestrationUoWFactory,
	mapper services.StatusMapper,
	bus ports.EventBus,
	logger *slog.Logger,
) UpdateKitchenOrderStatusCommandHandler {
	return UpdateKitchenOrderStatusCommandHandler{
		uowFactory: uowFactory,
		mapper:     mapper,
		bus:        bus,
		logger:     logger.With("component", "kitchen-status"),
	}
}

// Handle processes the status change command.
func (h *UpdateKitchenOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateKitchenOrderStatusCommand) error {
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
	previousStatus := aggregate.Status()
	previousStation := aggregate.StationID()

	if cmd.Status() == kitchenorder.StatusAssigned {
		if _, err = aggregate.AssignStation(*cmd.StationID()); err != nil {
			return err
		}
		h.swapStationLoad(ctx, uow, cmd.TenantID(), previousStation, cmd.StationID())
	} else {
		if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
			return err
		}
		if cmd.Status() == kitchenorder.StatusCompleted || cmd.Status() == kitchenorder.StatusFailed {
			h.swapStationLoad(ctx, uow, cmd.TenantID(), previousStation, nil)
		}
	}

	if err = kitchenRepo.UpdateStatus(ctx, aggregate); err != nil {
		return err
	}

	h.syncParentOrder(ctx, uow, aggregate)
	h.syncContract(ctx, uow, aggregate)

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.bus.Publish(ctx, events.KitchenOrderStatusChanged{
		Header:                  events.NewHeader(aggregate.TenantID()),
		KitchenOrderID:          aggregate.ID(),
		OrderID:                 aggregate.OrderID(),
		PreviousStatus:          previousStatus.String(),
		NewStatus:               aggregate.Status().String(),
		AssignedStation:         aggregate.StationID(),
		EstimatedCompletionTime: cmd.EstimatedCompletionTime(),
	})

	if aggregate.Status() == kitchenorder.StatusCompleted {
		h.publishConsumption(ctx, aggregate)
	}

	return nil
}

// swapStationLoad releases the load slot of the old station and takes
// one on the new. Both adjustments are attempted even if one fails; a
// failed adjustment is logged and the command proceeds, since the load
// counter is advisory and self-corrects on the next completion.
func (h *UpdateKitchenOrderStatusCommandHandler) swapStationLoad(ctx context.Context, uow OrchestrationUoW,
	tenantID kernel.UUID, oldStation, newStation *kernel.UUID) {
	stationRepo := uow.StationRepository()

	if oldStation != nil {
		if ok, err := stationRepo.AdjustLoad(ctx, tenantID, *oldStation, -1); err != nil || !ok {
			h.logger.WarnContext(ctx, "failed to release station load",
				"station_id", oldStation.String(), "error", err)
		}
	}
	if newStation != nil {
		if ok, err := stationRepo.AdjustLoad(ctx, tenantID, *newStation, 1); err != nil || !ok {
			h.logger.WarnContext(ctx, "failed to take station load",
				"station_id", newStation.String(), "error", err)
		}
	}
}

// syncParentOrder pushes the kitchen status to the customer order when
// the mapper has a counterpart. Failures are logged, not propagated.
func (h *UpdateKitchenOrderStatusCommandHandler) syncParentOrder(ctx context.Context, uow OrchestrationUoW,
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

// syncContract advances the production contract alongside the kitchen
// order. Failures are logged, not propagated.
func (h *UpdateKitchenOrderStatusCommandHandler) syncContract(ctx context.Context, uow OrchestrationUoW,
	aggregate *kitchenorder.KitchenOrder) {
	target, ok := kitchenToContract[aggregate.Status()]
	if !ok {
		return
	}

	contractRepo := uow.ContractRepository()
	productionContract, err := contractRepo.Get(ctx, aggregate.TenantID(), aggregate.ContractID())
	if err == nil {
		if err = productionContract.ChangeStatus(target); err == nil {
			err = contractRepo.Update(ctx, productionContract)
		}
	}
	if err != nil {
		h.logger.WarnContext(ctx, "failed to sync contract status",
			"contract_id", aggregate.ContractID().String(),
			"kitchen_status", aggregate.Status().String(),
			"error", err)
	}
}

// publishConsumption emits one IngredientConsumed event per item of the
// completed kitchen order.
func (h *UpdateKitchenOrderStatusCommandHandler) publishConsumption(ctx context.Context, aggregate *kitchenorder.KitchenOrder) {
	consumedAt := aggregate.UpdatedAt()
	for _, item := range aggregate.Items() {
		h.bus.Publish(ctx, events.IngredientConsumed{
			Header:     events.NewHeader(aggregate.TenantID()),
			OrderID:    aggregate.OrderID(),
			ProductID:  item.ProductID(),
			Quantity:   item.Quantity(),
			ConsumedAt: consumedAt,
		})
	}
}
