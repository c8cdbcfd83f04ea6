package commands

import (
	"context"
	"errors"

	"kitchenops/internal/core/domain/events"
	"kitchenops/internal/core/domain/model/contract"
	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/core/domain/services"
	"kitchenops/internal/core/ports"
)

// ErrNoStationAvailable is returned when every station is full or
// inactive, or a concurrent assignment consumed the last slot. The
// kitchen order stays unassigned; the retry job picks it up later.
// Callers must not treat this as a failure.
var ErrNoStationAvailable = errors.New("no station available")

// AssignStationCommandHandler routes a kitchen order to the optimal
// station.
//
// Business rules:
//   - Candidates are the tenant's active stations with headroom; the
//     dispatcher picks by type preference, then lowest load
//   - The winner's load is incremented through the atomic persistence
//     guard; losing that race leaves the order unassigned
//   - On reassignment the previous station's load is released
//   - The contract is moved to assigned on the first assignment
//   - KitchenOrderStatusChanged is published only after commit
type AssignStationCommandHandler struct {
	uowFactory OrchestrationUoWFactory
	dispatcher services.StationDispatcher
	bus        ports.EventBus
}

// NewAssignStationCommandHandler creates a handler for station assignment.
func NewAssignStationCommandHandler(
	uowFactory OrchestrationUoWFactory,
	dispatcher services.StationDispatcher,
	bus ports.EventBus,
) AssignStationCommandHandler {
	return AssignStationCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		bus:        bus,
	}
}

// Handle processes the assignment command. Returns ErrNoStationAvailable
// when the order has to stay unassigned.
func (h *AssignStationCommandHandler) Handle(ctx context.Context, cmd AssignStationCommand) error {
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

	stationRepo := uow.StationRepository()
	stations, err := stationRepo.GetActive(ctx, cmd.TenantID())
	if err != nil {
		return err
	}

	best, err := h.dispatcher.Dispatch(stations)
	if errors.Is(err, services.ErrStationNotFound) {
		return ErrNoStationAvailable
	}
	if err != nil {
		return err
	}

	ok, err := stationRepo.AdjustLoad(ctx, cmd.TenantID(), best.ID(), 1)
	if err != nil {
		return err
	}
	if !ok {
		// A concurrent assignment filled the station after selection.
		return ErrNoStationAvailable
	}

	previousStation, err := aggregate.AssignStation(best.ID())
	if err != nil {
		return err
	}
	if previousStation != nil {
		if _, err = stationRepo.AdjustLoad(ctx, cmd.TenantID(), *previousStation, -1); err != nil {
			return err
		}
	}

	if err = kitchenRepo.UpdateStatus(ctx, aggregate); err != nil {
		return err
	}

	if previousStation == nil {
		if err = h.assignContract(ctx, uow, cmd.TenantID(), aggregate.ContractID(), best.ID()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	stationID := best.ID()
	eta := aggregate.EstimatedCompletionTime()
	h.bus.Publish(ctx, events.KitchenOrderStatusChanged{
		Header:                  events.NewHeader(aggregate.TenantID()),
		KitchenOrderID:          aggregate.ID(),
		OrderID:                 aggregate.OrderID(),
		PreviousStatus:          previousStatus.String(),
		NewStatus:               aggregate.Status().String(),
		AssignedStation:         &stationID,
		EstimatedCompletionTime: &eta,
	})

	return nil
}

// assignContract moves the production contract to assigned alongside
// the kitchen order's first assignment.
func (h *AssignStationCommandHandler) assignContract(ctx context.Context, uow OrchestrationUoW,
	tenantID, contractID, stationID kernel.UUID) error {
	contractRepo := uow.ContractRepository()
	productionContract, err := contractRepo.Get(ctx, tenantID, contractID)
	if err != nil {
		return err
	}

	if productionContract.Status() != contract.StatusPending {
		return nil
	}

	if err = productionContract.Assign(stationID); err != nil {
		return err
	}
	return contractRepo.Update(ctx, productionContract)
}
