package commands_test

import (
	"testing"

	"kitchenops/internal/core/application/usecases/commands"
	"kitchenops/internal/core/domain/events"
	"kitchenops/internal/core/domain/model/contract"
	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/core/domain/model/kitchenorder"
	"kitchenops/internal/core/domain/model/order"
	"kitchenops/internal/core/domain/services"
	"kitchenops/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateKitchenOrderStatusCommandHandler_Handle_Preparing(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	stationID := kernel.NewUUID()
	aggregate := kitchenOrderInStatus(t, tenantID, kitchenorder.StatusAssigned, &stationID, kitchenorder.ItemStatusPending, 2)
	parent := orderInStatus(t, tenantID, order.Confirmed)
	productionContract := contractInStatus(t, tenantID, contract.StatusAssigned, &stationID)

	cmd, err := commands.NewUpdateKitchenOrderStatusCommand(
		aggregate.ID(), tenantID, kitchenorder.StatusPreparing, nil, nil)
	require.NoError(t, err)

	kitchenRepo := new(MockKitchenOrderRepository)
	orderRepo := new(MockOrderRepository)
	contractRepo := new(MockContractRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("KitchenOrderRepository").Return(kitchenRepo).Once(),
		kitchenRepo.On("Get", mock.Anything, tenantID, aggregate.ID()).Return(aggregate, nil).Once(),
		kitchenRepo.On("UpdateStatus", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, tenantID, aggregate.OrderID()).Return(parent, nil).Once(),
		orderRepo.On("UpdateStatus", mock.Anything, parent).Return(nil).Once(),
		uow.On("ContractRepository").Return(contractRepo).Once(),
		contractRepo.On("Get", mock.Anything, tenantID, aggregate.ContractID()).
			Return(productionContract, nil).Once(),
		contractRepo.On("Update", mock.Anything, productionContract).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	bus := new(MockEventBus)
	bus.On("Publish", mock.Anything, mock.AnythingOfType("events.KitchenOrderStatusChanged")).
		Run(func(args mock.Arguments) {
			event := args.Get(1).(events.KitchenOrderStatusChanged)
			require.Equal(t, kitchenorder.StatusAssigned.String(), event.PreviousStatus)
			require.Equal(t, kitchenorder.StatusPreparing.String(), event.NewStatus)
		}).Once()

	factory := new(MockOrchestrationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateKitchenOrderStatusCommandHandler(
		factory, services.NewStatusMapper(), bus, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, kitchenorder.StatusPreparing, aggregate.Status())
	require.Equal(t, order.Preparing, parent.Status())
	require.Equal(t, contract.StatusInPreparation, productionContract.Status())
	bus.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateKitchenOrderStatusCommandHandler_Handle_CompletedReleasesLoadAndConsumes(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	stationID := kernel.NewUUID()
	aggregate := kitchenOrderInStatus(t, tenantID, kitchenorder.StatusReady, &stationID, kitchenorder.ItemStatusCompleted, 2)
	productionContract := contractInStatus(t, tenantID, contract.StatusReady, &stationID)

	cmd, err := commands.NewUpdateKitchenOrderStatusCommand(
		aggregate.ID(), tenantID, kitchenorder.StatusCompleted, nil, nil)
	require.NoError(t, err)

	kitchenRepo := new(MockKitchenOrderRepository)
	stationRepo := new(MockStationRepository)
	contractRepo := new(MockContractRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("KitchenOrderRepository").Return(kitchenRepo)
	uow.On("StationRepository").Return(stationRepo)
	uow.On("ContractRepository").Return(contractRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	kitchenRepo.On("Get", mock.Anything, tenantID, aggregate.ID()).Return(aggregate, nil)
	kitchenRepo.On("UpdateStatus", mock.Anything, aggregate).Return(nil)
	stationRepo.On("AdjustLoad", mock.Anything, tenantID, stationID, -1).Return(true, nil)
	contractRepo.On("Get", mock.Anything, tenantID, aggregate.ContractID()).
		Return(productionContract, nil)
	contractRepo.On("Update", mock.Anything, productionContract).Return(nil)

	bus := new(MockEventBus)
	bus.On("Publish", mock.Anything, mock.AnythingOfType("events.KitchenOrderStatusChanged")).Once()
	bus.On("Publish", mock.Anything, mock.AnythingOfType("events.IngredientConsumed")).Times(2)

	factory := new(MockOrchestrationUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUpdateKitchenOrderStatusCommandHandler(
		factory, services.NewStatusMapper(), bus, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, kitchenorder.StatusCompleted, aggregate.Status())
	require.NotNil(t, aggregate.ActualCompletionTime())
	require.Equal(t, contract.StatusCompleted, productionContract.Status())
	stationRepo.AssertCalled(t, "AdjustLoad", mock.Anything, tenantID, stationID, -1)
	orderRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	bus.AssertExpectations(t)
}

func TestUpdateKitchenOrderStatusCommandHandler_Handle_SyncFailureDoesNotBlock(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	stationID := kernel.NewUUID()
	aggregate := kitchenOrderInStatus(t, tenantID, kitchenorder.StatusAssigned, &stationID, kitchenorder.ItemStatusPending, 1)

	cmd, err := commands.NewUpdateKitchenOrderStatusCommand(
		aggregate.ID(), tenantID, kitchenorder.StatusPreparing, nil, nil)
	require.NoError(t, err)

	kitchenRepo := new(MockKitchenOrderRepository)
	orderRepo := new(MockOrderRepository)
	contractRepo := new(MockContractRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("KitchenOrderRepository").Return(kitchenRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ContractRepository").Return(contractRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	kitchenRepo.On("Get", mock.Anything, tenantID, aggregate.ID()).Return(aggregate, nil)
	kitchenRepo.On("UpdateStatus", mock.Anything, aggregate).Return(nil)
	orderRepo.On("Get", mock.Anything, tenantID, aggregate.OrderID()).
		Return(nil, errs.NewObjectNotFoundError("orderID", aggregate.OrderID()))
	contractRepo.On("Get", mock.Anything, tenantID, aggregate.ContractID()).
		Return(nil, errs.NewObjectNotFoundError("contractID", aggregate.ContractID()))

	bus := new(MockEventBus)
	bus.On("Publish", mock.Anything, mock.Anything).Once()

	factory := new(MockOrchestrationUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUpdateKitchenOrderStatusCommandHandler(
		factory, services.NewStatusMapper(), bus, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, kitchenorder.StatusPreparing, aggregate.Status())
	uow.AssertCalled(t, "Commit", ctx)
}

func TestUpdateKitchenOrderStatusCommandHandler_Handle_FailedReleasesStationOnce(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	stationID := kernel.NewUUID()
	aggregate := kitchenOrderInStatus(t, tenantID, kitchenorder.StatusPreparing, &stationID, kitchenorder.ItemStatusPreparing, 1)

	cmd, err := commands.NewUpdateKitchenOrderStatusCommand(
		aggregate.ID(), tenantID, kitchenorder.StatusFailed, nil, nil)
	require.NoError(t, err)

	kitchenRepo := new(MockKitchenOrderRepository)
	stationRepo := new(MockStationRepository)
	contractRepo := new(MockContractRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("KitchenOrderRepository").Return(kitchenRepo)
	uow.On("StationRepository").Return(stationRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	kitchenRepo.On("Get", mock.Anything, tenantID, aggregate.ID()).Return(aggregate, nil)
	kitchenRepo.On("UpdateStatus", mock.Anything, aggregate).
		Run(func(args mock.Arguments) {
			persisted := args.Get(1).(*kitchenorder.KitchenOrder)
			require.Nil(t, persisted.StationID())
		}).Return(nil)
	stationRepo.On("AdjustLoad", mock.Anything, tenantID, stationID, -1).Return(true, nil).Once()

	bus := new(MockEventBus)
	bus.On("Publish", mock.Anything, mock.AnythingOfType("events.KitchenOrderStatusChanged")).
		Run(func(args mock.Arguments) {
			event := args.Get(1).(events.KitchenOrderStatusChanged)
			require.Equal(t, kitchenorder.StatusFailed.String(), event.NewStatus)
			require.Nil(t, event.AssignedStation)
		}).Once()

	factory := new(MockOrchestrationUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUpdateKitchenOrderStatusCommandHandler(
		factory, services.NewStatusMapper(), bus, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, kitchenorder.StatusFailed, aggregate.Status())
	require.Nil(t, aggregate.StationID())
	stationRepo.AssertNumberOfCalls(t, "AdjustLoad", 1)
	contractRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	bus.AssertExpectations(t)
}

func TestUpdateKitchenOrderStatusCommandHandler_Handle_ManualAssignment(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	oldStation := kernel.NewUUID()
	newStation := kernel.NewUUID()
	aggregate := kitchenOrderInStatus(t, tenantID, kitchenorder.StatusAssigned, &oldStation, kitchenorder.ItemStatusPending, 1)

	cmd, err := commands.NewUpdateKitchenOrderStatusCommand(
		aggregate.ID(), tenantID, kitchenorder.StatusAssigned, &newStation, nil)
	require.NoError(t, err)

	kitchenRepo := new(MockKitchenOrderRepository)
	stationRepo := new(MockStationRepository)
	contractRepo := new(MockContractRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("KitchenOrderRepository").Return(kitchenRepo)
	uow.On("StationRepository").Return(stationRepo)
	uow.On("ContractRepository").Return(contractRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	kitchenRepo.On("Get", mock.Anything, tenantID, aggregate.ID()).Return(aggregate, nil)
	kitchenRepo.On("UpdateStatus", mock.Anything, aggregate).Return(nil)
	stationRepo.On("AdjustLoad", mock.Anything, tenantID, oldStation, -1).Return(true, nil)
	stationRepo.On("AdjustLoad", mock.Anything, tenantID, newStation, 1).Return(true, nil)

	bus := new(MockEventBus)
	bus.On("Publish", mock.Anything, mock.Anything)

	factory := new(MockOrchestrationUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUpdateKitchenOrderStatusCommandHandler(
		factory, services.NewStatusMapper(), bus, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, newStation, *aggregate.StationID())
	stationRepo.AssertCalled(t, "AdjustLoad", mock.Anything, tenantID, oldStation, -1)
	stationRepo.AssertCalled(t, "AdjustLoad", mock.Anything, tenantID, newStation, 1)
	contractRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateKitchenOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	aggregate := kitchenOrderInStatus(t, tenantID, kitchenorder.StatusCompleted, nil, kitchenorder.ItemStatusCompleted, 1)

	cmd, err := commands.NewUpdateKitchenOrderStatusCommand(
		aggregate.ID(), tenantID, kitchenorder.StatusPreparing, nil, nil)
	require.NoError(t, err)

	kitchenRepo := new(MockKitchenOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("KitchenOrderRepository").Return(kitchenRepo)
	uow.On("Rollback", ctx).Return(nil)
	kitchenRepo.On("Get", mock.Anything, tenantID, aggregate.ID()).Return(aggregate, nil)

	bus := new(MockEventBus)
	factory := new(MockOrchestrationUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUpdateKitchenOrderStatusCommandHandler(
		factory, services.NewStatusMapper(), bus, discardLogger())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidTransition)
	kitchenRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)

	_, err = commands.NewUpdateKitchenOrderStatusCommand(
		aggregate.ID(), tenantID, kitchenorder.StatusAssigned, nil, nil)
	require.ErrorIs(t, err, commands.ErrStationIsRequiredForAssignment)
}
