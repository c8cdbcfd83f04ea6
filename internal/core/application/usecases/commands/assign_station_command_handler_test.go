package commands_test

import (
	"testing"

	"kitchenops/internal/core/application/usecases/commands"
	"kitchenops/internal/core/domain/events"
	"kitchenops/internal/core/domain/model/contract"
	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/core/domain/model/kitchenorder"
	"kitchenops/internal/core/domain/model/station"
	"kitchenops/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignStationCommandHandler_Handle_FirstAssignment(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	aggregate := kitchenOrderInStatus(t, tenantID, kitchenorder.StatusPending, nil, kitchenorder.ItemStatusPending, 1)
	productionContract := contractInStatus(t, tenantID, contract.StatusPending, nil)
	grill := activeStation(t, tenantID, station.TypeGrill, 3, 1)

	cmd, err := commands.NewAssignStationCommand(aggregate.ID(), tenantID)
	require.NoError(t, err)

	kitchenRepo := new(MockKitchenOrderRepository)
	stationRepo := new(MockStationRepository)
	contractRepo := new(MockContractRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("KitchenOrderRepository").Return(kitchenRepo).Once(),
		kitchenRepo.On("Get", mock.Anything, tenantID, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("StationRepository").Return(stationRepo).Once(),
		stationRepo.On("GetActive", mock.Anything, tenantID).
			Return([]*station.Station{grill}, nil).Once(),
		stationRepo.On("AdjustLoad", mock.Anything, tenantID, grill.ID(), 1).
			Return(true, nil).Once(),
		kitchenRepo.On("UpdateStatus", mock.Anything, aggregate).Return(nil).Once(),
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
			require.Equal(t, kitchenorder.StatusPending.String(), event.PreviousStatus)
			require.Equal(t, kitchenorder.StatusAssigned.String(), event.NewStatus)
			require.NotNil(t, event.AssignedStation)
			require.Equal(t, grill.ID(), *event.AssignedStation)
		}).Once()

	factory := new(MockOrchestrationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignStationCommandHandler(factory, services.NewStationDispatcher(), bus)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, kitchenorder.StatusAssigned, aggregate.Status())
	require.NotNil(t, aggregate.StationID())
	require.Equal(t, grill.ID(), *aggregate.StationID())
	require.Equal(t, contract.StatusAssigned, productionContract.Status())
	bus.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignStationCommandHandler_Handle_Reassignment(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	previous := kernel.NewUUID()
	aggregate := kitchenOrderInStatus(t, tenantID, kitchenorder.StatusAssigned, &previous, kitchenorder.ItemStatusPending, 1)
	fryer := activeStation(t, tenantID, station.TypeFryer, 3, 0)

	cmd, err := commands.NewAssignStationCommand(aggregate.ID(), tenantID)
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
	stationRepo.On("GetActive", mock.Anything, tenantID).Return([]*station.Station{fryer}, nil)
	stationRepo.On("AdjustLoad", mock.Anything, tenantID, fryer.ID(), 1).Return(true, nil)
	stationRepo.On("AdjustLoad", mock.Anything, tenantID, previous, -1).Return(true, nil)
	kitchenRepo.On("UpdateStatus", mock.Anything, aggregate).Return(nil)

	bus := new(MockEventBus)
	bus.On("Publish", mock.Anything, mock.Anything)

	factory := new(MockOrchestrationUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewAssignStationCommandHandler(factory, services.NewStationDispatcher(), bus)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, fryer.ID(), *aggregate.StationID())
	stationRepo.AssertCalled(t, "AdjustLoad", mock.Anything, tenantID, previous, -1)
	contractRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "ContractRepository")
}

func TestAssignStationCommandHandler_Handle_NoCandidates(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	aggregate := kitchenOrderInStatus(t, tenantID, kitchenorder.StatusPending, nil, kitchenorder.ItemStatusPending, 1)
	full := activeStation(t, tenantID, station.TypeGrill, 2, 2)

	cmd, err := commands.NewAssignStationCommand(aggregate.ID(), tenantID)
	require.NoError(t, err)

	kitchenRepo := new(MockKitchenOrderRepository)
	stationRepo := new(MockStationRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("KitchenOrderRepository").Return(kitchenRepo)
	uow.On("StationRepository").Return(stationRepo)
	uow.On("Rollback", ctx).Return(nil)
	kitchenRepo.On("Get", mock.Anything, tenantID, aggregate.ID()).Return(aggregate, nil)
	stationRepo.On("GetActive", mock.Anything, tenantID).Return([]*station.Station{full}, nil)

	bus := new(MockEventBus)
	factory := new(MockOrchestrationUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewAssignStationCommandHandler(factory, services.NewStationDispatcher(), bus)
	require.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrNoStationAvailable)

	require.Equal(t, kitchenorder.StatusPending, aggregate.Status())
	stationRepo.AssertNotCalled(t, "AdjustLoad", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestAssignStationCommandHandler_Handle_LostLoadRace(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	aggregate := kitchenOrderInStatus(t, tenantID, kitchenorder.StatusPending, nil, kitchenorder.ItemStatusPending, 1)
	grill := activeStation(t, tenantID, station.TypeGrill, 2, 1)

	cmd, err := commands.NewAssignStationCommand(aggregate.ID(), tenantID)
	require.NoError(t, err)

	kitchenRepo := new(MockKitchenOrderRepository)
	stationRepo := new(MockStationRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("KitchenOrderRepository").Return(kitchenRepo)
	uow.On("StationRepository").Return(stationRepo)
	uow.On("Rollback", ctx).Return(nil)
	kitchenRepo.On("Get", mock.Anything, tenantID, aggregate.ID()).Return(aggregate, nil)
	stationRepo.On("GetActive", mock.Anything, tenantID).Return([]*station.Station{grill}, nil)
	stationRepo.On("AdjustLoad", mock.Anything, tenantID, grill.ID(), 1).Return(false, nil)

	bus := new(MockEventBus)
	factory := new(MockOrchestrationUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewAssignStationCommandHandler(factory, services.NewStationDispatcher(), bus)
	require.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrNoStationAvailable)

	kitchenRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
