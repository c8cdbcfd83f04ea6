package commands_test

import (
	"context"

	"kitchenops/internal/core/application/usecases/commands"
	"kitchenops/internal/core/domain/events"
	"kitchenops/internal/core/domain/model/contract"
	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/core/domain/model/kitchenorder"
	"kitchenops/internal/core/domain/model/order"
	"kitchenops/internal/core/domain/model/station"
	"kitchenops/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockContractRepository struct{ mock.Mock }

func (m *MockContractRepository) Add(ctx context.Context, c *contract.ProductionContract) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockContractRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*contract.ProductionContract, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contract.ProductionContract), args.Error(1)
}
func (m *MockContractRepository) GetByOrderID(ctx context.Context, tenantID, orderID kernel.UUID) (*contract.ProductionContract, error) {
	args := m.Called(ctx, tenantID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contract.ProductionContract), args.Error(1)
}
func (m *MockContractRepository) Update(ctx context.Context, c *contract.ProductionContract) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type MockKitchenOrderRepository struct{ mock.Mock }

func (m *MockKitchenOrderRepository) Add(ctx context.Context, ko *kitchenorder.KitchenOrder) error {
	args := m.Called(ctx, ko)
	return args.Error(0)
}
func (m *MockKitchenOrderRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*kitchenorder.KitchenOrder, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kitchenorder.KitchenOrder), args.Error(1)
}
func (m *MockKitchenOrderRepository) GetByOrderID(ctx context.Context, tenantID, orderID kernel.UUID) (*kitchenorder.KitchenOrder, error) {
	args := m.Called(ctx, tenantID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kitchenorder.KitchenOrder), args.Error(1)
}
func (m *MockKitchenOrderRepository) GetAllUnassigned(ctx context.Context) ([]*kitchenorder.KitchenOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*kitchenorder.KitchenOrder), args.Error(1)
}
func (m *MockKitchenOrderRepository) UpdateStatus(ctx context.Context, ko *kitchenorder.KitchenOrder) error {
	args := m.Called(ctx, ko)
	return args.Error(0)
}
func (m *MockKitchenOrderRepository) UpdateItemStatus(ctx context.Context, ko *kitchenorder.KitchenOrder, itemID kernel.UUID) error {
	args := m.Called(ctx, ko, itemID)
	return args.Error(0)
}

type MockStationRepository struct{ mock.Mock }

func (m *MockStationRepository) Add(ctx context.Context, s *station.Station) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockStationRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*station.Station, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*station.Station), args.Error(1)
}
func (m *MockStationRepository) GetAll(ctx context.Context, tenantID kernel.UUID) ([]*station.Station, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*station.Station), args.Error(1)
}
func (m *MockStationRepository) GetActive(ctx context.Context, tenantID kernel.UUID) ([]*station.Station, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*station.Station), args.Error(1)
}
func (m *MockStationRepository) AdjustLoad(ctx context.Context, tenantID, id kernel.UUID, delta int) (bool, error) {
	args := m.Called(ctx, tenantID, id, delta)
	return args.Bool(0), args.Error(1)
}
func (m *MockStationRepository) SetActive(ctx context.Context, s *station.Station) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockEventBus struct{ mock.Mock }

func (m *MockEventBus) Publish(ctx context.Context, event events.Event) {
	m.Called(ctx, event)
}
func (m *MockEventBus) Subscribe(eventType string, handler ports.EventHandler) {
	m.Called(eventType, handler)
}

// MockUoW satisfies every per-shape unit of work interface the command
// handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) ContractRepository() ports.ContractRepository {
	args := m.Called()
	return args.Get(0).(ports.ContractRepository)
}
func (m *MockUoW) KitchenOrderRepository() ports.KitchenOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.KitchenOrderRepository)
}
func (m *MockUoW) StationRepository() ports.StationRepository {
	args := m.Called()
	return args.Get(0).(ports.StationRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockProductionUoWFactory struct{ mock.Mock }

func (m *MockProductionUoWFactory) Create() commands.ProductionUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductionUoW)
}

type MockKitchenUoWFactory struct{ mock.Mock }

func (m *MockKitchenUoWFactory) Create() commands.KitchenUoW {
	args := m.Called()
	return args.Get(0).(commands.KitchenUoW)
}

type MockOrchestrationUoWFactory struct{ mock.Mock }

func (m *MockOrchestrationUoWFactory) Create() commands.OrchestrationUoW {
	args := m.Called()
	return args.Get(0).(commands.OrchestrationUoW)
}

type MockStationUoWFactory struct{ mock.Mock }

func (m *MockStationUoWFactory) Create() commands.StationUoW {
	args := m.Called()
	return args.Get(0).(commands.StationUoW)
}
