package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	"kitchenops/internal/adapters/in/ws"
	"kitchenops/internal/adapters/out/eventbus"
	"kitchenops/internal/adapters/out/postgres"
	"kitchenops/internal/core/application/usecases/commands"
	"kitchenops/internal/core/application/usecases/queries"
	"kitchenops/internal/core/domain/services"
	"kitchenops/internal/core/ports"
	"kitchenops/internal/jobs"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	bus        ports.EventBus
	logger     *slog.Logger

	hub     *ws.Hub
	metrics *ws.Metrics
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	metrics := ws.NewMetrics()
	hub := ws.NewHub(logger, metrics)

	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		bus:        eventbus.NewInProcessEventBus(logger),
		logger:     logger,
		hub:        hub,
		metrics:    metrics,
	}

	ws.NewGateway(hub, root.bus, logger)

	return root
}

func (c *CompositionRoot) EventBus() ports.EventBus {
	return c.bus
}

func (c *CompositionRoot) Hub() *ws.Hub {
	return c.hub
}

func (c *CompositionRoot) Metrics() *ws.Metrics {
	return c.metrics
}

func (c *CompositionRoot) UnitOfWorkFactory() ports.UnitOfWorkFactory {
	return c.uowFactory
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	var f commands.ProductionUoWFactory = FuncProductionUoWFactory(func() commands.ProductionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderCommandHandler(f, services.NewContractFactory(), c.bus)
}

func (c *CompositionRoot) CreateCreateKitchenOrderCommandHandler() commands.CreateKitchenOrderCommandHandler {
	var f commands.KitchenUoWFactory = FuncKitchenUoWFactory(func() commands.KitchenUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateKitchenOrderCommandHandler(f, c.bus)
}

func (c *CompositionRoot) CreateAssignStationCommandHandler() commands.AssignStationCommandHandler {
	var f commands.OrchestrationUoWFactory = FuncOrchestrationUoWFactory(func() commands.OrchestrationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignStationCommandHandler(f, services.NewStationDispatcher(), c.bus)
}

func (c *CompositionRoot) CreateUpdateKitchenOrderStatusCommandHandler() commands.UpdateKitchenOrderStatusCommandHandler {
	var f commands.OrchestrationUoWFactory = FuncOrchestrationUoWFactory(func() commands.OrchestrationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateKitchenOrderStatusCommandHandler(f, services.NewStatusMapper(), c.bus, c.logger)
}

func (c *CompositionRoot) CreateUpdateKitchenOrderItemStatusCommandHandler() commands.UpdateKitchenOrderItemStatusCommandHandler {
	var f commands.OrchestrationUoWFactory = FuncOrchestrationUoWFactory(func() commands.OrchestrationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateKitchenOrderItemStatusCommandHandler(f, services.NewStatusMapper(), c.bus, c.logger)
}

func (c *CompositionRoot) CreateCreateStationCommandHandler() commands.CreateStationCommandHandler {
	var f commands.StationUoWFactory = FuncStationUoWFactory(func() commands.StationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStationCommandHandler(f)
}

func (c *CompositionRoot) CreateGetStationsQueryHandler() queries.GetStationsQueryHandler {
	return queries.NewGetStationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveKitchenOrdersQueryHandler() queries.GetActiveKitchenOrdersQueryHandler {
	return queries.NewGetActiveKitchenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.uowFactory, c.CreateAssignStationCommandHandler(), c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductionUoWFactory func() commands.ProductionUoW

func (f FuncProductionUoWFactory) Create() commands.ProductionUoW {
	return f()
}

type FuncKitchenUoWFactory func() commands.KitchenUoW

func (f FuncKitchenUoWFactory) Create() commands.KitchenUoW {
	return f()
}

type FuncOrchestrationUoWFactory func() commands.OrchestrationUoW

func (f FuncOrchestrationUoWFactory) Create() commands.OrchestrationUoW {
	return f()
}

type FuncStationUoWFactory func() commands.StationUoW

func (f FuncStationUoWFactory) Create() commands.StationUoW {
	return f()
}
