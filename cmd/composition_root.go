package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	"bestcat/internal/adapters/out/kafka"
	"bestcat/internal/adapters/out/postgres"
	"bestcat/internal/core/application/usecases/commands"
	"bestcat/internal/core/application/usecases/queries"
	"bestcat/internal/core/ports"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  kafka.NewOrderEventPublisher(configs.KafkaHost, configs.KafkaOrderChangedTopic),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderingUoWFactory = FuncOrderingUoWFactory(func() commands.OrderingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddOrderItemCommandHandler() commands.AddOrderItemCommandHandler {
	var f commands.OrderingUoWFactory = FuncOrderingUoWFactory(func() commands.OrderingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOrderItemCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() commands.CancelStaleOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelStaleOrdersCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCreateStoreCommandHandler() commands.CreateStoreCommandHandler {
	var f commands.StoreUoWFactory = FuncStoreUoWFactory(func() commands.StoreUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStoreCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateStoreCommandHandler() commands.UpdateStoreCommandHandler {
	var f commands.StoreUoWFactory = FuncStoreUoWFactory(func() commands.StoreUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateStoreCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteStoreCommandHandler() commands.DeleteStoreCommandHandler {
	var f commands.StoreUoWFactory = FuncStoreUoWFactory(func() commands.StoreUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteStoreCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateAreaCommandHandler() commands.CreateAreaCommandHandler {
	var f commands.AreaUoWFactory = FuncAreaUoWFactory(func() commands.AreaUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAreaCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateAreaCommandHandler() commands.UpdateAreaCommandHandler {
	var f commands.AreaUoWFactory = FuncAreaUoWFactory(func() commands.AreaUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateAreaCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteAreaCommandHandler() commands.DeleteAreaCommandHandler {
	var f commands.AreaUoWFactory = FuncAreaUoWFactory(func() commands.AreaUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteAreaCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMenuCommandHandler() commands.CreateMenuCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMenuCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordAiLogCommandHandler() commands.RecordAiLogCommandHandler {
	var f commands.AiLogUoWFactory = FuncAiLogUoWFactory(func() commands.AiLogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordAiLogCommandHandler(f)
}

func (c *CompositionRoot) CreateSearchStoresQueryHandler() queries.SearchStoresQueryHandler {
	return queries.NewSearchStoresQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchAreasQueryHandler() queries.SearchAreasQueryHandler {
	return queries.NewSearchAreasQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderingUoWFactory func() commands.OrderingUoW

func (f FuncOrderingUoWFactory) Create() commands.OrderingUoW {
	return f()
}

type FuncStoreUoWFactory func() commands.StoreUoW

func (f FuncStoreUoWFactory) Create() commands.StoreUoW {
	return f()
}

type FuncAreaUoWFactory func() commands.AreaUoW

func (f FuncAreaUoWFactory) Create() commands.AreaUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncAiLogUoWFactory func() commands.AiLogUoW

func (f FuncAiLogUoWFactory) Create() commands.AiLogUoW {
	return f()
}
