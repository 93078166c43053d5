package cmd

import (
	"foodrescue/internal/adapters/out/postgres"
	"foodrescue/internal/core/application/usecases/commands"
	"foodrescue/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderStatusUoWFactory = FuncOrderStatusUoWFactory(func() commands.OrderStatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateExpirePendingOrdersCommandHandler() commands.ExpirePendingOrdersCommandHandler {
	var f commands.ExpiryUoWFactory = FuncExpiryUoWFactory(func() commands.ExpiryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpirePendingOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBusinessOrdersQueryHandler() queries.GetBusinessOrdersQueryHandler {
	return queries.NewGetBusinessOrdersQueryHandler(c.gormDB)
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncOrderStatusUoWFactory func() commands.OrderStatusUoW

func (f FuncOrderStatusUoWFactory) Create() commands.OrderStatusUoW {
	return f()
}

type FuncExpiryUoWFactory func() commands.ExpiryUoW

func (f FuncExpiryUoWFactory) Create() commands.ExpiryUoW {
	return f()
}
