package di

import (
	"github.com/polkiloo/foodrush/internal/app"
	"github.com/polkiloo/foodrush/internal/config"
	"github.com/polkiloo/foodrush/internal/logger"
	"github.com/polkiloo/foodrush/internal/pkg/auth"
	"github.com/polkiloo/foodrush/internal/server/http/handlers"
	"github.com/polkiloo/foodrush/internal/server/http/router"
	"github.com/polkiloo/foodrush/internal/storage/postgres"
	"github.com/polkiloo/foodrush/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(facade *app.DashboardFacade) handlers.DashboardFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
