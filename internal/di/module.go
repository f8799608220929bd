package di

import (
	"github.com/tapnote/tapnote/internal/adapter/directory"
	"github.com/tapnote/tapnote/internal/app"
	"github.com/tapnote/tapnote/internal/config"
	"github.com/tapnote/tapnote/internal/logger"
	"github.com/tapnote/tapnote/internal/pkg/auth"
	"github.com/tapnote/tapnote/internal/server/http/handlers"
	"github.com/tapnote/tapnote/internal/server/http/router"
	"github.com/tapnote/tapnote/internal/storage/postgres"
	"github.com/tapnote/tapnote/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		directory.Module,
		usecase.Module,
		fx.Provide(func(client directory.Client) app.DirectoryProvider { return client }),
		fx.Provide(func(f *app.BreweryFacade) handlers.BreweryFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
