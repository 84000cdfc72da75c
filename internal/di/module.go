package di

import (
	"go.uber.org/fx"

	"github.com/digishoplabs/digishop/internal/adapter/images"
	"github.com/digishoplabs/digishop/internal/app"
	"github.com/digishoplabs/digishop/internal/config"
	"github.com/digishoplabs/digishop/internal/logger"
	"github.com/digishoplabs/digishop/internal/pkg/auth"
	"github.com/digishoplabs/digishop/internal/server/http/router"
	"github.com/digishoplabs/digishop/internal/storage/postgres"
	"github.com/digishoplabs/digishop/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		images.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
