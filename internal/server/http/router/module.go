package router

import (
	"go.uber.org/fx"

	"github.com/digishoplabs/digishop/internal/app"
	"github.com/digishoplabs/digishop/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(func(facade *app.ShopFacade) handlers.ShopFacade { return facade }),
	fx.Provide(Setup),
)
