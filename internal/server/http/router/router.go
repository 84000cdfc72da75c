package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/digishoplabs/digishop/internal/server/http/dto"
	"github.com/digishoplabs/digishop/internal/server/http/handlers"
	"github.com/digishoplabs/digishop/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ShopFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	userHandler := handlers.NewUserHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	hello := func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.OK("digishop api"))
	}
	engine.GET("/", hello)

	api := engine.Group("/api")
	api.GET("", hello)

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)
	user.POST("/admin", authHandler.AdminLogin)

	userAdmin := user.Group("")
	userAdmin.Use(middleware.AuthRequired(facade), middleware.AdminRequired())
	userAdmin.GET("/list", userHandler.List)
	userAdmin.PUT("/update", userHandler.Update)
	userAdmin.POST("/remove", userHandler.Remove)

	product := api.Group("/product")
	product.GET("/list", productHandler.List)
	product.GET("/single", productHandler.Single)
	product.GET("/search", productHandler.Search)

	productAdmin := product.Group("")
	productAdmin.Use(middleware.AuthRequired(facade), middleware.AdminRequired())
	productAdmin.POST("/add", productHandler.Add)
	productAdmin.POST("/remove", productHandler.Remove)

	order := api.Group("/order")
	order.Use(middleware.AuthRequired(facade))
	order.POST("/create", orderHandler.Create)
	order.GET("/user/:userId", orderHandler.ListForUser)
	order.POST("/cancel", orderHandler.Cancel)

	orderAdmin := order.Group("")
	orderAdmin.Use(middleware.AdminRequired())
	orderAdmin.GET("/", orderHandler.ListAll)
	orderAdmin.PUT("/", orderHandler.SetStatus)

	return engine
}
