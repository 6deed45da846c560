package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/foodrush/internal/server/http/handlers"
	"github.com/polkiloo/foodrush/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.DashboardFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	driverHandler := handlers.NewDriverHandler(facade)
	restaurantHandler := handlers.NewRestaurantHandler(facade)
	customerHandler := handlers.NewCustomerHandler(facade)
	settingsHandler := handlers.NewSettingsHandler(facade)
	analyticsHandler := handlers.NewAnalyticsHandler(facade)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/token", authHandler.Token)
	auth.POST("/register", authHandler.Register)

	authUsers := auth.Group("/users")
	authUsers.Use(middleware.AuthRequired(facade))
	authUsers.GET("/me", authHandler.Me)
	authUsers.GET("", authHandler.ListUsers)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(facade))

	protected.GET("/orders", orderHandler.List)
	protected.POST("/orders", orderHandler.Create)
	protected.GET("/orders/:id", orderHandler.Get)
	protected.PUT("/orders/:id/status", orderHandler.UpdateStatus)
	protected.PUT("/orders/:id/assign-driver", orderHandler.AssignDriver)

	protected.GET("/drivers", driverHandler.List)
	protected.POST("/drivers", driverHandler.Create)
	protected.GET("/drivers/:id", driverHandler.Get)
	protected.PUT("/drivers/:id", driverHandler.Update)
	protected.DELETE("/drivers/:id", driverHandler.Delete)

	protected.GET("/restaurants", restaurantHandler.List)
	protected.POST("/restaurants", restaurantHandler.Create)
	protected.GET("/restaurants/:id", restaurantHandler.Get)
	protected.PUT("/restaurants/:id", restaurantHandler.Update)
	protected.DELETE("/restaurants/:id", restaurantHandler.Delete)

	protected.GET("/customers", customerHandler.List)
	protected.POST("/customers", customerHandler.Create)
	protected.GET("/customers/:id", customerHandler.Get)
	protected.PUT("/customers/:id", customerHandler.Update)
	protected.DELETE("/customers/:id", customerHandler.Delete)

	protected.GET("/settings", settingsHandler.Get)
	protected.POST("/settings", settingsHandler.Update)

	protected.GET("/analytics/dashboard", analyticsHandler.Dashboard)
	protected.POST("/analytics/sales", analyticsHandler.Sales)

	return engine
}
