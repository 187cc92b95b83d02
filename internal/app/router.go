package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"taxi/internal/handler"
	"taxi/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	ClientHandler *handler.ClientHandler
	DriverHandler *handler.DriverHandler
	OrderHandler  *handler.OrderHandler
	RedisClient   *redis.Client
	NewRelicApp   *newrelic.Application
	Logger        *zap.Logger
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	// Request bodies follow an exact-shape contract: unknown keys are a
	// validation failure, not a silently ignored extra.
	gin.EnableJsonDecoderDisallowUnknownFields()

	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(deps.Logger))

	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	if deps.RedisClient != nil {
		router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Client routes.
	clients := router.Group("/clients")
	{
		clients.POST("", deps.ClientHandler.CreateClient)
		clients.GET("/:id", deps.ClientHandler.GetClient)
		clients.DELETE("/:id", deps.ClientHandler.DeleteClient)
	}

	// Driver routes.
	drivers := router.Group("/drivers")
	{
		drivers.POST("", deps.DriverHandler.CreateDriver)
		drivers.GET("/:id", deps.DriverHandler.GetDriver)
		drivers.DELETE("/:id", deps.DriverHandler.DeleteDriver)
	}

	// Order routes. Orders are never deleted.
	orders := router.Group("/orders")
	{
		orders.POST("", deps.OrderHandler.CreateOrder)
		orders.GET("/:id", deps.OrderHandler.GetOrder)
		orders.PUT("/:id", deps.OrderHandler.UpdateOrder)
	}

	return router
}
