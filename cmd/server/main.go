package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"taxi/internal/app"
	"taxi/internal/config"
	"taxi/internal/handler"
	"taxi/internal/logger"
	internalRedis "taxi/internal/redis"
	"taxi/internal/repository/postgres"
	"taxi/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	log, err := logger.New(cfg.Log.ServiceName, cfg.Log.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic first so the database driver can be instrumented.
	var nrApp *newrelic.Application
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Warn("failed to initialize New Relic", zap.Error(err))
			nrApp = nil
		} else {
			log.Info("New Relic enabled", zap.String("app", cfg.NewRelic.AppName))
		}
	}

	// Initialize database and apply migrations.
	db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	log.Info("connected to PostgreSQL")

	// Initialize Redis.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()
	log.Info("connected to Redis")

	// Wire dependencies.
	server := wireServer(db, redisClient, nrApp, cfg, log)

	// Start server in goroutine.
	go func() {
		log.Info("starting server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config, log *zap.Logger) *http.Server {
	// Initialize Redis cache store.
	cacheStore := internalRedis.NewCacheStore(redisClient)

	// Initialize repositories.
	clientRepo := postgres.NewClientRepository(db)
	driverRepo := postgres.NewDriverRepository(db)
	orderRepo := postgres.NewOrderRepository(db)

	// Initialize services.
	clientService := service.NewClientService(clientRepo, cacheStore)
	driverService := service.NewDriverService(driverRepo, cacheStore)
	orderService := service.NewOrderService(db, orderRepo, cacheStore)

	// Initialize handlers.
	clientHandler := handler.NewClientHandler(clientService)
	driverHandler := handler.NewDriverHandler(driverService)
	orderHandler := handler.NewOrderHandler(orderService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		ClientHandler: clientHandler,
		DriverHandler: driverHandler,
		OrderHandler:  orderHandler,
		RedisClient:   redisClient,
		NewRelicApp:   nrApp,
		Logger:        log,
	})

	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
