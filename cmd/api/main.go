package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	coreport "github.com/amirhossein-jamali/cupcakes/internal/domain/port/core"
	cupcakeUseCase "github.com/amirhossein-jamali/cupcakes/internal/domain/usecase/cupcake"

	"github.com/amirhossein-jamali/cupcakes/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/cupcakes/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/cupcakes/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/cupcakes/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/cupcakes/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/cupcakes/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/cupcakes/internal/infrastructure/adapter/metrics"
	timeProvider "github.com/amirhossein-jamali/cupcakes/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/cupcakes/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const startupTimeout = 60 * time.Second

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Flush()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Service stopped with error", map[string]any{
			"error": err.Error(),
		})
		appLogger.Flush()
		os.Exit(1)
	}
}

// run builds every component, serves until SIGINT/SIGTERM and shuts down gracefully
func run(cfg *config.Config, appLogger coreport.Logger) error {
	tp := timeProvider.NewRealTimeProvider()

	var appMetrics *metrics.Metrics
	var dbOpts []database.ManagerOption
	if cfg.Metrics.Enabled {
		appMetrics = metrics.NewMetrics(metrics.WithNamespace(cfg.Metrics.Namespace))
		dbOpts = append(dbOpts,
			database.WithPoolStatsRecorder(appMetrics),
			database.WithQueryObserver(appMetrics),
		)
	}

	dbConfig := database.CreateConfigFromViperConfig(cfg)
	dbManager := database.NewManager(dbConfig, appLogger, tp, dbOpts...)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), startupTimeout)
	defer cancelStartup()

	if _, err := dbManager.Connect(startupCtx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	if err := dbManager.MigrationManager().MigrateAll(startupCtx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	uow := dbManager.CreateUnitOfWork()
	cupcakeService := cupcakeUseCase.NewCupcakeUseCase(uow, tp, appLogger)

	if cfg.App.SeedOnStart {
		if err := migration.SeedDefaultCupcakes(startupCtx, cupcakeService, appLogger); err != nil {
			appLogger.Error("Failed to seed cupcakes", map[string]any{
				"error": err.Error(),
			})
		}
	}

	cupcakeHandler := handler.NewCupcakeHandler(cupcakeService, appLogger)
	healthHandler := handler.NewHealthHandler(dbManager, appLogger)

	router := gin.New()

	middlewareOpts := routes.MiddlewareOptions{AllowedOrigins: cfg.Server.AllowedOrigins}
	if appMetrics != nil {
		middlewareOpts.Metrics = appMetrics
	}

	if cfg.RateLimit.Enabled {
		redisClient, err := cache.NewRedisClient(startupCtx, cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			// Serving without a limiter beats not serving at all
			appLogger.Warn("Rate limiting disabled, redis unavailable", map[string]any{
				"error": err.Error(),
				"addr":  cfg.Redis.Addr,
			})
		} else {
			defer closeRedis(redisClient, appLogger)
			middlewareOpts.RateLimit = &routes.RateLimitOptions{
				Counter: cache.NewRedisRateCounter(redisClient),
				Limit:   int64(cfg.RateLimit.Requests),
				Window:  cfg.RateLimit.Window,
			}
		}
	}

	routes.SetupMiddlewares(router, appLogger, middlewareOpts)
	routes.SetupRoutes(router, cupcakeHandler, healthHandler)
	if appMetrics != nil {
		routes.SetupMetricsRoute(router, cfg.Metrics.Path, appMetrics.Handler())
	}

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":     server.Addr,
			"env":      cfg.Environment,
			"database": dbConfig.Target(),
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-quit:
		appLogger.Info("Shutting down server...", map[string]any{
			"signal": sig.String(),
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}

func closeRedis(client *redis.Client, appLogger coreport.Logger) {
	if err := client.Close(); err != nil {
		appLogger.Warn("Failed to close redis client", map[string]any{
			"error": err.Error(),
		})
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Path == "" {
		missingConfigs = append(missingConfigs, "metrics.path")
	}
	if cfg.RateLimit.Enabled {
		if cfg.Redis.Addr == "" {
			missingConfigs = append(missingConfigs, "redis.addr")
		}
		if cfg.RateLimit.Requests <= 0 {
			missingConfigs = append(missingConfigs, "rateLimit.requests")
		}
		if cfg.RateLimit.Window <= 0 {
			missingConfigs = append(missingConfigs, "rateLimit.window")
		}
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if err := database.CreateConfigFromViperConfig(cfg).Validate(); err != nil {
		return fmt.Errorf("invalid database configuration: %w", err)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if cfg.Database.URL == "" && sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}
		if cfg.App.SecretKey == "" {
			warnings = append(warnings, "app.secretKey (or SECRET_KEY) is not set")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
