package routes

import (
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/cupcakes/internal/domain/port/core"
	"github.com/amirhossein-jamali/cupcakes/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/cupcakes/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// MiddlewareOptions selects the optional middlewares
type MiddlewareOptions struct {
	AllowedOrigins []string

	// Metrics is skipped when nil
	Metrics middleware.HTTPRecorder

	// RateLimit is skipped when nil
	RateLimit *RateLimitOptions
}

// RateLimitOptions configures the per-client fixed window limiter
type RateLimitOptions struct {
	Counter middleware.RateCounter
	Limit   int64
	Window  time.Duration
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	cupcakeHandler *handler.CupcakeHandler,
	healthHandler *handler.HealthHandler,
) {
	cupcakeRoutes := router.Group("/api/cupcakes")
	{
		cupcakeRoutes.GET("", cupcakeHandler.List)
		cupcakeRoutes.POST("", cupcakeHandler.Create)
		cupcakeRoutes.GET("/:id", cupcakeHandler.Get)
		cupcakeRoutes.PATCH("/:id", cupcakeHandler.Update)
		cupcakeRoutes.DELETE("/:id", cupcakeHandler.Delete)
	}

	router.GET("/healthz", healthHandler.Check)
}

// SetupMetricsRoute exposes the prometheus handler on path
func SetupMetricsRoute(router *gin.Engine, path string, metricsHandler http.Handler) {
	router.GET(path, gin.WrapH(metricsHandler))
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, opts MiddlewareOptions) {
	// Order matters: the request id must exist before anything logs
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	if opts.Metrics != nil {
		router.Use(middleware.Metrics(opts.Metrics))
	}
	router.Use(middleware.CORS(opts.AllowedOrigins))
	if opts.RateLimit != nil {
		router.Use(middleware.RateLimiter(opts.RateLimit.Counter, opts.RateLimit.Limit, opts.RateLimit.Window, logger))
	}
}
