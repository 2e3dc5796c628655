package handler

import (
	"context"
	"net/http"

	coreport "github.com/amirhossein-jamali/cupcakes/internal/domain/port/core"
	"github.com/amirhossein-jamali/cupcakes/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness checks
type HealthHandler struct {
	database Pinger
	logger   coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(database Pinger, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		database: database,
		logger:   logger,
	}
}

// Check handles GET /healthz
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.database.Ping(c.Request.Context()); err != nil {
		h.logger.Warn("Health check failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable"})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
