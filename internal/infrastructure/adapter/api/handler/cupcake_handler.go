package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/cupcakes/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cupcakes/internal/domain/port/core"
	"github.com/amirhossein-jamali/cupcakes/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cupcakes/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// CupcakeHandler handles the /api/cupcakes endpoints
type CupcakeHandler struct {
	cupcakeService usecase.CupcakeUseCase
	logger         coreport.Logger
}

// NewCupcakeHandler creates a new cupcake handler instance
func NewCupcakeHandler(cupcakeService usecase.CupcakeUseCase, logger coreport.Logger) *CupcakeHandler {
	return &CupcakeHandler{
		cupcakeService: cupcakeService,
		logger:         logger,
	}
}

// List handles GET /api/cupcakes
func (h *CupcakeHandler) List(c *gin.Context) {
	cupcakes, err := h.cupcakeService.ListCupcakes(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCupcakeListResponse(cupcakes))
}

// Create handles POST /api/cupcakes
func (h *CupcakeHandler) Create(c *gin.Context) {
	var req dto.CreateCupcakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, fmt.Errorf("%w: %s", domainerr.ErrInvalidRequest, err.Error()))
		return
	}

	cupcake, err := h.cupcakeService.CreateCupcake(c.Request.Context(), req.ToInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CupcakeEnvelope{Cupcake: dto.NewCupcakeResponse(cupcake)})
}

// Get handles GET /api/cupcakes/:id
func (h *CupcakeHandler) Get(c *gin.Context) {
	id, ok := h.cupcakeID(c)
	if !ok {
		return
	}

	cupcake, err := h.cupcakeService.GetCupcake(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CupcakeEnvelope{Cupcake: dto.NewCupcakeResponse(cupcake)})
}

// Update handles PATCH /api/cupcakes/:id
func (h *CupcakeHandler) Update(c *gin.Context) {
	id, ok := h.cupcakeID(c)
	if !ok {
		return
	}

	var req dto.UpdateCupcakeRequest
	// An empty body is a no-op update
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.respondError(c, fmt.Errorf("%w: %s", domainerr.ErrInvalidRequest, err.Error()))
		return
	}

	cupcake, err := h.cupcakeService.UpdateCupcake(c.Request.Context(), id, req.ToUpdate())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CupcakeEnvelope{Cupcake: dto.NewCupcakeResponse(cupcake)})
}

// Delete handles DELETE /api/cupcakes/:id
func (h *CupcakeHandler) Delete(c *gin.Context) {
	id, ok := h.cupcakeID(c)
	if !ok {
		return
	}

	if err := h.cupcakeService.DeleteCupcake(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Deleted"})
}

// cupcakeID parses the :id path parameter. Ids are bigserial, so anything that
// is not a positive int64 cannot address a cupcake and is answered with 404.
func (h *CupcakeHandler) cupcakeID(c *gin.Context) (uint64, bool) {
	idParam := c.Param("id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || id <= 0 {
		h.logger.Debug("Invalid cupcake ID", map[string]any{
			"id": idParam,
		})
		h.respondError(c, domainerr.ErrInvalidCupcakeID)
		return 0, false
	}
	return uint64(id), true
}

func (h *CupcakeHandler) respondError(c *gin.Context, err error) {
	status, body := dto.NewErrorResponse(err)
	switch {
	case status >= http.StatusInternalServerError:
		_ = c.Error(err)
		h.logger.Error("Cupcake request failed", domainerr.LogFields(err))
	case domainerr.IsValidationError(err):
		h.logger.Debug("Invalid cupcake request", domainerr.LogFields(err))
	}
	c.JSON(status, body)
}
