package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amirhossein-jamali/cupcakes/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/cupcakes/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cupcakes/internal/domain/port/core"
	"github.com/amirhossein-jamali/cupcakes/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cupcakes/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/cupcakes/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/cupcakes/mocks/port/core"
	usecasemocks "github.com/amirhossein-jamali/cupcakes/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(cupcakeService usecase.CupcakeUseCase) *gin.Engine {
	return newTestRouterWithLogger(cupcakeService, logger.NewNoopLogger())
}

func newTestRouterWithLogger(cupcakeService usecase.CupcakeUseCase, log coreport.Logger) *gin.Engine {
	h := NewCupcakeHandler(cupcakeService, log)

	router := gin.New()
	api := router.Group("/api/cupcakes")
	api.GET("", h.List)
	api.POST("", h.Create)
	api.GET("/:id", h.Get)
	api.PATCH("/:id", h.Update)
	api.DELETE("/:id", h.Delete)
	return router
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func vanilla() *entity.Cupcake {
	return &entity.Cupcake{ID: 1, Flavor: "Vanilla", Size: "Large", Rating: 8, Image: "http://x/y.jpg"}
}

func TestCupcakeHandlerList(t *testing.T) {
	t.Run("Returns cupcakes", func(t *testing.T) {
		uc := usecasemocks.NewMockCupcakeUseCase(t)
		uc.EXPECT().ListCupcakes(mock.Anything).Return([]*entity.Cupcake{vanilla()}, nil).Once()

		w := doRequest(newTestRouter(uc), http.MethodGet, "/api/cupcakes", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"cupcakes":[{"id":1,"flavor":"Vanilla","size":"Large","rating":8,"image":"http://x/y.jpg"}]}`, w.Body.String())
	})

	t.Run("Empty store returns an empty array", func(t *testing.T) {
		uc := usecasemocks.NewMockCupcakeUseCase(t)
		uc.EXPECT().ListCupcakes(mock.Anything).Return([]*entity.Cupcake{}, nil).Once()

		w := doRequest(newTestRouter(uc), http.MethodGet, "/api/cupcakes", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"cupcakes":[]}`, w.Body.String())
	})

	t.Run("Database failure returns 503", func(t *testing.T) {
		uc := usecasemocks.NewMockCupcakeUseCase(t)
		uc.EXPECT().ListCupcakes(mock.Anything).Return(nil, domainerr.ErrDatabaseConnection).Once()

		w := doRequest(newTestRouter(uc), http.MethodGet, "/api/cupcakes", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, domainerr.CodeDatabaseUnavailable, decodeError(t, w).Code)
	})
}

func TestCupcakeHandlerCreate(t *testing.T) {
	t.Run("Creates a cupcake", func(t *testing.T) {
		uc := usecasemocks.NewMockCupcakeUseCase(t)
		uc.EXPECT().CreateCupcake(mock.Anything, mock.MatchedBy(func(input usecase.CreateCupcakeInput) bool {
			return *input.Flavor == "Vanilla" && *input.Size == "Large" && *input.Rating == 8 && *input.Image == "http://x/y.jpg"
		})).Return(vanilla(), nil).Once()

		w := doRequest(newTestRouter(uc), http.MethodPost, "/api/cupcakes",
			`{"flavor":"Vanilla","size":"Large","rating":8,"image":"http://x/y.jpg"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"cupcake":{"id":1,"flavor":"Vanilla","size":"Large","rating":8,"image":"http://x/y.jpg"}}`, w.Body.String())
	})

	t.Run("Absent and null image reach the use case as nil", func(t *testing.T) {
		uc := usecasemocks.NewMockCupcakeUseCase(t)
		uc.EXPECT().CreateCupcake(mock.Anything, mock.MatchedBy(func(input usecase.CreateCupcakeInput) bool {
			return input.Image == nil
		})).Return(&entity.Cupcake{ID: 2, Flavor: "Cherry", Size: "Small", Rating: 5, Image: entity.DefaultImage}, nil).Twice()

		router := newTestRouter(uc)
		for _, body := range []string{
			`{"flavor":"Cherry","size":"Small","rating":5}`,
			`{"flavor":"Cherry","size":"Small","rating":5,"image":null}`,
		} {
			w := doRequest(router, http.MethodPost, "/api/cupcakes", body)
			assert.Equal(t, http.StatusCreated, w.Code)
			assert.Contains(t, w.Body.String(), entity.DefaultImage)
		}
	})

	t.Run("Missing field returns 400 with the field name", func(t *testing.T) {
		uc := usecasemocks.NewMockCupcakeUseCase(t)
		uc.EXPECT().CreateCupcake(mock.Anything, mock.Anything).
			Return(nil, domainerr.NewCupcakeError("create", 0, domainerr.NewMissingFieldError("rating"))).Once()

		w := doRequest(newTestRouter(uc), http.MethodPost, "/api/cupcakes", `{"flavor":"Vanilla","size":"Large"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, domainerr.CodeMissingField, body.Code)
		assert.Contains(t, body.Message, "rating")
	})

	t.Run("Rejected input is logged with its context", func(t *testing.T) {
		uc := usecasemocks.NewMockCupcakeUseCase(t)
		uc.EXPECT().CreateCupcake(mock.Anything, mock.Anything).
			Return(nil, domainerr.NewCupcakeError("create", 0, domainerr.NewMissingFieldError("size"))).Once()
		log := coremocks.NewMockLogger(t)
		log.EXPECT().Debug("Invalid cupcake request", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["operation"] == "create" && fields["error_code"] == domainerr.CodeMissingField
		})).Once()

		w := doRequest(newTestRouterWithLogger(uc, log), http.MethodPost, "/api/cupcakes", `{"flavor":"Vanilla","rating":8}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	malformed := map[string]string{
		"Not JSON":   `flavor=Vanilla`,
		"Wrong type": `{"flavor":"Vanilla","size":"Large","rating":"eight"}`,
		"Empty body": ``,
		"Truncated":  `{"flavor":`,
	}
	for name, body := range malformed {
		t.Run(name+" returns 400", func(t *testing.T) {
			uc := usecasemocks.NewMockCupcakeUseCase(t)

			w := doRequest(newTestRouter(uc), http.MethodPost, "/api/cupcakes", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, domainerr.CodeInvalidRequest, decodeError(t, w).Code)
		})
	}
}

func TestCupcakeHandlerGet(t *testing.T) {
	t.Run("Returns the cupcake", func(t *testing.T) {
		uc := usecasemocks.NewMockCupcakeUseCase(t)
		uc.EXPECT().GetCupcake(mock.Anything, uint64(1)).Return(vanilla(), nil).Once()

		w := doRequest(newTestRouter(uc), http.MethodGet, "/api/cupcakes/1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"cupcake":{"id":1,"flavor":"Vanilla","size":"Large","rating":8,"image":"http://x/y.jpg"}}`, w.Body.String())
	})

	t.Run("Unknown ID returns 404", func(t *testing.T) {
		uc := usecasemocks.NewMockCupcakeUseCase(t)
		uc.EXPECT().GetCupcake(mock.Anything, uint64(99)).
			Return(nil, domainerr.NewCupcakeError("get", 99, domainerr.ErrCupcakeNotFound)).Once()

		w := doRequest(newTestRouter(uc), http.MethodGet, "/api/cupcakes/99", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, dto.ErrorResponse{Code: domainerr.CodeCupcakeNotFound, Message: "Cupcake not found"}, decodeError(t, w))
	})

	for _, id := range []string{"abc", "0", "-1", "1.5", "9223372036854775808", "18446744073709551615"} {
		t.Run("Unaddressable ID "+id+" returns 404", func(t *testing.T) {
			uc := usecasemocks.NewMockCupcakeUseCase(t)

			w := doRequest(newTestRouter(uc), http.MethodGet, "/api/cupcakes/"+id, "")

			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, domainerr.CodeInvalidCupcakeID, decodeError(t, w).Code)
		})
	}

	t.Run("Largest bigserial ID reaches the use case", func(t *testing.T) {
		uc := usecasemocks.NewMockCupcakeUseCase(t)
		uc.EXPECT().GetCupcake(mock.Anything, uint64(math.MaxInt64)).
			Return(nil, domainerr.NewCupcakeError("get", math.MaxInt64, domainerr.ErrCupcakeNotFound)).Once()

		w := doRequest(newTestRouter(uc), http.MethodGet, "/api/cupcakes/9223372036854775807", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, domainerr.CodeCupcakeNotFound, decodeError(t, w).Code)
	})

	t.Run("Unexpected failure hides the cause", func(t *testing.T) {
		uc := usecasemocks.NewMockCupcakeUseCase(t)
		uc.EXPECT().GetCupcake(mock.Anything, uint64(1)).Return(nil, errors.New("pq: secret")).Once()
		log := coremocks.NewMockLogger(t)
		log.EXPECT().Error("Cupcake request failed", map[string]any{
			"error":      "pq: secret",
			"error_code": domainerr.CodeInternalServer,
		}).Once()

		w := doRequest(newTestRouterWithLogger(uc, log), http.MethodGet, "/api/cupcakes/1", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", decodeError(t, w).Message)
	})
}

func TestCupcakeHandlerUpdate(t *testing.T) {
	t.Run("Partial update", func(t *testing.T) {
		updated := vanilla()
		updated.Rating = 9.5

		uc := usecasemocks.NewMockCupcakeUseCase(t)
		uc.EXPECT().UpdateCupcake(mock.Anything, uint64(1), mock.MatchedBy(func(update entity.CupcakeUpdate) bool {
			return update.Rating != nil && *update.Rating == 9.5 && update.Flavor == nil && update.Size == nil && update.Image == nil
		})).Return(updated, nil).Once()

		w := doRequest(newTestRouter(uc), http.MethodPatch, "/api/cupcakes/1", `{"rating":9.5}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"cupcake":{"id":1,"flavor":"Vanilla","size":"Large","rating":9.5,"image":"http://x/y.jpg"}}`, w.Body.String())
	})

	t.Run("Empty body is a no-op update", func(t *testing.T) {
		uc := usecasemocks.NewMockCupcakeUseCase(t)
		uc.EXPECT().UpdateCupcake(mock.Anything, uint64(1), entity.CupcakeUpdate{}).Return(vanilla(), nil).Twice()

		router := newTestRouter(uc)
		for _, body := range []string{"", "{}"} {
			w := doRequest(router, http.MethodPatch, "/api/cupcakes/1", body)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("Malformed JSON returns 400", func(t *testing.T) {
		uc := usecasemocks.NewMockCupcakeUseCase(t)

		w := doRequest(newTestRouter(uc), http.MethodPatch, "/api/cupcakes/1", `{"rating":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeInvalidRequest, decodeError(t, w).Code)
	})

	t.Run("Unknown ID returns 404", func(t *testing.T) {
		uc := usecasemocks.NewMockCupcakeUseCase(t)
		uc.EXPECT().UpdateCupcake(mock.Anything, uint64(7), mock.Anything).
			Return(nil, domainerr.NewCupcakeError("update", 7, domainerr.ErrCupcakeNotFound)).Once()

		w := doRequest(newTestRouter(uc), http.MethodPatch, "/api/cupcakes/7", `{"rating":1}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCupcakeHandlerDelete(t *testing.T) {
	t.Run("Deletes the cupcake", func(t *testing.T) {
		uc := usecasemocks.NewMockCupcakeUseCase(t)
		uc.EXPECT().DeleteCupcake(mock.Anything, uint64(1)).Return(nil).Once()

		w := doRequest(newTestRouter(uc), http.MethodDelete, "/api/cupcakes/1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Deleted"}`, w.Body.String())
	})

	t.Run("Unknown ID returns 404", func(t *testing.T) {
		uc := usecasemocks.NewMockCupcakeUseCase(t)
		uc.EXPECT().DeleteCupcake(mock.Anything, uint64(5)).
			Return(domainerr.NewCupcakeError("delete", 5, domainerr.ErrCupcakeNotFound)).Once()

		w := doRequest(newTestRouter(uc), http.MethodDelete, "/api/cupcakes/5", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error {
	return f.err
}

func TestHealthHandler(t *testing.T) {
	newRouter := func(p Pinger) *gin.Engine {
		router := gin.New()
		router.GET("/healthz", NewHealthHandler(p, logger.NewNoopLogger()).Check)
		return router
	}

	w := doRequest(newRouter(fakePinger{}), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = doRequest(newRouter(fakePinger{err: domainerr.ErrDatabaseConnection}), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unavailable"}`, w.Body.String())
}
