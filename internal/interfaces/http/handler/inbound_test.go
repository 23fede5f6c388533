package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	ledgerapp "github.com/wms/backend/internal/application/ledger"
	"github.com/wms/backend/internal/domain/ledger"
	"github.com/wms/backend/internal/infrastructure/persistence"
	"github.com/wms/backend/internal/interfaces/http/dto"
	"github.com/wms/backend/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := middleware.RegisterValidators(); err != nil {
		panic(err)
	}
}

func setupInboundRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&ledger.InboundReceipt{}))

	service := ledgerapp.NewInboundService(persistence.NewGormInboundRepository(db))
	handler := NewInboundHandler(service)

	engine := gin.New()
	api := engine.Group("/api/v1")
	handler.RegisterRoutes(api)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func createReceipt(t *testing.T, engine *gin.Engine) uint {
	t.Helper()
	rec := doJSON(t, engine, http.MethodPost, "/api/v1/inbound", gin.H{
		"product_name": "Widget",
		"supplier":     "Acme Supply",
		"quantity":     "100",
		"price":        "5",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeResponse(t, rec)
	require.True(t, resp.Success)
	data := resp.Data.(map[string]any)
	return uint(data["id"].(float64))
}

func TestInboundHandler_Create(t *testing.T) {
	t.Run("creates a pending receipt", func(t *testing.T) {
		engine := setupInboundRouter(t)
		rec := doJSON(t, engine, http.MethodPost, "/api/v1/inbound", gin.H{
			"product_name": "Widget",
			"quantity":     "100",
			"price":        "5",
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeResponse(t, rec)
		data := resp.Data.(map[string]any)
		assert.Equal(t, "PENDING_ACCEPTANCE", data["status"])
		assert.NotEmpty(t, data["order_no"])
	})

	t.Run("rejects missing product name", func(t *testing.T) {
		engine := setupInboundRouter(t)
		rec := doJSON(t, engine, http.MethodPost, "/api/v1/inbound", gin.H{
			"quantity": "100",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeResponse(t, rec)
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeBadRequest, resp.Error.Code)
	})

	t.Run("rejects non-positive quantity with domain error code", func(t *testing.T) {
		engine := setupInboundRouter(t)
		rec := doJSON(t, engine, http.MethodPost, "/api/v1/inbound", gin.H{
			"product_name": "Widget",
			"quantity":     "-1",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeResponse(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeInvalidInput, resp.Error.Code)
	})
}

func TestInboundHandler_RecordAcceptance(t *testing.T) {
	t.Run("records the inspection result", func(t *testing.T) {
		engine := setupInboundRouter(t)
		id := createReceipt(t, engine)

		rec := doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/v1/inbound/%d/acceptance", id), gin.H{
			"accepted_quantity": "80",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeResponse(t, rec)
		data := resp.Data.(map[string]any)
		assert.Equal(t, "ACCEPTED", data["status"])
		assert.Equal(t, "80", data["accepted_quantity"])
		assert.Equal(t, "20", data["rejected_quantity"])
	})

	t.Run("second inspection answers 409 without force", func(t *testing.T) {
		engine := setupInboundRouter(t)
		id := createReceipt(t, engine)
		path := fmt.Sprintf("/api/v1/inbound/%d/acceptance", id)

		rec := doJSON(t, engine, http.MethodPost, path, gin.H{"accepted_quantity": "80"})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, engine, http.MethodPost, path, gin.H{"accepted_quantity": "90"})
		assert.Equal(t, http.StatusConflict, rec.Code)
		resp := decodeResponse(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeConflict, resp.Error.Code)

		rec = doJSON(t, engine, http.MethodPost, path, gin.H{"accepted_quantity": "90", "force": true})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing receipt answers 404", func(t *testing.T) {
		engine := setupInboundRouter(t)
		rec := doJSON(t, engine, http.MethodPost, "/api/v1/inbound/404/acceptance", gin.H{
			"accepted_quantity": "1",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestInboundHandler_Update(t *testing.T) {
	t.Run("update after inspection carries a warning", func(t *testing.T) {
		engine := setupInboundRouter(t)
		id := createReceipt(t, engine)

		rec := doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/v1/inbound/%d/acceptance", id), gin.H{
			"accepted_quantity": "80",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, engine, http.MethodPut, fmt.Sprintf("/api/v1/inbound/%d", id), gin.H{
			"product_name": "Widget",
			"quantity":     "90",
			"price":        "5",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeResponse(t, rec)
		data := resp.Data.(map[string]any)
		assert.Equal(t, ledgerapp.WarningEditInspected, data["warning"])
	})

	t.Run("invalid id answers 400", func(t *testing.T) {
		engine := setupInboundRouter(t)
		rec := doJSON(t, engine, http.MethodPut, "/api/v1/inbound/abc", gin.H{
			"product_name": "Widget",
			"quantity":     "1",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestInboundHandler_Delete(t *testing.T) {
	engine := setupInboundRouter(t)
	id := createReceipt(t, engine)

	rec := doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/v1/inbound/%d", id), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/v1/inbound/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
