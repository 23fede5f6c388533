package handler

import (
	"github.com/gin-gonic/gin"

	ledgerapp "github.com/wms/backend/internal/application/ledger"
)

// WholesaleHandler handles wholesale order endpoints
type WholesaleHandler struct {
	BaseHandler
	service *ledgerapp.WholesaleService
}

// NewWholesaleHandler creates a new WholesaleHandler
func NewWholesaleHandler(service *ledgerapp.WholesaleService) *WholesaleHandler {
	return &WholesaleHandler{service: service}
}

// RegisterRoutes registers wholesale order routes
func (h *WholesaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	wholesale := rg.Group("/wholesale")
	{
		wholesale.POST("", h.Create)
		wholesale.GET("", h.List)
		wholesale.GET("/:id", h.Get)
		wholesale.PUT("/:id", h.Update)
		wholesale.DELETE("/:id", h.Delete)
	}
}

// Create registers a new wholesale order with its items
func (h *WholesaleHandler) Create(c *gin.Context) {
	var req ledgerapp.WholesaleOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

// List returns all wholesale orders with their items
func (h *WholesaleHandler) List(c *gin.Context) {
	orders, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// Get returns a single wholesale order with its items
func (h *WholesaleHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Update edits an order and replaces its item list atomically
func (h *WholesaleHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req ledgerapp.WholesaleOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Delete removes an order together with its items
func (h *WholesaleHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
