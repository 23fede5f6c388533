package handler

import (
	"github.com/gin-gonic/gin"

	ledgerapp "github.com/wms/backend/internal/application/ledger"
)

// OutboundHandler handles retail outbound sale endpoints
type OutboundHandler struct {
	BaseHandler
	service *ledgerapp.OutboundService
}

// NewOutboundHandler creates a new OutboundHandler
func NewOutboundHandler(service *ledgerapp.OutboundService) *OutboundHandler {
	return &OutboundHandler{service: service}
}

// RegisterRoutes registers outbound sale routes
func (h *OutboundHandler) RegisterRoutes(rg *gin.RouterGroup) {
	outbound := rg.Group("/outbound")
	{
		outbound.POST("", h.Create)
		outbound.GET("", h.List)
		outbound.GET("/:id", h.Get)
		outbound.PUT("/:id", h.Update)
		outbound.DELETE("/:id", h.Delete)
	}
}

// Create registers a new outbound sale
func (h *OutboundHandler) Create(c *gin.Context) {
	var req ledgerapp.OutboundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sale, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, sale)
}

// List returns all outbound sales
func (h *OutboundHandler) List(c *gin.Context) {
	sales, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sales)
}

// Get returns a single outbound sale
func (h *OutboundHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sale, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sale)
}

// Update edits an outbound sale
func (h *OutboundHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req ledgerapp.OutboundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sale, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sale)
}

// Delete removes an outbound sale
func (h *OutboundHandler) Delete(c *gin.Context) {
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
