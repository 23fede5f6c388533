package handler

import (
	"github.com/gin-gonic/gin"

	ledgerapp "github.com/wms/backend/internal/application/ledger"
	"github.com/wms/backend/internal/domain/ledger"
)

// InboundHandler handles inbound receipt endpoints
type InboundHandler struct {
	BaseHandler
	service *ledgerapp.InboundService
}

// NewInboundHandler creates a new InboundHandler
func NewInboundHandler(service *ledgerapp.InboundService) *InboundHandler {
	return &InboundHandler{service: service}
}

// RegisterRoutes registers inbound receipt routes
func (h *InboundHandler) RegisterRoutes(rg *gin.RouterGroup) {
	inbound := rg.Group("/inbound")
	{
		inbound.POST("", h.Create)
		inbound.GET("", h.List)
		inbound.GET("/:id", h.Get)
		inbound.PUT("/:id", h.Update)
		inbound.DELETE("/:id", h.Delete)
		inbound.POST("/:id/acceptance", h.RecordAcceptance)
	}
}

// InboundUpdateResponse wraps an updated receipt with an optional
// warning about retroactive edits
type InboundUpdateResponse struct {
	Receipt *ledger.InboundReceipt `json:"receipt"`
	Warning string                 `json:"warning,omitempty"`
}

// Create registers a new inbound receipt
func (h *InboundHandler) Create(c *gin.Context) {
	var req ledgerapp.InboundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	receipt, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, receipt)
}

// List returns all inbound receipts
func (h *InboundHandler) List(c *gin.Context) {
	receipts, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, receipts)
}

// Get returns a single inbound receipt
func (h *InboundHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	receipt, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, receipt)
}

// Update edits an inbound receipt
func (h *InboundHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req ledgerapp.InboundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	receipt, warning, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, InboundUpdateResponse{Receipt: receipt, Warning: warning})
}

// Delete removes an inbound receipt
func (h *InboundHandler) Delete(c *gin.Context) {
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

// RecordAcceptance applies the quality inspection result. Repeating the
// inspection requires the force flag and otherwise answers 409.
func (h *InboundHandler) RecordAcceptance(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req ledgerapp.AcceptanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	receipt, err := h.service.RecordAcceptance(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, receipt)
}
