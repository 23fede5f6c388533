package handler

import (
	"github.com/gin-gonic/gin"

	ledgerapp "github.com/wms/backend/internal/application/ledger"
)

// ReturnHandler handles customer return endpoints
type ReturnHandler struct {
	BaseHandler
	service *ledgerapp.ReturnService
}

// NewReturnHandler creates a new ReturnHandler
func NewReturnHandler(service *ledgerapp.ReturnService) *ReturnHandler {
	return &ReturnHandler{service: service}
}

// RegisterRoutes registers return record routes
func (h *ReturnHandler) RegisterRoutes(rg *gin.RouterGroup) {
	returns := rg.Group("/returns")
	{
		returns.POST("", h.Create)
		returns.GET("", h.List)
		returns.GET("/:id", h.Get)
		returns.PUT("/:id", h.Update)
		returns.DELETE("/:id", h.Delete)
	}
}

// Create registers a new return record
func (h *ReturnHandler) Create(c *gin.Context) {
	var req ledgerapp.ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	record, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, record)
}

// List returns all return records
func (h *ReturnHandler) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, records)
}

// Get returns a single return record
func (h *ReturnHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	record, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// Update edits a return record
func (h *ReturnHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req ledgerapp.ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	record, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// Delete removes a return record
func (h *ReturnHandler) Delete(c *gin.Context) {
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
