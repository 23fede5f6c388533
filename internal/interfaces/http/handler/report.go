package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	reportapp "github.com/wms/backend/internal/application/report"
	"github.com/wms/backend/internal/domain/ledger"
	"github.com/wms/backend/internal/domain/report"
)

// dateLayout is the format of the start/end query parameters
const dateLayout = "2006-01-02"

// ReportHandler handles reconciliation report endpoints
type ReportHandler struct {
	BaseHandler
	service *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/inventory", h.Inventory)
		reports.GET("/financial", h.Financial)
		reports.GET("/period", h.Period)
		reports.GET("/dashboard", h.Dashboard)
	}
}

// parseWindow reads the optional start/end query parameters. The end
// date is extended to the end of its day so the window stays inclusive.
func parseWindow(c *gin.Context) (ledger.DateRange, error) {
	var window ledger.DateRange

	if raw := c.Query("start"); raw != "" {
		start, err := time.Parse(dateLayout, raw)
		if err != nil {
			return window, err
		}
		window.Start = start
	}
	if raw := c.Query("end"); raw != "" {
		end, err := time.Parse(dateLayout, raw)
		if err != nil {
			return window, err
		}
		window.End = end.Add(24*time.Hour - time.Nanosecond)
	}
	return window, nil
}

// Inventory returns current stock and valuation per product
func (h *ReportHandler) Inventory(c *gin.Context) {
	rows, err := h.service.InventorySummary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// Financial returns per-product financials for the requested window
func (h *ReportHandler) Financial(c *gin.Context) {
	window, err := parseWindow(c)
	if err != nil {
		h.BadRequest(c, "invalid date parameter, expected YYYY-MM-DD")
		return
	}

	rows, err := h.service.FinancialSummary(c.Request.Context(), window)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// Period returns windowed financials bucketed by month or year
func (h *ReportHandler) Period(c *gin.Context) {
	granularity := report.Granularity(c.DefaultQuery("granularity", string(report.GranularityMonthly)))
	if !granularity.IsValid() {
		h.BadRequest(c, "granularity must be monthly or yearly")
		return
	}

	window, err := parseWindow(c)
	if err != nil {
		h.BadRequest(c, "invalid date parameter, expected YYYY-MM-DD")
		return
	}

	rows, err := h.service.PeriodReport(c.Request.Context(), granularity, window)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// Dashboard returns headline counts and totals across all ledgers
func (h *ReportHandler) Dashboard(c *gin.Context) {
	h.Success(c, h.service.Dashboard(c.Request.Context()))
}
