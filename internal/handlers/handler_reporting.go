package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/invoicely/internal/core/ports/services"
	"github.com/SscSPs/invoicely/internal/dto"
	"github.com/SscSPs/invoicely/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the dashboard summaries.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
	profileService   portssvc.ProfileReaderSvc
}

func newReportingHandler(rs portssvc.ReportingSvc, ps portssvc.ProfileReaderSvc) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		profileService:   ps,
	}
}

// registerReportingRoutes registers routes related to reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc, profileService portssvc.ProfileReaderSvc) {
	h := newReportingHandler(reportingService, profileService)

	stats := rg.Group("/stats")
	{
		stats.GET("/invoices", h.getInvoiceStats)
	}
}

// getInvoiceStats godoc
// @Summary Invoice statistics
// @Description Counts per status and the total, paid and pending sums. Pending includes drafts.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.InvoiceStatsResponse
// @Failure 500 {object} map[string]string "Failed to compute invoice stats"
// @Router /stats/invoices [get]
func (h *reportingHandler) getInvoiceStats(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	ctx := c.Request.Context()

	stats, err := h.reportingService.GetInvoiceStats(ctx)
	if err != nil {
		respondError(c, logger, err, "Failed to compute invoice stats")
		return
	}
	prefs, err := h.profileService.Preferences(ctx)
	if err != nil {
		respondError(c, logger, err, "Failed to compute invoice stats")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceStatsResponse(*stats, prefs.DefaultCurrency))
}
