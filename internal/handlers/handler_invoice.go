package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/invoicely/internal/core/domain"
	portssvc "github.com/SscSPs/invoicely/internal/core/ports/services"
	"github.com/SscSPs/invoicely/internal/dto"
	"github.com/SscSPs/invoicely/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	defaultRecentLimit = 5
	maxRecentLimit     = 50
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: is}
}

// registerInvoiceRoutes registers routes related to invoices.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/recent", h.recentInvoices)
		invoices.GET("/next-number", h.nextInvoiceNumber)
		invoices.POST("/sweep-overdue", h.sweepOverdue)
		invoices.GET("/:invoiceID", h.getInvoice)
		invoices.PUT("/:invoiceID", h.updateInvoice)
		invoices.DELETE("/:invoiceID", h.deleteInvoice)
		invoices.POST("/:invoiceID/send", h.markAsSent)
		invoices.POST("/:invoiceID/pay", h.markAsPaid)
	}
}

// createInvoice godoc
// @Summary Create an invoice
// @Description Creates a draft invoice. Missing number, dates, currency, payment method, template and terms are filled with defaults.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create invoice"
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	inv, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create invoice")
		return
	}
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(inv))
}

// listInvoices godoc
// @Summary List invoices
// @Description Filters by status and a case-insensitive search over number and client name, sorted by issue date.
// @Tags invoices
// @Produce json
// @Param search query string false "Search text"
// @Param status query string false "all, draft, sent, paid or overdue" default(all)
// @Param sort query string false "asc or desc" default(desc)
// @Param limit query int false "Page size (1-100)"
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list invoices"
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListInvoices", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	res, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, res)
}

// recentInvoices godoc
// @Summary Most recently created invoices
// @Tags invoices
// @Produce json
// @Param limit query int false "Number of invoices" default(5)
// @Success 200 {array} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 500 {object} map[string]string "Failed to list invoices"
// @Router /invoices/recent [get]
func (h *invoiceHandler) recentInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultRecentLimit)))
	if err != nil || limit < 1 || limit > maxRecentLimit {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 50"})
		return
	}

	invoices, err := h.invoiceService.RecentInvoices(c.Request.Context(), limit)
	if err != nil {
		respondError(c, logger, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, dto.ToListInvoiceResponse(invoices))
}

// nextInvoiceNumber godoc
// @Summary Preview the next invoice number
// @Tags invoices
// @Produce json
// @Success 200 {object} dto.InvoiceNumberResponse
// @Failure 500 {object} map[string]string "Failed to generate invoice number"
// @Router /invoices/next-number [get]
func (h *invoiceHandler) nextInvoiceNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	number, err := h.invoiceService.GenerateInvoiceNumber(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to generate invoice number")
		return
	}
	c.JSON(http.StatusOK, dto.InvoiceNumberResponse{InvoiceNumber: number})
}

// getInvoice godoc
// @Summary Get an invoice
// @Tags invoices
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to retrieve invoice"
// @Router /invoices/{invoiceID} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	invoiceID := c.Param("invoiceID")

	inv, err := h.invoiceService.GetInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve invoice")
		return
	}
	if inv == nil {
		logger.Warn("Invoice not found", slog.String("invoice_id", invoiceID))
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

// updateInvoice godoc
// @Summary Update an invoice
// @Description Merges the given fields into the invoice and recomputes its total. A status change must follow the invoice lifecycle.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Param invoice body dto.UpdateInvoiceRequest true "Fields to change"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 409 {object} map[string]string "Status change not allowed"
// @Failure 500 {object} map[string]string "Failed to update invoice"
// @Router /invoices/{invoiceID} [put]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	invoiceID := c.Param("invoiceID")
	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	inv, err := h.invoiceService.UpdateInvoice(c.Request.Context(), invoiceID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update invoice")
		return
	}
	if inv == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

// deleteInvoice godoc
// @Summary Delete an invoice
// @Description Deleting an unknown invoice succeeds.
// @Tags invoices
// @Param invoiceID path string true "Invoice ID"
// @Success 204 "No Content"
// @Failure 500 {object} map[string]string "Failed to delete invoice"
// @Router /invoices/{invoiceID} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), c.Param("invoiceID")); err != nil {
		respondError(c, logger, err, "Failed to delete invoice")
		return
	}
	c.Status(http.StatusNoContent)
}

// markAsSent godoc
// @Summary Mark an invoice as sent
// @Tags invoices
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 409 {object} map[string]string "Status change not allowed"
// @Failure 500 {object} map[string]string "Failed to send invoice"
// @Router /invoices/{invoiceID}/send [post]
func (h *invoiceHandler) markAsSent(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	inv, err := h.invoiceService.MarkAsSent(c.Request.Context(), c.Param("invoiceID"))
	if err != nil {
		respondError(c, logger, err, "Failed to send invoice")
		return
	}
	if inv == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

// markAsPaid godoc
// @Summary Mark an invoice as paid
// @Description The paid date defaults to today.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Param payment body dto.MarkPaidRequest false "Paid date"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 409 {object} map[string]string "Status change not allowed"
// @Failure 500 {object} map[string]string "Failed to mark invoice as paid"
// @Router /invoices/{invoiceID}/pay [post]
func (h *invoiceHandler) markAsPaid(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.MarkPaidRequest
	// The body is optional. Chunked requests report ContentLength -1.
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			respondBindError(c, logger, err)
			return
		}
	}

	var paidDate *time.Time
	if req.PaidDate != "" {
		d, err := domain.ParseDate(req.PaidDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
			return
		}
		paidDate = &d
	}

	inv, err := h.invoiceService.MarkAsPaid(c.Request.Context(), c.Param("invoiceID"), paidDate)
	if err != nil {
		respondError(c, logger, err, "Failed to mark invoice as paid")
		return
	}
	if inv == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

// sweepOverdue godoc
// @Summary Mark past-due sent invoices as overdue
// @Tags invoices
// @Produce json
// @Param asOf query string false "Reference date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.SweepResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to sweep invoices"
// @Router /invoices/sweep-overdue [post]
func (h *invoiceHandler) sweepOverdue(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	asOf := time.Now().UTC()
	if raw := c.Query("asOf"); raw != "" {
		d, err := domain.ParseDate(raw)
		if err != nil {
			logger.Warn("Invalid asOf date format", slog.String("asOf", raw))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
			return
		}
		asOf = d
	}

	changed, err := h.invoiceService.SweepOverdue(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to sweep invoices")
		return
	}
	c.JSON(http.StatusOK, dto.SweepResponse{
		AsOf:     asOf.Format(domain.DateLayout),
		Invoices: dto.ToListInvoiceResponse(changed),
	})
}
