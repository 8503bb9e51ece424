package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/invoicely/internal/core/ports/services"
	"github.com/SscSPs/invoicely/internal/dto"
	"github.com/SscSPs/invoicely/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler serves the static currency and template tables.
type currencyHandler struct {
	currencyService portssvc.CurrencySvc
	templateService portssvc.TemplateSvc
}

func newCurrencyHandler(cs portssvc.CurrencySvc, ts portssvc.TemplateSvc) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
		templateService: ts,
	}
}

// registerCurrencyRoutes registers routes related to currencies and templates.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvc, templateService portssvc.TemplateSvc) {
	h := newCurrencyHandler(currencyService, templateService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
	}
	rg.GET("/templates", h.listTemplates)
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves details for a specific currency by its 3-letter code
// @Tags currencies
// @Produce json
// @Param code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid currency code"
// @Failure 404 {object} map[string]string "Currency not found"
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	currencyCode := strings.ToUpper(c.Param("code"))

	if len(currencyCode) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), currencyCode)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve currency")
		return
	}
	if currency == nil {
		logger.Warn("Currency not found", slog.String("currency_code", currencyCode))
		c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// listCurrencies godoc
// @Summary List all currencies
// @Description Retrieves the supported currencies in display order
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list currencies")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// listTemplates godoc
// @Summary List invoice templates
// @Tags templates
// @Produce json
// @Success 200 {array} dto.TemplateResponse
// @Router /templates [get]
func (h *currencyHandler) listTemplates(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	templates, err := h.templateService.ListTemplates(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list templates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTemplateResponse(templates))
}
