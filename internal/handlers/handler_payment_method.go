package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/invoicely/internal/core/ports/services"
	"github.com/SscSPs/invoicely/internal/dto"
	"github.com/SscSPs/invoicely/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentMethodHandler handles HTTP requests related to payment methods.
type paymentMethodHandler struct {
	methodService portssvc.PaymentMethodSvcFacade
}

func newPaymentMethodHandler(ms portssvc.PaymentMethodSvcFacade) *paymentMethodHandler {
	return &paymentMethodHandler{methodService: ms}
}

// registerPaymentMethodRoutes registers routes related to payment methods.
func registerPaymentMethodRoutes(rg *gin.RouterGroup, methodService portssvc.PaymentMethodSvcFacade) {
	h := newPaymentMethodHandler(methodService)

	methods := rg.Group("/payment-methods")
	{
		methods.POST("", h.createPaymentMethod)
		methods.GET("", h.listPaymentMethods)
		methods.GET("/default", h.getDefaultPaymentMethod)
		methods.GET("/:methodID", h.getPaymentMethod)
		methods.PUT("/:methodID", h.updatePaymentMethod)
		methods.DELETE("/:methodID", h.deletePaymentMethod)
	}
}

// createPaymentMethod godoc
// @Summary Create a payment method
// @Description Creating a default method clears the flag on the others. The first method is always the default.
// @Tags payment-methods
// @Accept json
// @Produce json
// @Param method body dto.CreatePaymentMethodRequest true "Payment method details"
// @Success 201 {object} dto.PaymentMethodResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create payment method"
// @Router /payment-methods [post]
func (h *paymentMethodHandler) createPaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	method, err := h.methodService.CreatePaymentMethod(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create payment method")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPaymentMethodResponse(method))
}

// listPaymentMethods godoc
// @Summary List payment methods
// @Tags payment-methods
// @Produce json
// @Success 200 {array} dto.PaymentMethodResponse
// @Failure 500 {object} map[string]string "Failed to list payment methods"
// @Router /payment-methods [get]
func (h *paymentMethodHandler) listPaymentMethods(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	methods, err := h.methodService.ListPaymentMethods(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list payment methods")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentMethodResponse(methods))
}

// getDefaultPaymentMethod godoc
// @Summary Get the default payment method
// @Tags payment-methods
// @Produce json
// @Success 200 {object} dto.PaymentMethodResponse
// @Failure 404 {object} map[string]string "No payment methods"
// @Failure 500 {object} map[string]string "Failed to retrieve payment method"
// @Router /payment-methods/default [get]
func (h *paymentMethodHandler) getDefaultPaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	method, err := h.methodService.GetDefaultPaymentMethod(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve payment method")
		return
	}
	if method == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No payment methods"})
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentMethodResponse(method))
}

// getPaymentMethod godoc
// @Summary Get a payment method
// @Tags payment-methods
// @Produce json
// @Param methodID path string true "Payment method ID"
// @Success 200 {object} dto.PaymentMethodResponse
// @Failure 404 {object} map[string]string "Payment method not found"
// @Failure 500 {object} map[string]string "Failed to retrieve payment method"
// @Router /payment-methods/{methodID} [get]
func (h *paymentMethodHandler) getPaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	method, err := h.methodService.GetPaymentMethod(c.Request.Context(), c.Param("methodID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve payment method")
		return
	}
	if method == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentMethodResponse(method))
}

// updatePaymentMethod godoc
// @Summary Update a payment method
// @Tags payment-methods
// @Accept json
// @Produce json
// @Param methodID path string true "Payment method ID"
// @Param method body dto.UpdatePaymentMethodRequest true "Fields to change"
// @Success 200 {object} dto.PaymentMethodResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Payment method not found"
// @Failure 500 {object} map[string]string "Failed to update payment method"
// @Router /payment-methods/{methodID} [put]
func (h *paymentMethodHandler) updatePaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.UpdatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	method, err := h.methodService.UpdatePaymentMethod(c.Request.Context(), c.Param("methodID"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update payment method")
		return
	}
	if method == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentMethodResponse(method))
}

// deletePaymentMethod godoc
// @Summary Delete a payment method
// @Description Deleting the default promotes the first remaining method. Unknown ids succeed.
// @Tags payment-methods
// @Param methodID path string true "Payment method ID"
// @Success 204 "No Content"
// @Failure 500 {object} map[string]string "Failed to delete payment method"
// @Router /payment-methods/{methodID} [delete]
func (h *paymentMethodHandler) deletePaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	if err := h.methodService.DeletePaymentMethod(c.Request.Context(), c.Param("methodID")); err != nil {
		respondError(c, logger, err, "Failed to delete payment method")
		return
	}
	c.Status(http.StatusNoContent)
}
