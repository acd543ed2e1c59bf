package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"iconsherald/internal/logger"
	"iconsherald/internal/services"
	"iconsherald/internal/services/dto"
	"iconsherald/pkg/apperrors"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    base,
		paymentService: paymentService,
	}
}

// Publish checks the completion gate and returns the checkout link.
func (h *PaymentHandler) Publish(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.paymentService.Publish(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Callback receives the gateway webhook. The gateway expects a bare "OK"
// body on success; anything else causes retries on its side.
func (h *PaymentHandler) Callback(c *gin.Context) {
	var req dto.PaymentCallbackRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to bind payment callback", err)
		c.String(http.StatusBadRequest, "bad request")
		return
	}

	if err := h.paymentService.HandleCallback(&req); err != nil {
		var appErr *apperrors.AppError
		if apperrors.As(err, &appErr) {
			logger.CtxWarn(c.Request.Context(), "payment callback rejected",
				"order_id", req.OrderID, "error", appErr.Message)
			c.String(appErr.HTTPCode, "rejected")
			return
		}
		c.String(http.StatusInternalServerError, "error")
		return
	}

	c.String(http.StatusOK, "OK")
}

func (h *PaymentHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.paymentService.ListProfilePayments(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": resp})
}

func (h *PaymentHandler) Get(c *gin.Context) {
	resp, err := h.paymentService.GetPayment(c.Param("paymentId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
