package handlers

import (
	"net/http"

	"voyago/models"
	"voyago/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes payment processing.
type PaymentHandler struct {
	svc    payment.Handler
	logger *zap.Logger
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(svc payment.Handler, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{svc: svc, logger: logger}
}

// ProcessPayment charges the final booking total. Failures come back as an
// inline error message; the client may retry the same request.
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var input models.PaymentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.UserID = c.GetString("userID")

	inv, err := h.svc.ProcessPayment(c.Request.Context(), input)
	if err != nil {
		h.logger.Warn("payment failed",
			zap.String("bookingID", input.BookingID), zap.Error(err))
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": inv})
}
