package handlers

import (
	"errors"
	"net/http"

	"voyago/models"
	"voyago/services/quote"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteHandler exposes the quote session lifecycle over HTTP.
type QuoteHandler struct {
	svc    quote.SessionService
	logger *zap.Logger
}

// NewQuoteHandler constructs a QuoteHandler.
func NewQuoteHandler(svc quote.SessionService, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{svc: svc, logger: logger}
}

// InitiateQuote opens a fresh quote session for a pricing screen.
func (h *QuoteHandler) InitiateQuote(c *gin.Context) {
	var input quote.InitiateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.UserID = c.GetString("userID")

	q, bd, err := h.svc.Initiate(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionID": q.SessionID,
		"quote":     q,
		"breakdown": bd,
	})
}

// GetQuote returns the current quote and its breakdown.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, bd, err := h.svc.Get(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "quote session not found or expired"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quote": q, "breakdown": bd})
}

// AddQuoteItem selects or toggles one add-on on the quote.
func (h *QuoteHandler) AddQuoteItem(c *gin.Context) {
	var input quote.AddOnRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	q, bd, err := h.svc.AddItem(c.Param("sessionID"), input)
	if err != nil {
		if errors.Is(err, quote.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "quote session not found or expired"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quote": q, "breakdown": bd})
}

// RemoveQuoteMeal removes one meal unit from the quote.
func (h *QuoteHandler) RemoveQuoteMeal(c *gin.Context) {
	q, bd, err := h.svc.RemoveMealItem(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "quote session not found or expired"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quote": q, "breakdown": bd})
}

// SetQuoteCurrency switches the display currency.
func (h *QuoteHandler) SetQuoteCurrency(c *gin.Context) {
	var input struct {
		Currency models.Currency `json:"currency"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	q, bd, err := h.svc.SetCurrency(c.Param("sessionID"), input.Currency)
	if err != nil {
		if errors.Is(err, quote.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "quote session not found or expired"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quote": q, "breakdown": bd})
}

// ApplyPromoCode submits a promo code. A rejection is a normal 200 response
// carrying the promo state; the UI shows the reason inline and the flow
// continues with the previous total.
func (h *QuoteHandler) ApplyPromoCode(c *gin.Context) {
	var input struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	q, bd, err := h.svc.ApplyPromo(c.Param("sessionID"), input.Code)
	if err != nil {
		switch {
		case errors.Is(err, quote.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "quote session not found or expired"})
		case errors.Is(err, quote.ErrValidationInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": "a code is already being validated"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	h.logger.Debug("promo code settled",
		zap.String("sessionID", q.SessionID),
		zap.String("status", string(q.Promo.Status)))
	c.JSON(http.StatusOK, gin.H{"quote": q, "breakdown": bd, "promo": q.Promo})
}

// CancelQuote discards the session.
func (h *QuoteHandler) CancelQuote(c *gin.Context) {
	if err := h.svc.Cancel(c.Param("sessionID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
