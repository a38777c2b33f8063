package handlers

import (
	"net/http"
	"time"

	promoRepo "voyago/database/repository/promo"
	"voyago/models"

	"github.com/gin-gonic/gin"
)

// PromoAdminHandler manages the persisted promo catalog.
type PromoAdminHandler struct {
	repo promoRepo.PromoRepository
}

// NewPromoAdminHandler constructs a PromoAdminHandler.
func NewPromoAdminHandler(repo promoRepo.PromoRepository) *PromoAdminHandler {
	return &PromoAdminHandler{repo: repo}
}

// CreatePromoCode registers a new code.
func (h *PromoAdminHandler) CreatePromoCode(c *gin.Context) {
	var input struct {
		Code      string  `json:"code"`
		Rate      float64 `json:"rate"`
		ExpiresAt string  `json:"expiresAt,omitempty"` // RFC 3339
		MaxUses   int     `json:"maxUses,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Code == "" || input.Rate <= 0 || input.Rate > 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code and a rate in (0,1] are required"})
		return
	}

	promo := models.PromoCode{
		Code:    input.Code,
		Rate:    input.Rate,
		MaxUses: input.MaxUses,
		Active:  true,
	}
	if input.ExpiresAt != "" {
		t, err := time.Parse(time.RFC3339, input.ExpiresAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "expiresAt must be RFC 3339"})
			return
		}
		promo.ExpiresAt = t
	}

	id, err := h.repo.Create(c.Request.Context(), promo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// DeactivatePromoCode turns a code off.
func (h *PromoAdminHandler) DeactivatePromoCode(c *gin.Context) {
	if err := h.repo.Deactivate(c.Request.Context(), c.Param("code")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}
