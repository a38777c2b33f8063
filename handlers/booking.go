package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"voyago/models"
	"voyago/services/booking"
	"voyago/services/quote"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes booking creation, listing and seat selection.
type BookingHandler struct {
	svc    booking.Service
	logger *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, logger: logger}
}

// CreateBooking finalizes a quote session into a booking record.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input booking.CreateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.UserID = c.GetString("userID")

	bk, err := h.svc.CreateFromQuote(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, quote.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "quote session not found or expired"})
		case errors.Is(err, booking.ErrStoreFailed):
			h.logger.Error("booking persistence failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save booking, please try again"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": bk})
}

// GetBooking returns one booking.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bk, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": bk})
}

// ListBookings returns one page of the caller's booking history.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	query := models.BookingQuery{
		UserID: c.GetString("userID"),
		Search: c.Query("search"),
		SortBy: c.DefaultQuery("sortBy", "created"),
		Desc:   c.Query("desc") == "true",
		Offset: offset,
		Limit:  limit,
	}

	page, err := h.svc.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}

// CancelBooking cancels a pending booking and frees its held seats.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	if err := h.svc.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// GetSeatMap returns the seat layout for a departure.
func (h *BookingHandler) GetSeatMap(c *gin.Context) {
	sm, err := h.svc.SeatMap(c.Request.Context(), c.Param("productRef"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "seat map not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"seatMap": sm})
}

// SelectSeat places a hold on a seat for a quote session.
func (h *BookingHandler) SelectSeat(c *gin.Context) {
	var input struct {
		SeatCode  string `json:"seatCode"`
		SessionID string `json:"sessionID"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sm, err := h.svc.SelectSeat(c.Request.Context(), c.Param("productRef"), input.SeatCode, input.SessionID)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	h.logger.Debug("seat held",
		zap.String("productRef", c.Param("productRef")),
		zap.String("seat", input.SeatCode))
	c.JSON(http.StatusOK, gin.H{"seatMap": sm})
}

// ReleaseSeat drops a seat hold owned by a quote session.
func (h *BookingHandler) ReleaseSeat(c *gin.Context) {
	var input struct {
		SeatCode  string `json:"seatCode"`
		SessionID string `json:"sessionID"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sm, err := h.svc.ReleaseSeat(c.Request.Context(), c.Param("productRef"), input.SeatCode, input.SessionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"seatMap": sm})
}
