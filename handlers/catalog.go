package handlers

import (
	"net/http"
	"strconv"

	"voyago/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the travel product catalog.
type CatalogHandler struct {
	svc catalog.Service
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// SearchFlights filters, sorts and paginates the flight catalog.
func (h *CatalogHandler) SearchFlights(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	query := catalog.FlightQuery{
		Origin:      c.Query("origin"),
		Destination: c.Query("destination"),
		Date:        c.Query("date"),
		SortBy:      c.DefaultQuery("sortBy", "price"),
		Desc:        c.Query("desc") == "true",
		Offset:      offset,
		Limit:       limit,
	}

	page, err := h.svc.SearchFlights(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetFlight returns one catalog flight.
func (h *CatalogHandler) GetFlight(c *gin.Context) {
	flight, err := h.svc.GetFlight(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "flight not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"flight": flight})
}

// ListHotels returns the hotel catalog.
func (h *CatalogHandler) ListHotels(c *gin.Context) {
	hotels, err := h.svc.ListHotels(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotels": hotels})
}

// GetHotel returns one catalog hotel.
func (h *CatalogHandler) GetHotel(c *gin.Context) {
	hotel, err := h.svc.GetHotel(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "hotel not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotel": hotel})
}

// ListCarOffers returns the car rental catalog.
func (h *CatalogHandler) ListCarOffers(c *gin.Context) {
	offers, err := h.svc.ListCarOffers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"offers": offers})
}

// GetCarOffer returns one car rental offer.
func (h *CatalogHandler) GetCarOffer(c *gin.Context) {
	offer, err := h.svc.GetCarOffer(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "car offer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"offer": offer})
}
