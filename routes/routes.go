package routes

import (
	"net/http"
	"time"

	"voyago/handlers"
	"voyago/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/flights", hb.Catalog.SearchFlights)
		api.GET("/flights/:id", hb.Catalog.GetFlight)
		api.GET("/hotels", hb.Catalog.ListHotels)
		api.GET("/hotels/:id", hb.Catalog.GetHotel)
		api.GET("/cars", hb.Catalog.ListCarOffers)
		api.GET("/cars/:id", hb.Catalog.GetCarOffer)
	}
}

// RegisterQuoteRoutes registers the quote session endpoints.
func RegisterQuoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/quotes")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Quote.InitiateQuote)
		api.GET("/:sessionID", hb.Quote.GetQuote)
		api.POST("/:sessionID/items", hb.Quote.AddQuoteItem)
		api.DELETE("/:sessionID/items/meal", hb.Quote.RemoveQuoteMeal)
		api.PUT("/:sessionID/currency", hb.Quote.SetQuoteCurrency)
		api.POST("/:sessionID/promo", hb.Quote.ApplyPromoCode)
		api.DELETE("/:sessionID", hb.Quote.CancelQuote)
	}
}

// RegisterBookingRoutes registers booking and seat-selection endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Booking.CreateBooking)
		api.GET("", hb.Booking.ListBookings)
		api.GET("/:id", hb.Booking.GetBooking)
		api.DELETE("/:id", hb.Booking.CancelBooking)

		api.GET("/seatmap/:productRef", hb.Booking.GetSeatMap)
		api.POST("/seatmap/:productRef/select", hb.Booking.SelectSeat)
		api.POST("/seatmap/:productRef/release", hb.Booking.ReleaseSeat)
	}
}

// RegisterPaymentRoutes registers payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Payment.ProcessPayment)
	}
}

// RegisterAdminRoutes sets up endpoints for promo catalog management.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/promos", hb.PromoAdmin.CreatePromoCode)
		api.DELETE("/promos/:code", hb.PromoAdmin.DeactivatePromoCode)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Voyago"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterQuoteRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
