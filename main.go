// File: voyago/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voyago/config"
	"voyago/cron"
	"voyago/database"
	bookingRepoPkg "voyago/database/repository/booking"
	catalogRepoPkg "voyago/database/repository/catalog"
	promoRepoPkg "voyago/database/repository/promo"
	seatmapRepoPkg "voyago/database/repository/seatmap"
	"voyago/handlers"
	"voyago/middleware"
	"voyago/routes"
	"voyago/services/booking"
	"voyago/services/catalog"
	"voyago/services/payment"
	"voyago/services/promo"
	"voyago/services/quote"
	"voyago/services/tasks"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	defer database.CloseDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	promoRepo := promoRepoPkg.NewMongoPromoRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	seatMapRepo := seatmapRepoPkg.NewMongoSeatMapRepo()

	// services.
	promoValidator := promo.NewDefaultValidator(promoRepo)
	quoteService := &quote.DefaultSessionService{
		Validator: promoValidator,
	}
	bookingService := &booking.DefaultService{
		BookingRepo: bookingRepo,
		SeatMapRepo: seatMapRepo,
		QuoteSvc:    quoteService,
	}
	catalogService := &catalog.DefaultService{
		Repo: catalogRepo,
	}
	ticketQueue := tasks.NewAsynqEnqueuer()
	paymentService := payment.NewPaymentHandler(logger, bookingRepo, seatMapRepo, ticketQueue)

	// Background e-ticket worker.
	cron.InitTicketWorker(bookingRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Quote:      handlers.NewQuoteHandler(quoteService, logger),
		Booking:    handlers.NewBookingHandler(bookingService, logger),
		Catalog:    handlers.NewCatalogHandler(catalogService),
		Payment:    handlers.NewPaymentHandler(paymentService, logger),
		PromoAdmin: handlers.NewPromoAdminHandler(promoRepo),
	}

	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:              ":" + config.AppConfig.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Sugar().Infof("Voyago listening on :%s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("server shutdown failed: %v", err)
	}

	logger.Info("Server stopped cleanly.")
}
