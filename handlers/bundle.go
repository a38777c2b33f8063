package handlers

// HandlerBundle aggregates all HTTP handlers for route registration.
type HandlerBundle struct {
	Quote      *QuoteHandler
	Booking    *BookingHandler
	Catalog    *CatalogHandler
	Payment    *PaymentHandler
	PromoAdmin *PromoAdminHandler
}
