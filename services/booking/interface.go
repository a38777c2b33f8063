package booking

import (
	"context"

	bookingRepo "voyago/database/repository/booking"
	seatmapRepo "voyago/database/repository/seatmap"
	"voyago/models"
	"voyago/services/quote"
)

// Service manages confirmed bookings and their seat selections.
type Service interface {
	CreateFromQuote(ctx context.Context, req CreateRequest) (*models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, query models.BookingQuery) (models.BookingPage, error)
	Cancel(ctx context.Context, id string) error

	SeatMap(ctx context.Context, productRef string) (*models.SeatMap, error)
	SelectSeat(ctx context.Context, productRef, seatCode, sessionID string) (*models.SeatMap, error)
	ReleaseSeat(ctx context.Context, productRef, seatCode, sessionID string) (*models.SeatMap, error)
}

// CreateRequest turns a finalized quote session into a booking record.
type CreateRequest struct {
	SessionID    string   `json:"sessionID"`
	UserID       string   `json:"userID"`
	Kind         string   `json:"kind"` // "flight", "hotel", "carRental"
	TravelerName string   `json:"travelerName"`
	TravelDate   string   `json:"travelDate"`
	Seats        []string `json:"seats,omitempty"`
}

// DefaultService implements Service.
type DefaultService struct {
	BookingRepo bookingRepo.BookingRepository
	SeatMapRepo seatmapRepo.SeatMapRepository
	QuoteSvc    quote.SessionService
}
