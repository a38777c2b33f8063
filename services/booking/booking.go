package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"voyago/models"
	"voyago/utils"

	"go.uber.org/zap"
)

// ErrStoreFailed signals that a booking could not be persisted. The quote
// session is untouched, so the caller may simply retry the request.
var ErrStoreFailed = errors.New("failed to persist booking")

// CreateFromQuote persists a booking holding only the final total and its
// line-item breakdown from the quote. The quote session is discarded only
// after the booking record exists; any earlier failure leaves the session
// intact so the request can be retried. Seats held by the session stay held
// until payment settles them.
func (s *DefaultService) CreateFromQuote(ctx context.Context, req CreateRequest) (*models.Booking, error) {
	if req.SessionID == "" {
		return nil, errors.New("missing quote session ID")
	}
	if req.TravelerName == "" {
		return nil, errors.New("missing traveler name")
	}

	q, bd, err := s.QuoteSvc.Get(req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quote: %w", err)
	}
	if req.UserID != "" && q.UserID != "" && req.UserID != q.UserID {
		return nil, errors.New("quote session belongs to a different user")
	}

	booking := models.Booking{
		UserID:       req.UserID,
		Kind:         req.Kind,
		ProductRef:   q.ProductRef,
		TravelerName: req.TravelerName,
		TravelDate:   req.TravelDate,
		Seats:        req.Seats,
		Lines:        bd.Lines,
		Total:        bd.FinalTotal,
		Currency:     q.Currency,
		Status:       models.BookingPending,
	}

	id, err := s.BookingRepo.Create(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailed, err)
	}
	booking.ID = id

	if err := s.QuoteSvc.Cancel(req.SessionID); err != nil {
		utils.GetLogger().Warn("failed to discard quote session after booking",
			zap.String("sessionID", req.SessionID), zap.Error(err))
	}

	utils.GetLogger().Info("Booking created",
		zap.String("bookingID", id),
		zap.String("kind", req.Kind),
		zap.Float64("total", bd.FinalTotal))
	return &booking, nil
}

// GetByID returns one booking.
func (s *DefaultService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return s.BookingRepo.GetByID(ctx, id)
}

// List returns one page of a user's booking history after applying substring
// search, comparator sort and pagination in memory.
func (s *DefaultService) List(ctx context.Context, query models.BookingQuery) (models.BookingPage, error) {
	bookings, err := s.BookingRepo.GetByUserID(ctx, query.UserID)
	if err != nil {
		return models.BookingPage{}, fmt.Errorf("failed to load bookings: %w", err)
	}
	return ApplyQuery(bookings, query), nil
}

// Cancel marks a pending booking cancelled. Paid bookings cannot be cancelled
// here; refunds are a back-office concern.
func (s *DefaultService) Cancel(ctx context.Context, id string) error {
	booking, err := s.BookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if booking.Status == models.BookingPaid {
		return errors.New("paid bookings cannot be cancelled")
	}

	if err := s.BookingRepo.Cancel(ctx, id); err != nil {
		return err
	}

	// Free any seats the booking was holding.
	if len(booking.Seats) > 0 {
		if err := s.releaseSeats(ctx, booking.ProductRef, booking.Seats); err != nil {
			utils.GetLogger().Warn("failed to release seats on cancel",
				zap.String("bookingID", id), zap.Error(err))
		}
	}
	return nil
}

func (s *DefaultService) releaseSeats(ctx context.Context, productRef string, seats []string) error {
	sm, err := s.SeatMapRepo.GetByProductRef(ctx, productRef)
	if err != nil {
		return err
	}
	for _, code := range seats {
		for i := range sm.Seats {
			if sm.Seats[i].Code == code && sm.Seats[i].Status == models.SeatHeld {
				sm.Seats[i] = models.Seat{Code: code, Status: models.SeatAvailable}
			}
		}
	}
	sm.UpdatedAt = time.Now()
	return s.SeatMapRepo.Save(ctx, sm)
}
