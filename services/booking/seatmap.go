package booking

import (
	"context"
	"fmt"
	"time"

	"voyago/models"
)

// SeatMap returns the seat layout for a departure.
func (s *DefaultService) SeatMap(ctx context.Context, productRef string) (*models.SeatMap, error) {
	return s.SeatMapRepo.GetByProductRef(ctx, productRef)
}

// SelectSeat places a hold on an available seat for the given quote session.
// Selecting a seat the same session already holds is idempotent; a seat held
// by someone else or already booked is refused.
func (s *DefaultService) SelectSeat(ctx context.Context, productRef, seatCode, sessionID string) (*models.SeatMap, error) {
	sm, err := s.SeatMapRepo.GetByProductRef(ctx, productRef)
	if err != nil {
		return nil, err
	}

	seat := findSeat(sm, seatCode)
	if seat == nil {
		return nil, fmt.Errorf("seat %s does not exist", seatCode)
	}
	switch seat.Status {
	case models.SeatAvailable:
		seat.Status = models.SeatHeld
		seat.HeldBy = sessionID
	case models.SeatHeld:
		if seat.HeldBy != sessionID {
			return nil, fmt.Errorf("seat %s is held by another traveler", seatCode)
		}
	default:
		return nil, fmt.Errorf("seat %s is already booked", seatCode)
	}

	sm.UpdatedAt = time.Now()
	if err := s.SeatMapRepo.Save(ctx, sm); err != nil {
		return nil, fmt.Errorf("failed to save seat map: %w", err)
	}
	return sm, nil
}

// ReleaseSeat drops a hold owned by the given session.
func (s *DefaultService) ReleaseSeat(ctx context.Context, productRef, seatCode, sessionID string) (*models.SeatMap, error) {
	sm, err := s.SeatMapRepo.GetByProductRef(ctx, productRef)
	if err != nil {
		return nil, err
	}

	seat := findSeat(sm, seatCode)
	if seat == nil {
		return nil, fmt.Errorf("seat %s does not exist", seatCode)
	}
	if seat.Status == models.SeatHeld && seat.HeldBy == sessionID {
		*seat = models.Seat{Code: seat.Code, Status: models.SeatAvailable}
	}

	sm.UpdatedAt = time.Now()
	if err := s.SeatMapRepo.Save(ctx, sm); err != nil {
		return nil, fmt.Errorf("failed to save seat map: %w", err)
	}
	return sm, nil
}

// ConfirmSeats converts held seats into booked ones once payment succeeds.
func ConfirmSeats(sm *models.SeatMap, seats []string, bookingID string) {
	for _, code := range seats {
		if seat := findSeat(sm, code); seat != nil {
			seat.Status = models.SeatBooked
			seat.HeldBy = ""
			seat.BookingID = bookingID
		}
	}
}

func findSeat(sm *models.SeatMap, code string) *models.Seat {
	for i := range sm.Seats {
		if sm.Seats[i].Code == code {
			return &sm.Seats[i]
		}
	}
	return nil
}
