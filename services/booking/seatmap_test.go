package booking

import (
	"context"
	"testing"

	seatmapRepo "voyago/database/repository/seatmap"
	"voyago/models"
)

type fakeSeatMapRepo struct {
	maps  map[string]*models.SeatMap
	saves int
}

func (f *fakeSeatMapRepo) GetByProductRef(_ context.Context, productRef string) (*models.SeatMap, error) {
	sm, ok := f.maps[productRef]
	if !ok {
		return nil, seatmapRepo.ErrSeatMapNotFound
	}
	return sm, nil
}

func (f *fakeSeatMapRepo) Save(_ context.Context, sm *models.SeatMap) error {
	f.maps[sm.ProductRef] = sm
	f.saves++
	return nil
}

func newSeatService() (*DefaultService, *fakeSeatMapRepo) {
	repo := &fakeSeatMapRepo{maps: map[string]*models.SeatMap{
		"VY-101": {
			ID:         "sm1",
			ProductRef: "VY-101",
			Rows:       2,
			Cols:       2,
			Seats: []models.Seat{
				{Code: "1A", Status: models.SeatAvailable},
				{Code: "1B", Status: models.SeatHeld, HeldBy: "other-session"},
				{Code: "2A", Status: models.SeatBooked, BookingID: "b9"},
				{Code: "2B", Status: models.SeatAvailable},
			},
		},
	}}
	return &DefaultService{SeatMapRepo: repo}, repo
}

func seatByCode(t *testing.T, sm *models.SeatMap, code string) *models.Seat {
	t.Helper()
	for i := range sm.Seats {
		if sm.Seats[i].Code == code {
			return &sm.Seats[i]
		}
	}
	t.Fatalf("seat %s missing from map", code)
	return nil
}

func TestSelectSeatHoldsAvailable(t *testing.T) {
	svc, repo := newSeatService()

	sm, err := svc.SelectSeat(context.Background(), "VY-101", "1A", "sess-1")
	if err != nil {
		t.Fatalf("SelectSeat: %v", err)
	}
	seat := seatByCode(t, sm, "1A")
	if seat.Status != models.SeatHeld || seat.HeldBy != "sess-1" {
		t.Fatalf("unexpected seat state: %+v", seat)
	}
	if repo.saves != 1 {
		t.Fatalf("expected 1 save, got %d", repo.saves)
	}

	// Selecting the held seat again from the same session is idempotent.
	if _, err := svc.SelectSeat(context.Background(), "VY-101", "1A", "sess-1"); err != nil {
		t.Fatalf("idempotent reselect: %v", err)
	}
}

func TestSelectSeatRefusals(t *testing.T) {
	svc, _ := newSeatService()

	cases := []struct {
		name string
		code string
	}{
		{"held by another session", "1B"},
		{"already booked", "2A"},
		{"nonexistent seat", "9Z"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.SelectSeat(context.Background(), "VY-101", tc.code, "sess-1"); err == nil {
				t.Fatalf("expected refusal for seat %s", tc.code)
			}
		})
	}

	if _, err := svc.SelectSeat(context.Background(), "VY-999", "1A", "sess-1"); err == nil {
		t.Fatal("expected an error for an unknown departure")
	}
}

func TestReleaseSeat(t *testing.T) {
	svc, _ := newSeatService()

	svc.SelectSeat(context.Background(), "VY-101", "1A", "sess-1")
	sm, err := svc.ReleaseSeat(context.Background(), "VY-101", "1A", "sess-1")
	if err != nil {
		t.Fatalf("ReleaseSeat: %v", err)
	}
	seat := seatByCode(t, sm, "1A")
	if seat.Status != models.SeatAvailable || seat.HeldBy != "" {
		t.Fatalf("expected seat released, got %+v", seat)
	}

	// Releasing a hold owned by another session leaves it intact.
	sm, err = svc.ReleaseSeat(context.Background(), "VY-101", "1B", "sess-1")
	if err != nil {
		t.Fatalf("ReleaseSeat other hold: %v", err)
	}
	seat = seatByCode(t, sm, "1B")
	if seat.Status != models.SeatHeld || seat.HeldBy != "other-session" {
		t.Fatalf("foreign hold was disturbed: %+v", seat)
	}
}

func TestConfirmSeats(t *testing.T) {
	svc, repo := newSeatService()
	svc.SelectSeat(context.Background(), "VY-101", "1A", "sess-1")
	svc.SelectSeat(context.Background(), "VY-101", "2B", "sess-1")

	sm := repo.maps["VY-101"]
	ConfirmSeats(sm, []string{"1A", "2B"}, "booking-42")

	for _, code := range []string{"1A", "2B"} {
		seat := seatByCode(t, sm, code)
		if seat.Status != models.SeatBooked || seat.BookingID != "booking-42" || seat.HeldBy != "" {
			t.Fatalf("seat %s not confirmed: %+v", code, seat)
		}
	}
}
