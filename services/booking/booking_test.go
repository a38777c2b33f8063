package booking

import (
	"context"
	"errors"
	"testing"

	"voyago/models"
	"voyago/services/quote"
)

type fakeQuoteSession struct {
	quotes    map[string]*models.Quote
	cancelled []string
}

func (f *fakeQuoteSession) Initiate(quote.InitiateRequest) (*models.Quote, models.QuoteBreakdown, error) {
	return nil, models.QuoteBreakdown{}, errors.New("not supported")
}

func (f *fakeQuoteSession) Get(sessionID string) (*models.Quote, models.QuoteBreakdown, error) {
	q, ok := f.quotes[sessionID]
	if !ok {
		return nil, models.QuoteBreakdown{}, quote.ErrSessionNotFound
	}
	return q, quote.Breakdown(q), nil
}

func (f *fakeQuoteSession) AddItem(string, quote.AddOnRequest) (*models.Quote, models.QuoteBreakdown, error) {
	return nil, models.QuoteBreakdown{}, errors.New("not supported")
}

func (f *fakeQuoteSession) RemoveMealItem(string) (*models.Quote, models.QuoteBreakdown, error) {
	return nil, models.QuoteBreakdown{}, errors.New("not supported")
}

func (f *fakeQuoteSession) SetCurrency(string, models.Currency) (*models.Quote, models.QuoteBreakdown, error) {
	return nil, models.QuoteBreakdown{}, errors.New("not supported")
}

func (f *fakeQuoteSession) ApplyPromo(string, string) (*models.Quote, models.QuoteBreakdown, error) {
	return nil, models.QuoteBreakdown{}, errors.New("not supported")
}

func (f *fakeQuoteSession) Cancel(sessionID string) error {
	delete(f.quotes, sessionID)
	f.cancelled = append(f.cancelled, sessionID)
	return nil
}

type fakeBookingRepo struct {
	createErr error
	created   []models.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking models.Booking) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	booking.ID = "bk-1"
	f.created = append(f.created, booking)
	return booking.ID, nil
}

func (f *fakeBookingRepo) GetByID(context.Context, string) (*models.Booking, error) {
	return nil, errors.New("not supported")
}

func (f *fakeBookingRepo) GetByUserID(context.Context, string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) UpdateStatus(context.Context, string, string, string) error { return nil }
func (f *fakeBookingRepo) MarkTicketIssued(context.Context, string) error             { return nil }
func (f *fakeBookingRepo) Cancel(context.Context, string) error                       { return nil }

func newCreateService(repo *fakeBookingRepo) (*DefaultService, *fakeQuoteSession) {
	sessions := &fakeQuoteSession{quotes: map[string]*models.Quote{
		"sess-1": {
			SessionID:     "sess-1",
			UserID:        "user-1",
			ProductRef:    "VY-101 SGN-HAN",
			Currency:      models.CurrencyUSD,
			BaseUnitPrice: 100,
			UnitCount:     2,
			TaxRate:       0.10,
		},
	}}
	return &DefaultService{BookingRepo: repo, QuoteSvc: sessions}, sessions
}

func TestCreateFromQuotePersistsThenDiscardsSession(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc, sessions := newCreateService(repo)

	bk, err := svc.CreateFromQuote(context.Background(), CreateRequest{
		SessionID:    "sess-1",
		UserID:       "user-1",
		Kind:         "flight",
		TravelerName: "An Nguyen",
		TravelDate:   "2026-09-10",
	})
	if err != nil {
		t.Fatalf("CreateFromQuote: %v", err)
	}
	if bk.ID != "bk-1" || bk.Total != 220.00 || bk.Status != models.BookingPending {
		t.Fatalf("unexpected booking: %+v", bk)
	}
	if len(sessions.cancelled) != 1 || sessions.cancelled[0] != "sess-1" {
		t.Fatalf("expected session discarded after persist, got %v", sessions.cancelled)
	}
}

func TestCreateFromQuoteFailedPersistKeepsSession(t *testing.T) {
	repo := &fakeBookingRepo{createErr: errors.New("write timeout")}
	svc, sessions := newCreateService(repo)

	req := CreateRequest{
		SessionID:    "sess-1",
		UserID:       "user-1",
		Kind:         "flight",
		TravelerName: "An Nguyen",
	}
	_, err := svc.CreateFromQuote(context.Background(), req)
	if !errors.Is(err, ErrStoreFailed) {
		t.Fatalf("expected ErrStoreFailed, got %v", err)
	}
	if len(sessions.cancelled) != 0 {
		t.Fatalf("session discarded on a failed persist: %v", sessions.cancelled)
	}
	if _, ok := sessions.quotes["sess-1"]; !ok {
		t.Fatal("quote session lost; a retry would fail")
	}

	// The same request succeeds once the store recovers.
	repo.createErr = nil
	bk, err := svc.CreateFromQuote(context.Background(), req)
	if err != nil {
		t.Fatalf("retry after store recovery: %v", err)
	}
	if bk.ID != "bk-1" {
		t.Fatalf("unexpected booking on retry: %+v", bk)
	}
}

func TestCreateFromQuoteOwnershipMismatchKeepsSession(t *testing.T) {
	svc, sessions := newCreateService(&fakeBookingRepo{})

	_, err := svc.CreateFromQuote(context.Background(), CreateRequest{
		SessionID:    "sess-1",
		UserID:       "someone-else",
		Kind:         "flight",
		TravelerName: "An Nguyen",
	})
	if err == nil {
		t.Fatal("expected an error for a foreign quote session")
	}
	if len(sessions.cancelled) != 0 {
		t.Fatalf("session discarded on a rejected request: %v", sessions.cancelled)
	}
	if _, ok := sessions.quotes["sess-1"]; !ok {
		t.Fatal("quote session lost on a rejected request")
	}
}

func TestCreateFromQuoteUnknownSession(t *testing.T) {
	svc, _ := newCreateService(&fakeBookingRepo{})

	_, err := svc.CreateFromQuote(context.Background(), CreateRequest{
		SessionID:    "missing",
		UserID:       "user-1",
		TravelerName: "An Nguyen",
	})
	if !errors.Is(err, quote.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
