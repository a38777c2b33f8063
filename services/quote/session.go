package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"voyago/config"
	"voyago/models"
	"voyago/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Quote sessions expire after 30 minutes of inactivity; every mutation
// refreshes the TTL.
const sessionTTL = 30 * time.Minute

// ErrSessionNotFound is returned for an unknown or expired quote session.
var ErrSessionNotFound = errors.New("quote session not found or expired")

// Initiate creates a fresh quote, assigns it a session ID and stores it in
// Redis. A quote is created every time a user opens a pricing screen.
func (s *DefaultSessionService) Initiate(req InitiateRequest) (*models.Quote, models.QuoteBreakdown, error) {
	if req.BaseUnitPrice < 0 {
		return nil, models.QuoteBreakdown{}, errors.New("base unit price must not be negative")
	}
	if req.UnitCount < 1 {
		return nil, models.QuoteBreakdown{}, errors.New("unit count must be at least 1")
	}

	taxRate := config.AppConfig.TaxRate
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}
	currency := req.Currency
	if currency == "" {
		currency = models.CurrencyUSD
	}

	q := &models.Quote{
		SessionID:     uuid.New().String(),
		UserID:        req.UserID,
		ProductRef:    req.ProductRef,
		Currency:      currency,
		BaseUnitPrice: req.BaseUnitPrice,
		UnitCount:     req.UnitCount,
		TaxRate:       taxRate,
		Promo:         models.PromoState{Status: models.PromoNone},
		CreatedAt:     time.Now(),
	}

	if err := saveQuote(q); err != nil {
		return nil, models.QuoteBreakdown{}, err
	}
	return q, Breakdown(q), nil
}

// Get loads a quote session and its current breakdown.
func (s *DefaultSessionService) Get(sessionID string) (*models.Quote, models.QuoteBreakdown, error) {
	q, err := loadQuote(sessionID)
	if err != nil {
		return nil, models.QuoteBreakdown{}, err
	}
	return q, Breakdown(q), nil
}

// AddItem applies one add-on selection to the quote. Meals accumulate,
// baggage tiers replace each other, insurance and car rental toggle, custom
// items append.
func (s *DefaultSessionService) AddItem(sessionID string, req AddOnRequest) (*models.Quote, models.QuoteBreakdown, error) {
	q, err := loadQuote(sessionID)
	if err != nil {
		return nil, models.QuoteBreakdown{}, err
	}

	price := defaultUnitPrice(req.Kind)
	if req.UnitPrice != nil {
		price = *req.UnitPrice
	}

	switch req.Kind {
	case models.AddOnMeal:
		AddMeal(q, price)
	case models.AddOnBaggage20, models.AddOnBaggage40:
		SelectBaggage(q, req.Kind, price)
	case models.AddOnInsurance, models.AddOnCarRental:
		ToggleFlat(q, req.Kind, price)
	case models.AddOnCustom:
		qty := req.Quantity
		if qty == 0 {
			qty = 1
		}
		AddCustom(q, req.Label, qty, price)
	default:
		return nil, models.QuoteBreakdown{}, fmt.Errorf("unknown add-on kind: %s", req.Kind)
	}

	if err := saveQuote(q); err != nil {
		return nil, models.QuoteBreakdown{}, err
	}
	return q, Breakdown(q), nil
}

// RemoveMealItem removes one meal unit from the quote.
func (s *DefaultSessionService) RemoveMealItem(sessionID string) (*models.Quote, models.QuoteBreakdown, error) {
	q, err := loadQuote(sessionID)
	if err != nil {
		return nil, models.QuoteBreakdown{}, err
	}
	RemoveMeal(q)
	if err := saveQuote(q); err != nil {
		return nil, models.QuoteBreakdown{}, err
	}
	return q, Breakdown(q), nil
}

// SetCurrency switches the display currency of the quote.
func (s *DefaultSessionService) SetCurrency(sessionID string, currency models.Currency) (*models.Quote, models.QuoteBreakdown, error) {
	if currency != models.CurrencyUSD && currency != models.CurrencyVND {
		return nil, models.QuoteBreakdown{}, fmt.Errorf("unsupported currency: %s", currency)
	}
	q, err := loadQuote(sessionID)
	if err != nil {
		return nil, models.QuoteBreakdown{}, err
	}
	q.Currency = currency
	if err := saveQuote(q); err != nil {
		return nil, models.QuoteBreakdown{}, err
	}
	return q, Breakdown(q), nil
}

// ApplyPromo submits a promo code to the validation collaborator. The
// pending state is persisted before the collaborator call so a concurrent
// resubmission is refused while one is in flight. A collaborator failure is
// settled as a rejection with a generic message; it never blocks the flow.
func (s *DefaultSessionService) ApplyPromo(sessionID, code string) (*models.Quote, models.QuoteBreakdown, error) {
	q, err := loadQuote(sessionID)
	if err != nil {
		return nil, models.QuoteBreakdown{}, err
	}

	if err := BeginValidation(q, code); err != nil {
		return nil, models.QuoteBreakdown{}, err
	}
	if err := saveQuote(q); err != nil {
		return nil, models.QuoteBreakdown{}, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := s.Validator.Validate(ctx, code)
	if err != nil {
		utils.GetLogger().Warn("promo validation collaborator failed",
			zap.String("sessionID", sessionID), zap.Error(err))
		result = models.PromoValidationResult{Valid: false, Error: GenericValidationMessage}
	}
	ResolveValidation(q, result)

	if err := saveQuote(q); err != nil {
		return nil, models.QuoteBreakdown{}, err
	}
	return q, Breakdown(q), nil
}

// Cancel discards a quote session. The booking service calls this once a
// booking record has been persisted; the handler exposes it for an explicit
// user abandon.
func (s *DefaultSessionService) Cancel(sessionID string) error {
	cacheClient := utils.GetSessionCacheClient()
	if err := cacheClient.Del(context.Background(), sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to discard quote session: %w", err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return "quote:" + sessionID
}

func loadQuote(sessionID string) (*models.Quote, error) {
	cacheClient := utils.GetSessionCacheClient()
	data, err := cacheClient.Get(context.Background(), sessionKey(sessionID)).Result()
	if err != nil {
		return nil, ErrSessionNotFound
	}
	var q models.Quote
	if err := json.Unmarshal([]byte(data), &q); err != nil {
		return nil, fmt.Errorf("failed to parse quote session: %w", err)
	}
	return &q, nil
}

func saveQuote(q *models.Quote) error {
	data, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("failed to marshal quote session: %w", err)
	}
	cacheClient := utils.GetSessionCacheClient()
	if err := cacheClient.Set(context.Background(), sessionKey(q.SessionID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store quote session: %w", err)
	}
	return nil
}

func defaultUnitPrice(kind models.AddOnKind) float64 {
	switch kind {
	case models.AddOnMeal:
		return MealUnitPrice
	case models.AddOnBaggage20:
		return Baggage20UnitPrice
	case models.AddOnBaggage40:
		return Baggage40UnitPrice
	case models.AddOnInsurance:
		return InsuranceUnitPrice
	case models.AddOnCarRental:
		return CarRentalUnitPrice
	default:
		return 0
	}
}
