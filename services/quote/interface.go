package quote

import (
	"voyago/models"
	"voyago/services/promo"
)

// InitiateRequest carries the inputs needed to open a fresh quote for a
// pricing screen.
type InitiateRequest struct {
	UserID        string          `json:"userID"`
	ProductRef    string          `json:"productRef"`
	Currency      models.Currency `json:"currency"`
	BaseUnitPrice float64         `json:"baseUnitPrice"`
	UnitCount     int             `json:"unitCount"`
	TaxRate       *float64        `json:"taxRate,omitempty"` // defaults to the configured product-wide rate
}

// AddOnRequest selects or toggles one add-on on an open quote. UnitPrice may
// override the catalog default.
type AddOnRequest struct {
	Kind      models.AddOnKind `json:"kind"`
	Label     string           `json:"label,omitempty"`
	Quantity  int              `json:"quantity,omitempty"`
	UnitPrice *float64         `json:"unitPrice,omitempty"`
}

// SessionService manages the lifecycle of quote sessions: create, mutate via
// add-on and promo operations, and hand the final numbers to the
// booking/payment collaborators. Reads never destroy the session; the booking
// service discards it with Cancel once a booking record exists.
type SessionService interface {
	Initiate(req InitiateRequest) (*models.Quote, models.QuoteBreakdown, error)
	Get(sessionID string) (*models.Quote, models.QuoteBreakdown, error)
	AddItem(sessionID string, req AddOnRequest) (*models.Quote, models.QuoteBreakdown, error)
	RemoveMealItem(sessionID string) (*models.Quote, models.QuoteBreakdown, error)
	SetCurrency(sessionID string, currency models.Currency) (*models.Quote, models.QuoteBreakdown, error)
	ApplyPromo(sessionID, code string) (*models.Quote, models.QuoteBreakdown, error)
	Cancel(sessionID string) error
}

// DefaultSessionService implements SessionService on top of the Redis session
// cache and the promo validation collaborator.
type DefaultSessionService struct {
	Validator promo.Validator
}
