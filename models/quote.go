package models

import "time"

// AddOnKind identifies an optional purchasable line item on a quote.
type AddOnKind string

const (
	AddOnMeal      AddOnKind = "meal"
	AddOnBaggage20 AddOnKind = "baggage20kg"
	AddOnBaggage40 AddOnKind = "baggage40kg"
	AddOnInsurance AddOnKind = "insurance"
	AddOnCarRental AddOnKind = "carRental"
	AddOnCustom    AddOnKind = "custom"
)

// AddOn is a single selected line item. Meals accumulate quantity, baggage is
// single-valued per quote, insurance and car rental are flat toggles.
type AddOn struct {
	Kind      AddOnKind `json:"kind"`
	Label     string    `json:"label,omitempty"` // free-form label for custom items
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unitPrice"`
}

// PromoStatus is the submission state of the promo-code machine.
type PromoStatus string

const (
	PromoNone       PromoStatus = "none"
	PromoValidating PromoStatus = "validating"
	PromoApplied    PromoStatus = "applied"
	PromoRejected   PromoStatus = "rejected"
)

// PromoState records the outcome of the most recent code submission. The
// active discount lives on the quote itself, so a rejected resubmission never
// disturbs an already-applied discount.
type PromoState struct {
	Status PromoStatus `json:"status"`
	Code   string      `json:"code,omitempty"`
	Reason string      `json:"reason,omitempty"` // surfaced verbatim when rejected
}

// Discount is a fractional reduction applied to the post-tax total.
type Discount struct {
	Code string  `json:"code"`
	Rate float64 `json:"rate"`
}

// Quote is the transient price computation shown to a user while they build a
// booking. It lives only in the session cache and is discarded once the final
// total is forwarded to payment.
type Quote struct {
	SessionID     string     `json:"sessionID"`
	UserID        string     `json:"userID"`
	ProductRef    string     `json:"productRef"` // flight/hotel/car catalog reference
	Currency      Currency   `json:"currency"`
	BaseUnitPrice float64    `json:"baseUnitPrice"`
	UnitCount     int        `json:"unitCount"` // passengers or nights
	AddOns        []AddOn    `json:"addOns"`
	TaxRate       float64    `json:"taxRate"`
	Discount      *Discount  `json:"discount,omitempty"`
	Promo         PromoState `json:"promo"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// Currency selects the display currency for formatted amounts.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyVND Currency = "VND"
)

// QuoteBreakdown is the rounded, display-ready view of a quote. Amounts are
// rounded to 2 places here and nowhere else.
type QuoteBreakdown struct {
	Lines               []ReceiptLine `json:"lines"`
	Subtotal            float64       `json:"subtotal"`
	Tax                 float64       `json:"tax"`
	TotalBeforeDiscount float64       `json:"totalBeforeDiscount"`
	DiscountRate        float64       `json:"discountRate,omitempty"`
	FinalTotal          float64       `json:"finalTotal"`
	Display             string        `json:"display"` // final total in the quote currency
}

// ReceiptLine is one row of the breakdown forwarded to the payment collaborator.
type ReceiptLine struct {
	Label     string  `json:"label"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Amount    float64 `json:"amount"`
}
