package quote

import (
	"math"

	"voyago/models"
)

// Default add-on unit prices for the current product catalog. Callers may
// override any of these per quote; they are compile-time constants, never
// fetched or cached here.
const (
	MealUnitPrice      = 5.0
	Baggage20UnitPrice = 20.0
	Baggage40UnitPrice = 35.0
	InsuranceUnitPrice = 12.0
	CarRentalUnitPrice = 45.0
)

// Round2 rounds an amount to 2 decimal places. It is applied only when a
// value is rendered into a breakdown, never mid-calculation, so repeated
// add/remove operations cannot compound rounding error.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// BaseFare returns the aggregate base price: ticket price per passenger times
// passenger count, or room rate per night times night count. Counts are
// validated at the HTTP boundary before a quote exists.
func BaseFare(baseUnitPrice float64, unitCount int) float64 {
	return baseUnitPrice * float64(unitCount)
}

// AddOnTotal sums the contribution of every selected add-on line.
func AddOnTotal(addOns []models.AddOn) float64 {
	total := 0.0
	for _, a := range addOns {
		total += float64(a.Quantity) * a.UnitPrice
	}
	return total
}

// Subtotal is the base fare plus all add-on contributions, before tax and
// discount.
func Subtotal(q *models.Quote) float64 {
	return BaseFare(q.BaseUnitPrice, q.UnitCount) + AddOnTotal(q.AddOns)
}

// Tax applies the configured flat tax rate to a subtotal.
func Tax(subtotal, rate float64) float64 {
	return subtotal * rate
}

// TotalBeforeDiscount is the subtotal plus tax.
func TotalBeforeDiscount(q *models.Quote) float64 {
	sub := Subtotal(q)
	return sub + Tax(sub, q.TaxRate)
}

// FinalTotal applies the active discount, if any, to the post-tax total.
func FinalTotal(q *models.Quote) float64 {
	total := TotalBeforeDiscount(q)
	if q.Discount != nil {
		total *= 1 - q.Discount.Rate
	}
	return total
}

// Breakdown renders the quote into its display form: one receipt line per
// priced item plus the rounded subtotal, tax and final total.
func Breakdown(q *models.Quote) models.QuoteBreakdown {
	lines := make([]models.ReceiptLine, 0, len(q.AddOns)+1)
	lines = append(lines, models.ReceiptLine{
		Label:     baseFareLabel(q),
		Quantity:  q.UnitCount,
		UnitPrice: q.BaseUnitPrice,
		Amount:    Round2(BaseFare(q.BaseUnitPrice, q.UnitCount)),
	})
	for _, a := range q.AddOns {
		lines = append(lines, models.ReceiptLine{
			Label:     addOnLabel(a),
			Quantity:  a.Quantity,
			UnitPrice: a.UnitPrice,
			Amount:    Round2(float64(a.Quantity) * a.UnitPrice),
		})
	}

	sub := Subtotal(q)
	bd := models.QuoteBreakdown{
		Lines:               lines,
		Subtotal:            Round2(sub),
		Tax:                 Round2(Tax(sub, q.TaxRate)),
		TotalBeforeDiscount: Round2(TotalBeforeDiscount(q)),
		FinalTotal:          Round2(FinalTotal(q)),
	}
	if q.Discount != nil {
		bd.DiscountRate = q.Discount.Rate
	}
	bd.Display = Format(bd.FinalTotal, q.Currency)
	return bd
}

func baseFareLabel(q *models.Quote) string {
	if q.ProductRef != "" {
		return q.ProductRef
	}
	return "Base fare"
}

func addOnLabel(a models.AddOn) string {
	switch a.Kind {
	case models.AddOnMeal:
		return "In-flight meal"
	case models.AddOnBaggage20:
		return "Checked baggage 20kg"
	case models.AddOnBaggage40:
		return "Checked baggage 40kg"
	case models.AddOnInsurance:
		return "Travel insurance"
	case models.AddOnCarRental:
		return "Car rental"
	default:
		if a.Label != "" {
			return a.Label
		}
		return "Extra service"
	}
}
