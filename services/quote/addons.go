package quote

import "voyago/models"

// AddMeal increments the meal line's quantity, creating the line on first
// selection. Meals are additive: repeated selection stacks quantity.
func AddMeal(q *models.Quote, unitPrice float64) {
	for i := range q.AddOns {
		if q.AddOns[i].Kind == models.AddOnMeal {
			q.AddOns[i].Quantity++
			return
		}
	}
	q.AddOns = append(q.AddOns, models.AddOn{
		Kind:      models.AddOnMeal,
		Quantity:  1,
		UnitPrice: unitPrice,
	})
}

// RemoveMeal decrements the meal quantity. Removing the last unit drops the
// line item entirely rather than leaving a zero-quantity row; removing from
// an empty quote is a no-op.
func RemoveMeal(q *models.Quote) {
	for i := range q.AddOns {
		if q.AddOns[i].Kind != models.AddOnMeal {
			continue
		}
		q.AddOns[i].Quantity--
		if q.AddOns[i].Quantity <= 0 {
			q.AddOns = append(q.AddOns[:i], q.AddOns[i+1:]...)
		}
		return
	}
}

// SelectBaggage sets the baggage tier. Baggage is single-valued per traveler:
// selecting a tier overwrites any previously selected tier in place, it never
// stacks.
func SelectBaggage(q *models.Quote, kind models.AddOnKind, unitPrice float64) {
	if kind != models.AddOnBaggage20 && kind != models.AddOnBaggage40 {
		return
	}
	for i := range q.AddOns {
		if q.AddOns[i].Kind == models.AddOnBaggage20 || q.AddOns[i].Kind == models.AddOnBaggage40 {
			q.AddOns[i] = models.AddOn{Kind: kind, Quantity: 1, UnitPrice: unitPrice}
			return
		}
	}
	q.AddOns = append(q.AddOns, models.AddOn{Kind: kind, Quantity: 1, UnitPrice: unitPrice})
}

// ClearBaggage removes any selected baggage tier.
func ClearBaggage(q *models.Quote) {
	for i := range q.AddOns {
		if q.AddOns[i].Kind == models.AddOnBaggage20 || q.AddOns[i].Kind == models.AddOnBaggage40 {
			q.AddOns = append(q.AddOns[:i], q.AddOns[i+1:]...)
			return
		}
	}
}

// ToggleFlat flips a flat-priced add-on (insurance or car rental). The line
// is present with quantity 1 while selected and absent otherwise. Returns the
// resulting selected state.
func ToggleFlat(q *models.Quote, kind models.AddOnKind, unitPrice float64) bool {
	if kind != models.AddOnInsurance && kind != models.AddOnCarRental {
		return false
	}
	for i := range q.AddOns {
		if q.AddOns[i].Kind == kind {
			q.AddOns = append(q.AddOns[:i], q.AddOns[i+1:]...)
			return false
		}
	}
	q.AddOns = append(q.AddOns, models.AddOn{Kind: kind, Quantity: 1, UnitPrice: unitPrice})
	return true
}

// AddCustom appends a free-form line item (e.g., airport transfer) supplied
// by the caller with its own label, quantity and unit price.
func AddCustom(q *models.Quote, label string, quantity int, unitPrice float64) {
	if quantity < 1 {
		return
	}
	q.AddOns = append(q.AddOns, models.AddOn{
		Kind:      models.AddOnCustom,
		Label:     label,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	})
}
