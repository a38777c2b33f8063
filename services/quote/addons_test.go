package quote

import (
	"testing"

	"voyago/models"
)

func findAddOn(q *models.Quote, kind models.AddOnKind) *models.AddOn {
	for i := range q.AddOns {
		if q.AddOns[i].Kind == kind {
			return &q.AddOns[i]
		}
	}
	return nil
}

func TestMealsStackAndUnstack(t *testing.T) {
	q := newTestQuote(100, 1)

	AddMeal(q, 5)
	AddMeal(q, 5)
	AddMeal(q, 5)
	meal := findAddOn(q, models.AddOnMeal)
	if meal == nil || meal.Quantity != 3 {
		t.Fatalf("expected single meal line with quantity 3, got %+v", q.AddOns)
	}
	if got := AddOnTotal(q.AddOns); got != 15 {
		t.Fatalf("add-on total = %v, want 15", got)
	}

	RemoveMeal(q)
	if meal := findAddOn(q, models.AddOnMeal); meal == nil || meal.Quantity != 2 {
		t.Fatalf("expected meal quantity 2 after removal, got %+v", q.AddOns)
	}

	// Removing the last unit drops the line instead of leaving quantity 0.
	RemoveMeal(q)
	RemoveMeal(q)
	if findAddOn(q, models.AddOnMeal) != nil {
		t.Fatalf("expected meal line removed, got %+v", q.AddOns)
	}

	// No-op on an empty quote.
	RemoveMeal(q)
	if len(q.AddOns) != 0 {
		t.Fatalf("expected no add-ons, got %+v", q.AddOns)
	}
}

func TestBaggageReplacesInPlace(t *testing.T) {
	q := newTestQuote(100, 1)
	AddMeal(q, 5)
	SelectBaggage(q, models.AddOnBaggage20, 20)
	ToggleFlat(q, models.AddOnInsurance, 12)

	SelectBaggage(q, models.AddOnBaggage40, 35)

	if findAddOn(q, models.AddOnBaggage20) != nil {
		t.Fatalf("20kg tier should be replaced, got %+v", q.AddOns)
	}
	bag := findAddOn(q, models.AddOnBaggage40)
	if bag == nil || bag.Quantity != 1 || bag.UnitPrice != 35 {
		t.Fatalf("expected single 40kg line at 35, got %+v", q.AddOns)
	}
	// Replacement keeps the line's position so the receipt order is stable.
	if q.AddOns[1].Kind != models.AddOnBaggage40 {
		t.Fatalf("expected baggage at index 1, got %+v", q.AddOns)
	}

	// Reselecting the same tier never stacks.
	SelectBaggage(q, models.AddOnBaggage40, 35)
	if bag := findAddOn(q, models.AddOnBaggage40); bag.Quantity != 1 {
		t.Fatalf("baggage stacked: %+v", bag)
	}

	ClearBaggage(q)
	if findAddOn(q, models.AddOnBaggage40) != nil {
		t.Fatalf("expected baggage cleared, got %+v", q.AddOns)
	}
}

func TestToggleFlatAddOns(t *testing.T) {
	q := newTestQuote(100, 1)

	if on := ToggleFlat(q, models.AddOnInsurance, 12); !on {
		t.Fatal("first toggle should select insurance")
	}
	if ins := findAddOn(q, models.AddOnInsurance); ins == nil || ins.Quantity != 1 {
		t.Fatalf("expected insurance line with quantity 1, got %+v", q.AddOns)
	}

	// Toggling again deselects; quantity never exceeds 1.
	if on := ToggleFlat(q, models.AddOnInsurance, 12); on {
		t.Fatal("second toggle should deselect insurance")
	}
	if findAddOn(q, models.AddOnInsurance) != nil {
		t.Fatalf("expected insurance removed, got %+v", q.AddOns)
	}

	// Meals are not toggleable.
	if on := ToggleFlat(q, models.AddOnMeal, 5); on || len(q.AddOns) != 0 {
		t.Fatalf("toggle should reject non-flat kinds, got %+v", q.AddOns)
	}
}

func TestAddCustomLine(t *testing.T) {
	q := newTestQuote(100, 1)
	AddCustom(q, "Airport transfer", 2, 15)
	AddCustom(q, "Lounge access", 0, 30) // rejected

	if len(q.AddOns) != 1 {
		t.Fatalf("expected 1 custom line, got %+v", q.AddOns)
	}
	if q.AddOns[0].Label != "Airport transfer" || q.AddOns[0].Quantity != 2 {
		t.Fatalf("unexpected custom line: %+v", q.AddOns[0])
	}
	if got := AddOnTotal(q.AddOns); got != 30 {
		t.Fatalf("add-on total = %v, want 30", got)
	}
}
