package quote

import (
	"errors"
	"testing"

	"voyago/models"
)

func TestPromoAppliedReducesTotal(t *testing.T) {
	q := newTestQuote(100, 1) // total 110.00 before discount

	if err := BeginValidation(q, "SAVE10"); err != nil {
		t.Fatalf("BeginValidation: %v", err)
	}
	if q.Promo.Status != models.PromoValidating {
		t.Fatalf("status = %v, want validating", q.Promo.Status)
	}
	// Total is unchanged while validation is pending.
	if got := FinalTotal(q); got != 110.00 {
		t.Fatalf("pending total = %v, want 110.00", got)
	}

	ResolveValidation(q, models.PromoValidationResult{Valid: true, Discount: 0.10})
	if q.Promo.Status != models.PromoApplied {
		t.Fatalf("status = %v, want applied", q.Promo.Status)
	}
	if q.Discount == nil || q.Discount.Code != "SAVE10" || q.Discount.Rate != 0.10 {
		t.Fatalf("unexpected discount: %+v", q.Discount)
	}
	if got := FinalTotal(q); got != 99.00 {
		t.Fatalf("final total = %v, want 99.00", got)
	}
}

func TestPromoRejectionKeepsTotalAndReason(t *testing.T) {
	q := newTestQuote(100, 1)

	if err := BeginValidation(q, "EXPIRED1"); err != nil {
		t.Fatalf("BeginValidation: %v", err)
	}
	ResolveValidation(q, models.PromoValidationResult{Valid: false, Error: "Code Expired"})

	if q.Promo.Status != models.PromoRejected {
		t.Fatalf("status = %v, want rejected", q.Promo.Status)
	}
	if q.Promo.Reason != "Code Expired" {
		t.Fatalf("reason = %q, want the validator message verbatim", q.Promo.Reason)
	}
	if q.Discount != nil {
		t.Fatalf("rejection must not create a discount, got %+v", q.Discount)
	}
	if got := FinalTotal(q); got != 110.00 {
		t.Fatalf("total = %v, want 110.00 unchanged", got)
	}
}

func TestRejectedResubmissionKeepsAppliedDiscount(t *testing.T) {
	q := newTestQuote(100, 1)

	BeginValidation(q, "SAVE10")
	ResolveValidation(q, models.PromoValidationResult{Valid: true, Discount: 0.10})

	// A later failed attempt must not claw back the earned discount.
	if err := BeginValidation(q, "BOGUS"); err != nil {
		t.Fatalf("resubmission from applied state: %v", err)
	}
	ResolveValidation(q, models.PromoValidationResult{Valid: false, Error: "Invalid Code"})

	if q.Promo.Status != models.PromoRejected || q.Promo.Code != "BOGUS" {
		t.Fatalf("unexpected promo state: %+v", q.Promo)
	}
	if q.Discount == nil || q.Discount.Code != "SAVE10" {
		t.Fatalf("applied discount lost: %+v", q.Discount)
	}
	if got := FinalTotal(q); got != 99.00 {
		t.Fatalf("total = %v, want 99.00 with original discount intact", got)
	}
}

func TestAppliedResubmissionSupersedes(t *testing.T) {
	q := newTestQuote(100, 1)

	BeginValidation(q, "SAVE10")
	ResolveValidation(q, models.PromoValidationResult{Valid: true, Discount: 0.10})
	BeginValidation(q, "SAVE25")
	ResolveValidation(q, models.PromoValidationResult{Valid: true, Discount: 0.25})

	if q.Discount.Code != "SAVE25" || q.Discount.Rate != 0.25 {
		t.Fatalf("expected the newer discount, got %+v", q.Discount)
	}
	if got := FinalTotal(q); got != 82.50 {
		t.Fatalf("total = %v, want 82.50", got)
	}
}

func TestValidationIsSingleFlight(t *testing.T) {
	q := newTestQuote(100, 1)

	BeginValidation(q, "SAVE10")
	err := BeginValidation(q, "SAVE25")
	if !errors.Is(err, ErrValidationInFlight) {
		t.Fatalf("expected ErrValidationInFlight, got %v", err)
	}
	// The pending submission is untouched.
	if q.Promo.Code != "SAVE10" {
		t.Fatalf("pending code = %q, want SAVE10", q.Promo.Code)
	}
}

func TestEmptyCodeRejectedUpfront(t *testing.T) {
	q := newTestQuote(100, 1)
	if err := BeginValidation(q, ""); err == nil {
		t.Fatal("expected an error for an empty code")
	}
	if q.Promo.Status != models.PromoNone {
		t.Fatalf("status = %v, want none", q.Promo.Status)
	}
}

func TestResolveFallsBackToGenericMessage(t *testing.T) {
	q := newTestQuote(100, 1)
	BeginValidation(q, "SAVE10")

	// Collaborator failure surfaces the generic retry message, never the
	// transport error.
	ResolveValidation(q, models.PromoValidationResult{Valid: false})
	if q.Promo.Reason != GenericValidationMessage {
		t.Fatalf("reason = %q, want %q", q.Promo.Reason, GenericValidationMessage)
	}
}

func TestResolveWithoutPendingIsNoOp(t *testing.T) {
	q := newTestQuote(100, 1)
	ResolveValidation(q, models.PromoValidationResult{Valid: true, Discount: 0.50})
	if q.Discount != nil || q.Promo.Status != models.PromoNone {
		t.Fatalf("stray resolve mutated the quote: %+v %+v", q.Discount, q.Promo)
	}
}
