package quote

import (
	"errors"

	"voyago/models"
)

// ErrValidationInFlight is returned when a code is submitted while a previous
// submission is still being validated. Submissions are single-flight: the UI
// disables resubmission until the pending one settles.
var ErrValidationInFlight = errors.New("promo validation already in progress")

// GenericValidationMessage replaces collaborator/network failures. Those are
// local, non-fatal failures and must not block the booking flow.
const GenericValidationMessage = "Unable to validate code. Please try again."

// BeginValidation moves the promo machine into the validating state for the
// given code. Any settled state (none, applied, rejected) may start a new
// submission; a pending one may not.
func BeginValidation(q *models.Quote, code string) error {
	if code == "" {
		return errors.New("promo code must not be empty")
	}
	if q.Promo.Status == models.PromoValidating {
		return ErrValidationInFlight
	}
	q.Promo = models.PromoState{Status: models.PromoValidating, Code: code}
	return nil
}

// ResolveValidation settles a pending submission with the collaborator's
// result. A valid result stores the discount, superseding any previously
// applied rate. An invalid result records the rejection reason verbatim but
// leaves a previously applied discount active: a failed resubmission never
// removes a discount the user already earned.
func ResolveValidation(q *models.Quote, result models.PromoValidationResult) {
	if q.Promo.Status != models.PromoValidating {
		return
	}
	if result.Valid {
		q.Discount = &models.Discount{Code: q.Promo.Code, Rate: result.Discount}
		q.Promo = models.PromoState{Status: models.PromoApplied, Code: q.Promo.Code}
		return
	}
	reason := result.Error
	if reason == "" {
		reason = GenericValidationMessage
	}
	q.Promo = models.PromoState{Status: models.PromoRejected, Code: q.Promo.Code, Reason: reason}
}
