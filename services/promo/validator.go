package promo

import (
	"context"
	"errors"
	"fmt"
	"time"

	promoRepo "voyago/database/repository/promo"
	"voyago/models"
)

// Rejection reasons surfaced verbatim to the user.
const (
	ReasonInvalid      = "Invalid Code"
	ReasonExpired      = "Code Expired"
	ReasonLimitReached = "Code Limit Reached"
)

// Validator is the promo validation collaborator: it takes a code string and
// answers with a discount rate or a rejection reason.
type Validator interface {
	Validate(ctx context.Context, code string) (models.PromoValidationResult, error)
}

// DefaultValidator validates codes against the persisted promo catalog.
type DefaultValidator struct {
	Repo promoRepo.PromoRepository
}

// NewDefaultValidator constructs a Validator backed by the promo repository.
func NewDefaultValidator(repo promoRepo.PromoRepository) *DefaultValidator {
	return &DefaultValidator{Repo: repo}
}

// Validate checks a code against the catalog. A business rejection (unknown,
// expired, exhausted) returns a result with Valid=false and a reason; only
// infrastructure failures return an error, which callers degrade to a generic
// rejection without blocking the booking flow.
func (v *DefaultValidator) Validate(ctx context.Context, code string) (models.PromoValidationResult, error) {
	promoCode, err := v.Repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, promoRepo.ErrPromoNotFound) {
			return models.PromoValidationResult{Valid: false, Error: ReasonInvalid}, nil
		}
		return models.PromoValidationResult{}, fmt.Errorf("failed to look up promo code: %w", err)
	}

	if !promoCode.Active {
		return models.PromoValidationResult{Valid: false, Error: ReasonInvalid}, nil
	}
	if !promoCode.ExpiresAt.IsZero() && time.Now().After(promoCode.ExpiresAt) {
		return models.PromoValidationResult{Valid: false, Error: ReasonExpired}, nil
	}
	if promoCode.MaxUses > 0 && promoCode.UsedCount >= promoCode.MaxUses {
		return models.PromoValidationResult{Valid: false, Error: ReasonLimitReached}, nil
	}

	if err := v.Repo.IncrementUsage(ctx, code); err != nil {
		return models.PromoValidationResult{}, fmt.Errorf("failed to record promo redemption: %w", err)
	}

	return models.PromoValidationResult{Valid: true, Discount: promoCode.Rate}, nil
}
