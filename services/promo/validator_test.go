package promo

import (
	"context"
	"errors"
	"testing"
	"time"

	promoRepo "voyago/database/repository/promo"
	"voyago/models"
)

type fakePromoRepo struct {
	codes      map[string]*models.PromoCode
	lookupErr  error
	incErr     error
	increments []string
}

func (f *fakePromoRepo) Create(_ context.Context, promo models.PromoCode) (string, error) {
	f.codes[promo.Code] = &promo
	return promo.Code, nil
}

func (f *fakePromoRepo) GetByCode(_ context.Context, code string) (*models.PromoCode, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	promo, ok := f.codes[code]
	if !ok {
		return nil, promoRepo.ErrPromoNotFound
	}
	copied := *promo
	return &copied, nil
}

func (f *fakePromoRepo) IncrementUsage(_ context.Context, code string) error {
	if f.incErr != nil {
		return f.incErr
	}
	f.increments = append(f.increments, code)
	if promo, ok := f.codes[code]; ok {
		promo.UsedCount++
	}
	return nil
}

func (f *fakePromoRepo) Deactivate(_ context.Context, code string) error {
	if promo, ok := f.codes[code]; ok {
		promo.Active = false
	}
	return nil
}

func newFakeRepo(codes ...models.PromoCode) *fakePromoRepo {
	repo := &fakePromoRepo{codes: make(map[string]*models.PromoCode)}
	for i := range codes {
		repo.codes[codes[i].Code] = &codes[i]
	}
	return repo
}

func TestValidateAcceptsActiveCode(t *testing.T) {
	repo := newFakeRepo(models.PromoCode{Code: "SAVE10", Rate: 0.10, Active: true})
	v := NewDefaultValidator(repo)

	result, err := v.Validate(context.Background(), "SAVE10")
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !result.Valid || result.Discount != 0.10 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(repo.increments) != 1 || repo.increments[0] != "SAVE10" {
		t.Fatalf("expected one redemption recorded, got %v", repo.increments)
	}
}

func TestValidateBusinessRejections(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)
	repo := newFakeRepo(
		models.PromoCode{Code: "OFF", Rate: 0.10, Active: false},
		models.PromoCode{Code: "OLD", Rate: 0.10, Active: true, ExpiresAt: past},
		models.PromoCode{Code: "FULL", Rate: 0.10, Active: true, MaxUses: 5, UsedCount: 5},
		models.PromoCode{Code: "OPEN", Rate: 0.10, Active: true, ExpiresAt: future, MaxUses: 5, UsedCount: 4},
	)
	v := NewDefaultValidator(repo)

	cases := []struct {
		code       string
		wantValid  bool
		wantReason string
	}{
		{"NOPE", false, ReasonInvalid},
		{"OFF", false, ReasonInvalid},
		{"OLD", false, ReasonExpired},
		{"FULL", false, ReasonLimitReached},
		{"OPEN", true, ""},
	}
	for _, tc := range cases {
		result, err := v.Validate(context.Background(), tc.code)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tc.code, err)
			continue
		}
		if result.Valid != tc.wantValid || result.Error != tc.wantReason {
			t.Errorf("%s: got %+v, want valid=%v reason=%q", tc.code, result, tc.wantValid, tc.wantReason)
		}
	}

	// Rejections never consume a use.
	if len(repo.increments) != 1 || repo.increments[0] != "OPEN" {
		t.Fatalf("expected only OPEN redeemed, got %v", repo.increments)
	}
}

func TestValidateInfraErrorIsReturnedNotRejected(t *testing.T) {
	repo := newFakeRepo()
	repo.lookupErr = errors.New("connection reset")
	v := NewDefaultValidator(repo)

	result, err := v.Validate(context.Background(), "SAVE10")
	if err == nil {
		t.Fatal("expected an error for an infrastructure failure")
	}
	if result.Valid || result.Error != "" {
		t.Fatalf("infra failure must not produce a business rejection: %+v", result)
	}
}

func TestValidateIncrementFailureSurfaces(t *testing.T) {
	repo := newFakeRepo(models.PromoCode{Code: "SAVE10", Rate: 0.10, Active: true})
	repo.incErr = errors.New("write timeout")
	v := NewDefaultValidator(repo)

	if _, err := v.Validate(context.Background(), "SAVE10"); err == nil {
		t.Fatal("expected redemption write failure to surface as an error")
	}
}
