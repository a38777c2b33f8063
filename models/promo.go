package models

import "time"

// PromoCode is a persisted promotional code definition.
type PromoCode struct {
	ID        string    `bson:"id" json:"id"`
	Code      string    `bson:"code" json:"code"`
	Rate      float64   `bson:"rate" json:"rate"` // fraction in [0,1]
	ExpiresAt time.Time `bson:"expires_at" json:"expiresAt"`
	MaxUses   int       `bson:"max_uses" json:"maxUses"` // 0 means unlimited
	UsedCount int       `bson:"used_count" json:"usedCount"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// PromoValidationResult is the response shape of the validation collaborator.
type PromoValidationResult struct {
	Valid    bool    `json:"valid"`
	Discount float64 `json:"discount,omitempty"`
	Error    string  `json:"error,omitempty"`
}
