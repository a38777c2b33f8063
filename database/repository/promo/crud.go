package promoRepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"voyago/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrPromoNotFound signals an unknown promo code.
var ErrPromoNotFound = errors.New("promo code not found")

// Create inserts a new promo code definition and returns its ID.
func (r *mongoPromoRepo) Create(ctx context.Context, promo models.PromoCode) (string, error) {
	if promo.ID == "" {
		promo.ID = uuid.New().String()
	}
	promo.Code = strings.ToUpper(strings.TrimSpace(promo.Code))
	promo.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, promo)
	if err != nil {
		return "", err
	}
	return promo.ID, nil
}

// GetByCode returns a promo code definition by its code string.
func (r *mongoPromoRepo) GetByCode(ctx context.Context, code string) (*models.PromoCode, error) {
	var promo models.PromoCode
	err := r.coll.FindOne(ctx, bson.M{"code": strings.ToUpper(strings.TrimSpace(code))}).Decode(&promo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPromoNotFound
		}
		return nil, err
	}
	return &promo, nil
}

// IncrementUsage bumps the redemption counter for a code.
func (r *mongoPromoRepo) IncrementUsage(ctx context.Context, code string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"code": strings.ToUpper(strings.TrimSpace(code))},
		bson.M{"$inc": bson.M{"used_count": 1}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrPromoNotFound
	}
	return nil
}

// Deactivate turns a code off without deleting its redemption history.
func (r *mongoPromoRepo) Deactivate(ctx context.Context, code string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"code": strings.ToUpper(strings.TrimSpace(code))},
		bson.M{"$set": bson.M{"active": false}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrPromoNotFound
	}
	return nil
}
