package promoRepo

import (
	"context"

	"voyago/database"
	"voyago/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type PromoRepository interface {
	Create(ctx context.Context, promo models.PromoCode) (string, error)
	GetByCode(ctx context.Context, code string) (*models.PromoCode, error)
	IncrementUsage(ctx context.Context, code string) error
	Deactivate(ctx context.Context, code string) error
}

type mongoPromoRepo struct {
	coll *mongo.Collection
}

// NewMongoPromoRepo returns a new PromoRepository instance using MongoDB.
func NewMongoPromoRepo() PromoRepository {
	db := database.MongoClient.Database("voyago")
	return &mongoPromoRepo{
		coll: db.Collection("promo_codes"),
	}
}
