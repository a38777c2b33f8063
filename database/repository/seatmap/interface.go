package seatmapRepo

import (
	"context"

	"voyago/database"
	"voyago/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type SeatMapRepository interface {
	GetByProductRef(ctx context.Context, productRef string) (*models.SeatMap, error)
	Save(ctx context.Context, sm *models.SeatMap) error
}

type mongoSeatMapRepo struct {
	coll *mongo.Collection
}

// NewMongoSeatMapRepo returns a new SeatMapRepository instance using MongoDB.
func NewMongoSeatMapRepo() SeatMapRepository {
	db := database.MongoClient.Database("voyago")
	return &mongoSeatMapRepo{
		coll: db.Collection("seat_maps"),
	}
}
