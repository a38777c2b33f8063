package seatmapRepo

import (
	"context"
	"errors"
	"time"

	"voyago/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrSeatMapNotFound signals a departure without a stored seat map.
var ErrSeatMapNotFound = errors.New("seat map not found")

// GetByProductRef returns the seat map for a departure.
func (r *mongoSeatMapRepo) GetByProductRef(ctx context.Context, productRef string) (*models.SeatMap, error) {
	var sm models.SeatMap
	err := r.coll.FindOne(ctx, bson.M{"product_ref": productRef}).Decode(&sm)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSeatMapNotFound
		}
		return nil, err
	}
	return &sm, nil
}

// Save upserts the full seat map document.
func (r *mongoSeatMapRepo) Save(ctx context.Context, sm *models.SeatMap) error {
	if sm.ID == "" {
		sm.ID = uuid.New().String()
	}
	sm.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"product_ref": sm.ProductRef}, sm, opts)
	return err
}
