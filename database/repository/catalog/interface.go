package catalogRepo

import (
	"context"

	"voyago/database"
	"voyago/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CatalogRepository interface {
	AllFlights(ctx context.Context) ([]models.Flight, error)
	GetFlight(ctx context.Context, id string) (*models.Flight, error)
	AllHotels(ctx context.Context) ([]models.Hotel, error)
	GetHotel(ctx context.Context, id string) (*models.Hotel, error)
	AllCarOffers(ctx context.Context) ([]models.CarRentalOffer, error)
	GetCarOffer(ctx context.Context, id string) (*models.CarRentalOffer, error)
}

type mongoCatalogRepo struct {
	flights *mongo.Collection
	hotels  *mongo.Collection
	cars    *mongo.Collection
}

// NewMongoCatalogRepo returns a new CatalogRepository instance using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database("voyago")
	return &mongoCatalogRepo{
		flights: db.Collection("flights"),
		hotels:  db.Collection("hotels"),
		cars:    db.Collection("car_offers"),
	}
}
