package catalogRepo

import (
	"context"
	"errors"

	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound signals an unknown catalog entry.
var ErrNotFound = errors.New("catalog entry not found")

// AllFlights loads the full flight catalog. Search, sort and pagination
// happen in memory in the catalog service.
func (r *mongoCatalogRepo) AllFlights(ctx context.Context) ([]models.Flight, error) {
	cursor, err := r.flights.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var flights []models.Flight
	if err := cursor.All(ctx, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

// GetFlight returns a single flight by ID.
func (r *mongoCatalogRepo) GetFlight(ctx context.Context, id string) (*models.Flight, error) {
	var flight models.Flight
	if err := r.flights.FindOne(ctx, bson.M{"id": id}).Decode(&flight); err != nil {
		return nil, ErrNotFound
	}
	return &flight, nil
}

// AllHotels loads the full hotel catalog.
func (r *mongoCatalogRepo) AllHotels(ctx context.Context) ([]models.Hotel, error) {
	cursor, err := r.hotels.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var hotels []models.Hotel
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

// GetHotel returns a single hotel by ID.
func (r *mongoCatalogRepo) GetHotel(ctx context.Context, id string) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := r.hotels.FindOne(ctx, bson.M{"id": id}).Decode(&hotel); err != nil {
		return nil, ErrNotFound
	}
	return &hotel, nil
}

// AllCarOffers loads the full car rental catalog.
func (r *mongoCatalogRepo) AllCarOffers(ctx context.Context) ([]models.CarRentalOffer, error) {
	cursor, err := r.cars.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var offers []models.CarRentalOffer
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// GetCarOffer returns a single car rental offer by ID.
func (r *mongoCatalogRepo) GetCarOffer(ctx context.Context, id string) (*models.CarRentalOffer, error) {
	var offer models.CarRentalOffer
	if err := r.cars.FindOne(ctx, bson.M{"id": id}).Decode(&offer); err != nil {
		return nil, ErrNotFound
	}
	return &offer, nil
}
