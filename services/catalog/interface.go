package catalog

import (
	"context"

	catalogRepo "voyago/database/repository/catalog"
	"voyago/models"
)

// FlightQuery carries the flight search parameters. Origin and destination
// are substring-matched, date matches exactly when set.
type FlightQuery struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`   // "YYYY-MM-DD"
	SortBy      string `json:"sortBy"` // "price" or "departure"
	Desc        bool   `json:"desc"`
	Offset      int    `json:"offset"`
	Limit       int    `json:"limit"`
}

// FlightPage is one page of flight search results.
type FlightPage struct {
	Items  []models.Flight `json:"items"`
	Total  int             `json:"total"`
	Offset int             `json:"offset"`
	Limit  int             `json:"limit"`
}

// Service exposes the travel product catalog.
type Service interface {
	SearchFlights(ctx context.Context, query FlightQuery) (FlightPage, error)
	GetFlight(ctx context.Context, id string) (*models.Flight, error)
	ListHotels(ctx context.Context) ([]models.Hotel, error)
	GetHotel(ctx context.Context, id string) (*models.Hotel, error)
	ListCarOffers(ctx context.Context) ([]models.CarRentalOffer, error)
	GetCarOffer(ctx context.Context, id string) (*models.CarRentalOffer, error)
}

// DefaultService implements Service over the Mongo catalog with a short-lived
// Redis cache in front of the flight list.
type DefaultService struct {
	Repo catalogRepo.CatalogRepository
}
