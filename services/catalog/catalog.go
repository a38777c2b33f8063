package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"voyago/models"
	"voyago/utils"

	"go.uber.org/zap"
)

const (
	flightCacheKey = "catalog:flights"
	flightCacheTTL = 5 * time.Minute
)

// SearchFlights loads the flight catalog (through the cache) and applies the
// search pipeline in memory.
func (s *DefaultService) SearchFlights(ctx context.Context, query FlightQuery) (FlightPage, error) {
	flights, err := s.loadFlights(ctx)
	if err != nil {
		return FlightPage{}, err
	}
	return SearchInMemory(flights, query), nil
}

// GetFlight returns a single catalog flight.
func (s *DefaultService) GetFlight(ctx context.Context, id string) (*models.Flight, error) {
	return s.Repo.GetFlight(ctx, id)
}

// ListHotels returns the hotel catalog.
func (s *DefaultService) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	return s.Repo.AllHotels(ctx)
}

// GetHotel returns a single catalog hotel.
func (s *DefaultService) GetHotel(ctx context.Context, id string) (*models.Hotel, error) {
	return s.Repo.GetHotel(ctx, id)
}

// ListCarOffers returns the car rental catalog.
func (s *DefaultService) ListCarOffers(ctx context.Context) ([]models.CarRentalOffer, error) {
	return s.Repo.AllCarOffers(ctx)
}

// GetCarOffer returns a single car rental offer.
func (s *DefaultService) GetCarOffer(ctx context.Context, id string) (*models.CarRentalOffer, error) {
	return s.Repo.GetCarOffer(ctx, id)
}

// loadFlights serves the flight list from Redis when warm, falling back to
// Mongo and refilling the cache. A cache failure degrades to a direct load.
func (s *DefaultService) loadFlights(ctx context.Context) ([]models.Flight, error) {
	cacheClient := utils.GetCacheClient()

	if data, err := cacheClient.Get(ctx, flightCacheKey).Result(); err == nil {
		var flights []models.Flight
		if err := json.Unmarshal([]byte(data), &flights); err == nil {
			return flights, nil
		}
	}

	flights, err := s.Repo.AllFlights(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load flight catalog: %w", err)
	}

	if data, err := json.Marshal(flights); err == nil {
		if err := cacheClient.Set(ctx, flightCacheKey, data, flightCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache flight catalog", zap.Error(err))
		}
	}
	return flights, nil
}
