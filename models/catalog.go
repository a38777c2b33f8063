package models

// Flight is a catalog entry used by the flight search endpoints.
type Flight struct {
	ID            string  `bson:"id" json:"id"`
	Airline       string  `bson:"airline" json:"airline"`
	FlightNo      string  `bson:"flight_no" json:"flightNo"`
	Origin        string  `bson:"origin" json:"origin"`
	Destination   string  `bson:"destination" json:"destination"`
	DepartureDate string  `bson:"departure_date" json:"departureDate"` // "YYYY-MM-DD"
	DepartureTime string  `bson:"departure_time" json:"departureTime"` // "HH:MM"
	Price         float64 `bson:"price" json:"price"`                  // per passenger, USD
	SeatsLeft     int     `bson:"seats_left" json:"seatsLeft"`
}

// Hotel is a catalog entry for the hotel booking flow.
type Hotel struct {
	ID            string  `bson:"id" json:"id"`
	Name          string  `bson:"name" json:"name"`
	City          string  `bson:"city" json:"city"`
	PricePerNight float64 `bson:"price_per_night" json:"pricePerNight"`
	Rating        float64 `bson:"rating" json:"rating"`
}

// CarRentalOffer is a catalog entry for the car rental flow.
type CarRentalOffer struct {
	ID          string  `bson:"id" json:"id"`
	Model       string  `bson:"model" json:"model"`
	City        string  `bson:"city" json:"city"`
	PricePerDay float64 `bson:"price_per_day" json:"pricePerDay"`
}
