package models

import "time"

// Seat states within a seat map.
const (
	SeatAvailable = "available"
	SeatHeld      = "held"
	SeatBooked    = "booked"
)

// Seat is one selectable seat on a departure.
type Seat struct {
	Code      string `bson:"code" json:"code"` // e.g., "12C"
	Status    string `bson:"status" json:"status"`
	HeldBy    string `bson:"held_by,omitempty" json:"heldBy,omitempty"` // booking session holding the seat
	BookingID string `bson:"booking_id,omitempty" json:"bookingID,omitempty"`
}

// SeatMap is the full seat layout of a single departure (flight leg or
// vehicle). Seats are kept in row-major order for rendering.
type SeatMap struct {
	ID         string    `bson:"id" json:"id"`
	ProductRef string    `bson:"product_ref" json:"productRef"`
	Rows       int       `bson:"rows" json:"rows"`
	Cols       int       `bson:"cols" json:"cols"`
	Seats      []Seat    `bson:"seats" json:"seats"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}
