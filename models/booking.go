package models

import "time"

// Booking represents a confirmed booking record built from a finalized quote.
// Only the final total and its line-item breakdown survive the quote; the
// intermediate subtotal/tax values are never persisted.
type Booking struct {
	ID           string        `bson:"id" json:"id"`
	UserID       string        `bson:"user_id" json:"userID"`
	Kind         string        `bson:"kind" json:"kind"` // "flight", "hotel", "carRental"
	ProductRef   string        `bson:"product_ref" json:"productRef"`
	TravelerName string        `bson:"traveler_name" json:"travelerName"`
	TravelDate   string        `bson:"travel_date" json:"travelDate"` // "YYYY-MM-DD"
	Seats        []string      `bson:"seats,omitempty" json:"seats,omitempty"`
	Lines        []ReceiptLine `bson:"lines" json:"lines"`
	Total        float64       `bson:"total" json:"total"`
	Currency     Currency      `bson:"currency" json:"currency"`
	Status       string        `bson:"status" json:"status"` // "Pending", "Paid", "Cancelled"
	PaymentID    string        `bson:"payment_id,omitempty" json:"paymentID,omitempty"`
	TicketIssued bool          `bson:"ticket_issued" json:"ticketIssued"`
	CreatedAt    time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updated_at" json:"updatedAt"`
}

// Booking status values.
const (
	BookingPending   = "Pending"
	BookingPaid      = "Paid"
	BookingCancelled = "Cancelled"
)

// BookingQuery carries the list parameters for a user's booking history:
// substring search, comparator sort and offset/limit pagination.
type BookingQuery struct {
	UserID string `json:"userID"`
	Search string `json:"search"` // matched against kind, product ref, traveler name and status
	SortBy string `json:"sortBy"` // "date", "total", "created"
	Desc   bool   `json:"desc"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

// BookingPage is one page of a booking listing.
type BookingPage struct {
	Items  []Booking `json:"items"`
	Total  int       `json:"total"`
	Offset int       `json:"offset"`
	Limit  int       `json:"limit"`
}
