package bookingRepo

import (
	"context"
	"errors"
	"time"

	"voyago/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrBookingNotFound signals an unknown booking ID.
var ErrBookingNotFound = errors.New("booking not found")

// Create inserts a new booking record and returns its ID.
func (r *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return "", err
	}
	return booking.ID, nil
}

// GetByID returns a booking by its ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	return &booking, nil
}

// GetByUserID fetches all bookings belonging to a user, newest first.
func (r *mongoBookingRepo) GetByUserID(ctx context.Context, userID string) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateStatus sets a booking's status and, when provided, its payment ID.
func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, id, status, paymentID string) error {
	set := bson.M{"status": status, "updated_at": time.Now()}
	if paymentID != "" {
		set["payment_id"] = paymentID
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// MarkTicketIssued records that the e-ticket PDF for this booking was written.
func (r *mongoBookingRepo) MarkTicketIssued(ctx context.Context, id string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id},
		bson.M{"$set": bson.M{"ticket_issued": true, "updated_at": time.Now()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// Cancel marks a booking cancelled.
func (r *mongoBookingRepo) Cancel(ctx context.Context, id string) error {
	return r.UpdateStatus(ctx, id, models.BookingCancelled, "")
}
