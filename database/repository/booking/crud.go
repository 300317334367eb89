package bookingRepo

import (
	"context"
	"errors"
	"time"

	"wanderbook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a confirmed booking and returns its ID.
func (r *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return "", err
	}
	return booking.ID, nil
}

// GetByReference returns a booking by its display reference.
func (r *mongoBookingRepo) GetByReference(ctx context.Context, reference string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"reference": reference}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.New("booking not found")
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// SetStatus updates the settlement status of a booking.
func (r *mongoBookingRepo) SetStatus(ctx context.Context, reference string, status models.ConfirmationStatus) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"reference": reference},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("booking not found")
	}
	return nil
}

// ListByCustomerEmail fetches all bookings made under an email address.
func (r *mongoBookingRepo) ListByCustomerEmail(ctx context.Context, email string) ([]models.Booking, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"customer_email": email})
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
