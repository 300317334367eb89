package bookingRepo

import (
	"context"

	"wanderbook/config"
	"wanderbook/database"
	"wanderbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository stores confirmed bookings. Only the finalized outcome
// of a checkout is persisted; in-flight sessions live in the session cache.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByReference(ctx context.Context, reference string) (*models.Booking, error)
	SetStatus(ctx context.Context, reference string, status models.ConfirmationStatus) error
	ListByCustomerEmail(ctx context.Context, email string) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
