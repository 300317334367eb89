package models

import "time"

// ConfirmationRecord is the final record handed to the persistence and
// rendering collaborators after a booking is confirmed.
type ConfirmationRecord struct {
	BookingReference string    `bson:"bookingReference" json:"bookingReference"`
	BookedAt         time.Time `bson:"bookedAt" json:"bookedAt"`
	CustomerEmail    string    `bson:"customerEmail" json:"customerEmail"`
	Total            float64   `bson:"total" json:"total"`
}
