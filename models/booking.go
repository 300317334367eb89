package models

import "time"

// Booking represents a confirmed booking record as persisted once checkout
// reaches the terminal state. It snapshots the context rather than
// referencing it; the in-flight session itself is never persisted.
type Booking struct {
	ID            string             `bson:"id" json:"id"`
	Reference     string             `bson:"reference" json:"reference"`
	HotelID       string             `bson:"hotel_id" json:"hotelId"`
	HotelName     string             `bson:"hotel_name" json:"hotelName"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	RoomID        string             `bson:"room_id" json:"roomId"`
	RoomTitle     string             `bson:"room_title" json:"roomTitle"`
	CheckIn       time.Time          `bson:"check_in" json:"checkIn"`
	CheckOut      time.Time          `bson:"check_out" json:"checkOut"`
	Nights        int                `bson:"nights" json:"nights"`
	Guests        Guests             `bson:"guests" json:"guests"`
	CustomerName  string             `bson:"customer_name" json:"customerName"`
	CustomerEmail string             `bson:"customer_email" json:"customerEmail"`
	CardMasked    string             `bson:"card_masked" json:"cardMasked"`
	Pricing       Pricing            `bson:"pricing" json:"pricing"`
	Status        ConfirmationStatus `bson:"status" json:"status"`
	BookedAt      time.Time          `bson:"booked_at" json:"bookedAt"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}
