package models

import "time"

// CheckoutState names one step of the checkout pipeline.
type CheckoutState string

const (
	StateCustomerDetails CheckoutState = "CUSTOMER_DETAILS"
	StatePayment         CheckoutState = "PAYMENT"
	StateConfirmation    CheckoutState = "CONFIRMATION"
)

func (s CheckoutState) IsTerminal() bool {
	return s == StateConfirmation
}

// String representation (for logging)
func (s CheckoutState) String() string {
	return string(s)
}

// ConfirmationStatus tracks the settling of an issued confirmation.
type ConfirmationStatus string

const (
	ConfirmationProcessing ConfirmationStatus = "PROCESSING"
	ConfirmationConfirmed  ConfirmationStatus = "CONFIRMED"
)

// Room is the rate the traveller selected to book.
type Room struct {
	ID                    string  `json:"id"`
	Title                 string  `json:"title"`
	Image                 string  `json:"image,omitempty"`
	Rating                float64 `json:"rating,omitempty"`
	BasePricePerNight     float64 `json:"basePricePerNight"`
	OriginalPricePerNight float64 `json:"originalPricePerNight,omitempty"` // zero means no promotional price
}

type Hotel struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

type Stay struct {
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
	Nights       int       `json:"nights"`
}

type Guests struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
	Rooms    int `json:"rooms"`
}

// Pricing carries the derived monetary fields. The identity
// total = subtotal - discount + tax holds at every step.
type Pricing struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	TaxRate  float64 `json:"taxRate"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// CustomerDetails is populated only after the customer-details step validates.
type CustomerDetails struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

// PaymentDetails is populated only after the payment step validates.
// The card number is stored masked; the full PAN is never retained.
type PaymentDetails struct {
	Method           string `json:"method"`
	CardNumberMasked string `json:"cardNumberMasked"`
	CardHolder       string `json:"cardHolder"`
	Expiry           string `json:"expiry"`
	CVCProvided      bool   `json:"cvcProvided"`
	AgreedToTerms    bool   `json:"agreedToTerms"`
}

// Confirmation is populated exactly once, on entering the terminal state.
type Confirmation struct {
	BookingReference string             `json:"bookingReference"`
	BookedAt         time.Time          `json:"bookedAt"`
	Status           ConfirmationStatus `json:"status"`
}

// BookingContext is the record threaded through all three checkout steps.
// The customer, payment and confirmation sub-records stay nil until their
// step completes; the presentation layer never mutates the context directly.
type BookingContext struct {
	Room         Room             `json:"room"`
	Hotel        Hotel            `json:"hotel"`
	Stay         Stay             `json:"stay"`
	Guests       Guests           `json:"guests"`
	Pricing      Pricing          `json:"pricing"`
	Customer     *CustomerDetails `json:"customer,omitempty"`
	Payment      *PaymentDetails  `json:"payment,omitempty"`
	Confirmation *Confirmation    `json:"confirmation,omitempty"`
}
