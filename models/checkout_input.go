package models

// CheckoutInput is the initial booking context supplied by the catalog
// collaborator when the traveller selects a room to book.
type CheckoutInput struct {
	Room     Room   `json:"room"`
	Hotel    Hotel  `json:"hotel"`
	CheckIn  string `json:"checkIn"`  // "YYYY-MM-DD"
	CheckOut string `json:"checkOut"` // "YYYY-MM-DD"
	Guests   Guests `json:"guests"`
}

// CustomerDetailsInput carries the customer-details form.
type CustomerDetailsInput struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"` // optional; defaults when empty
	Phone      string `json:"phone"`
}

// PaymentInput carries the payment form. CardNumber is the raw PAN as
// typed; it is validated, masked and discarded, never stored.
type PaymentInput struct {
	Method        string `json:"method"`
	CardNumber    string `json:"cardNumber"`
	CardHolder    string `json:"cardHolder"`
	Expiry        string `json:"expiry"` // "MM/YY"
	CVC           string `json:"cvc"`
	AgreedToTerms bool   `json:"agreedToTerms"`
}
