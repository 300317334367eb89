package models

import "time"

// CheckoutSession holds the in-flight checkout state between steps.
type CheckoutSession struct {
	SessionID string         `json:"sessionId"`
	State     CheckoutState  `json:"state"`
	Context   BookingContext `json:"context"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type CheckoutResponse struct {
	SessionID    string              `json:"sessionId,omitempty"`
	State        CheckoutState       `json:"state,omitempty"`
	Context      *BookingContext     `json:"context,omitempty"`
	Confirmation *ConfirmationRecord `json:"confirmation,omitempty"`
}
