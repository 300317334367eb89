package checkout

import (
	"context"

	"wanderbook/models"
)

// CheckoutSessionService manages the stateful checkout pipeline: one
// session per in-progress reservation, advanced step by step.
type CheckoutSessionService interface {
	InitiateCheckout(ctx context.Context, input models.CheckoutInput) (*models.CheckoutSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.CheckoutSession, error)
	SubmitCustomerDetails(ctx context.Context, sessionID string, in models.CustomerDetailsInput) (*models.CheckoutSession, error)
	SubmitPayment(ctx context.Context, sessionID string, in models.PaymentInput) (*models.CheckoutSession, error)
	GoBack(ctx context.Context, sessionID string) (*models.CheckoutSession, error)
	CancelSession(ctx context.Context, sessionID string) error
	SettleConfirmation(ctx context.Context, sessionID, reference string) error
}
