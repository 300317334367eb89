package checkout

import "wanderbook/models"

// BuildConfirmationRecord projects the finalized context into the record
// handed to the persistence and rendering collaborators. It fails with an
// IncompleteContextError when the context never completed the earlier steps.
func BuildConfirmationRecord(ctx models.BookingContext) (*models.ConfirmationRecord, error) {
	if ctx.Customer == nil || ctx.Payment == nil {
		return nil, &IncompleteContextError{Detail: "customer or payment details absent"}
	}
	if ctx.Confirmation == nil {
		return nil, &IncompleteContextError{Detail: "confirmation not yet issued"}
	}
	return &models.ConfirmationRecord{
		BookingReference: ctx.Confirmation.BookingReference,
		BookedAt:         ctx.Confirmation.BookedAt,
		CustomerEmail:    ctx.Customer.Email,
		Total:            ctx.Pricing.Total,
	}, nil
}
