package checkout

import (
	"fmt"
	"strings"
	"time"

	"wanderbook/models"
)

// Machine implements the checkout state machine over a session:
// CustomerDetails -> Payment -> Confirmation. Transition methods are pure
// over the session they receive; they perform no I/O. A failed submission
// leaves the session exactly as it was, so previously captured fields are
// retained across resubmissions.
type Machine struct {
	TaxRate        float64
	DefaultCountry string
	now            func() time.Time
}

func NewMachine(taxRate float64, defaultCountry string) *Machine {
	if taxRate <= 0 {
		taxRate = DefaultTaxRate
	}
	return &Machine{
		TaxRate:        taxRate,
		DefaultCountry: defaultCountry,
		now:            time.Now,
	}
}

// SubmitCustomerDetails validates the customer-details form, merges it into
// the context, recomputes pricing and advances to the payment step.
func (m *Machine) SubmitCustomerDetails(sess *models.CheckoutSession, in models.CustomerDetailsInput) error {
	if sess.State != models.StateCustomerDetails {
		return &StateError{Op: "submit customer details", State: sess.State.String()}
	}

	if errs := ValidateCustomerDetails(in); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}

	country := strings.TrimSpace(in.Country)
	if country == "" {
		country = m.DefaultCountry
	}
	sess.Context.Customer = &models.CustomerDetails{
		FirstName:  strings.TrimSpace(in.FirstName),
		LastName:   strings.TrimSpace(in.LastName),
		Email:      strings.TrimSpace(in.Email),
		Address:    strings.TrimSpace(in.Address),
		City:       strings.TrimSpace(in.City),
		PostalCode: strings.TrimSpace(in.PostalCode),
		Country:    country,
		Phone:      strings.TrimSpace(in.Phone),
	}
	sess.Context.Pricing = ComputePricing(sess.Context.Room, sess.Context.Stay.Nights, m.TaxRate)
	sess.State = models.StatePayment
	sess.UpdatedAt = m.now()
	return nil
}

// SubmitPayment validates the payment form for the card method, merges a
// masked payment record into the context and advances to the terminal
// state, issuing the confirmation. The terms agreement is checked before
// any card field is evaluated.
func (m *Machine) SubmitPayment(sess *models.CheckoutSession, in models.PaymentInput) error {
	if sess.State == models.StateConfirmation {
		return &StateError{Op: "submit payment", State: sess.State.String()}
	}
	if sess.State != models.StatePayment || sess.Context.Customer == nil {
		return &IncompleteContextError{Detail: "payment submitted before customer details completed"}
	}

	if RequireAgreement(in.AgreedToTerms) != Valid {
		return ErrTermsNotAccepted
	}
	if in.Method != "" && !strings.EqualFold(in.Method, "card") {
		return fmt.Errorf("unsupported payment method: %s", in.Method)
	}
	if errs := ValidatePaymentCard(in); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}

	sess.Context.Payment = &models.PaymentDetails{
		Method:           "card",
		CardNumberMasked: MaskCardNumber(in.CardNumber),
		CardHolder:       strings.TrimSpace(in.CardHolder),
		Expiry:           strings.TrimSpace(in.Expiry),
		CVCProvided:      true,
		AgreedToTerms:    true,
	}
	// Recompute once more on the way out; idempotent by construction.
	sess.Context.Pricing = ComputePricing(sess.Context.Room, sess.Context.Stay.Nights, m.TaxRate)
	sess.State = models.StateConfirmation
	sess.UpdatedAt = m.now()
	return m.EnterConfirmation(sess)
}

// EnterConfirmation issues the booking reference and marks the confirmation
// as processing. Calling it again is a no-op returning the same reference;
// the reference is generated exactly once per context.
func (m *Machine) EnterConfirmation(sess *models.CheckoutSession) error {
	if sess.Context.Customer == nil || sess.Context.Payment == nil {
		return &IncompleteContextError{Detail: "confirmation entered before earlier steps completed"}
	}
	if sess.Context.Confirmation != nil {
		return nil
	}
	sess.Context.Confirmation = &models.Confirmation{
		BookingReference: GenerateReference(),
		BookedAt:         m.now(),
		Status:           models.ConfirmationProcessing,
	}
	sess.State = models.StateConfirmation
	return nil
}

// GoBack returns from the payment step to customer details, preserving the
// already-captured customer record so the form can be pre-filled. There is
// no regression out of the terminal state once a reference has been issued.
func (m *Machine) GoBack(sess *models.CheckoutSession) error {
	if sess.State != models.StatePayment {
		return &StateError{Op: "go back", State: sess.State.String()}
	}
	sess.State = models.StateCustomerDetails
	sess.UpdatedAt = m.now()
	return nil
}

// Settle flips a processing confirmation to confirmed. The surrounding
// screen drives the settling delay; the machine only owns the transition.
func (m *Machine) Settle(sess *models.CheckoutSession) error {
	if sess.Context.Confirmation == nil {
		return &IncompleteContextError{Detail: "settle invoked before confirmation was issued"}
	}
	sess.Context.Confirmation.Status = models.ConfirmationConfirmed
	sess.UpdatedAt = m.now()
	return nil
}

// MaskCardNumber reduces a PAN to its masked display form, keeping only the
// last four digits.
func MaskCardNumber(pan string) string {
	digits := strings.ReplaceAll(strings.TrimSpace(pan), " ", "")
	last4 := digits
	if len(digits) > 4 {
		last4 = digits[len(digits)-4:]
	}
	return "•••• •••• •••• " + last4
}
