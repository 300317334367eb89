package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	bookingRepo "wanderbook/database/repository/booking"
	"wanderbook/models"
	"wanderbook/services/tasks"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// DefaultCheckoutSessionService implements CheckoutSessionService on top of
// the pure state machine, a session store and the booking repository.
type DefaultCheckoutSessionService struct {
	Machine     *Machine
	Store       SessionStore
	Bookings    bookingRepo.BookingRepository
	TaskClient  *asynq.Client // nil disables deferred settling
	SettleDelay time.Duration
	Logger      *zap.Logger
}

// InitiateCheckout validates the initial context from the catalog
// collaborator, derives nights and pricing, and opens a new session in the
// customer-details step.
func (s *DefaultCheckoutSessionService) InitiateCheckout(ctx context.Context, input models.CheckoutInput) (*models.CheckoutSession, error) {
	checkIn, err := time.Parse(dateLayout, strings.TrimSpace(input.CheckIn))
	if err != nil {
		return nil, fmt.Errorf("invalid check-in date %q: %w", input.CheckIn, err)
	}
	checkOut, err := time.Parse(dateLayout, strings.TrimSpace(input.CheckOut))
	if err != nil {
		return nil, fmt.Errorf("invalid check-out date %q: %w", input.CheckOut, err)
	}
	if input.Room.BasePricePerNight <= 0 {
		return nil, fmt.Errorf("room %q has no base price", input.Room.ID)
	}
	if input.Guests.Adults < 1 {
		return nil, fmt.Errorf("at least one adult is required")
	}
	if input.Guests.Rooms < 1 {
		input.Guests.Rooms = 1
	}

	nights, err := ComputeNights(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sess := &models.CheckoutSession{
		SessionID: uuid.New().String(),
		State:     models.StateCustomerDetails,
		Context: models.BookingContext{
			Room:    input.Room,
			Hotel:   input.Hotel,
			Stay:    models.Stay{CheckInDate: checkIn, CheckOutDate: checkOut, Nights: nights},
			Guests:  input.Guests,
			Pricing: ComputePricing(input.Room, nights, s.Machine.TaxRate),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	s.Logger.Info("checkout session initiated",
		zap.String("sessionID", sess.SessionID),
		zap.String("hotel", input.Hotel.Name),
		zap.Int("nights", nights))
	return sess, nil
}

// GetSession returns the current session projection for the rendering layer.
func (s *DefaultCheckoutSessionService) GetSession(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	return s.Store.Get(ctx, sessionID)
}

// SubmitCustomerDetails runs the first step. Validation failures are
// returned without touching the stored session.
func (s *DefaultCheckoutSessionService) SubmitCustomerDetails(ctx context.Context, sessionID string, in models.CustomerDetailsInput) (*models.CheckoutSession, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.Machine.SubmitCustomerDetails(sess, in); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	s.Logger.Info("customer details captured", zap.String("sessionID", sessionID))
	return sess, nil
}

// SubmitPayment runs the second step. On success the confirmation is
// issued, the finalized booking is persisted and a settling task is
// enqueued to flip the status to confirmed after the configured delay.
func (s *DefaultCheckoutSessionService) SubmitPayment(ctx context.Context, sessionID string, in models.PaymentInput) (*models.CheckoutSession, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.Machine.SubmitPayment(sess, in); err != nil {
		return nil, err
	}

	booking := buildBookingRecord(sess)
	if _, err := s.Bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to persist confirmed booking: %w", err)
	}

	s.enqueueSettle(sess)

	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	s.Logger.Info("booking confirmed",
		zap.String("sessionID", sessionID),
		zap.String("reference", sess.Context.Confirmation.BookingReference),
		zap.Float64("total", sess.Context.Pricing.Total))
	return sess, nil
}

// GoBack returns the session from payment to customer details, keeping the
// captured customer record for pre-filling.
func (s *DefaultCheckoutSessionService) GoBack(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.Machine.GoBack(sess); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// CancelSession discards an in-flight checkout.
func (s *DefaultCheckoutSessionService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.Logger.Info("checkout session cancelled", zap.String("sessionID", sessionID))
	return nil
}

// SettleConfirmation marks the persisted booking confirmed and, when the
// session is still cached, updates its confirmation status too.
func (s *DefaultCheckoutSessionService) SettleConfirmation(ctx context.Context, sessionID, reference string) error {
	if err := s.Bookings.SetStatus(ctx, reference, models.ConfirmationConfirmed); err != nil {
		return err
	}
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		// The traveller may already have left the confirmation screen.
		return nil
	}
	if err := s.Machine.Settle(sess); err != nil {
		return err
	}
	return s.Store.Save(ctx, sess)
}

func (s *DefaultCheckoutSessionService) enqueueSettle(sess *models.CheckoutSession) {
	if s.TaskClient == nil {
		return
	}
	payload := tasks.SettleConfirmationPayload{
		SessionID: sess.SessionID,
		Reference: sess.Context.Confirmation.BookingReference,
	}
	task, opts, err := tasks.NewSettleConfirmationTask(payload, s.SettleDelay)
	if err != nil {
		s.Logger.Warn("failed to build settle task", zap.Error(err))
		return
	}
	if _, err := s.TaskClient.Enqueue(task, opts...); err != nil {
		s.Logger.Warn("failed to enqueue settle task",
			zap.String("reference", payload.Reference), zap.Error(err))
	}
}

func buildBookingRecord(sess *models.CheckoutSession) models.Booking {
	ctx := sess.Context
	return models.Booking{
		Reference:     ctx.Confirmation.BookingReference,
		HotelID:       ctx.Hotel.ID,
		HotelName:     ctx.Hotel.Name,
		Location:      ctx.Hotel.Location,
		RoomID:        ctx.Room.ID,
		RoomTitle:     ctx.Room.Title,
		CheckIn:       ctx.Stay.CheckInDate,
		CheckOut:      ctx.Stay.CheckOutDate,
		Nights:        ctx.Stay.Nights,
		Guests:        ctx.Guests,
		CustomerName:  ctx.Customer.FirstName + " " + ctx.Customer.LastName,
		CustomerEmail: ctx.Customer.Email,
		CardMasked:    ctx.Payment.CardNumberMasked,
		Pricing:       ctx.Pricing,
		Status:        ctx.Confirmation.Status,
		BookedAt:      ctx.Confirmation.BookedAt,
	}
}
