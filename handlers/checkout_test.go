package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"wanderbook/models"
	"wanderbook/services/checkout"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubBookingRepo struct {
	bookings map[string]models.Booking
}

func (r *stubBookingRepo) Create(_ context.Context, b models.Booking) (string, error) {
	r.bookings[b.Reference] = b
	return b.Reference, nil
}

func (r *stubBookingRepo) GetByReference(_ context.Context, reference string) (*models.Booking, error) {
	b, ok := r.bookings[reference]
	if !ok {
		return nil, errors.New("booking not found")
	}
	return &b, nil
}

func (r *stubBookingRepo) SetStatus(_ context.Context, reference string, status models.ConfirmationStatus) error {
	b, ok := r.bookings[reference]
	if !ok {
		return errors.New("booking not found")
	}
	b.Status = status
	r.bookings[reference] = b
	return nil
}

func (r *stubBookingRepo) ListByCustomerEmail(_ context.Context, email string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CustomerEmail == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func newTestRouter() (*gin.Engine, *stubBookingRepo) {
	gin.SetMode(gin.TestMode)
	repo := &stubBookingRepo{bookings: make(map[string]models.Booking)}
	svc := &checkout.DefaultCheckoutSessionService{
		Machine:  checkout.NewMachine(checkout.DefaultTaxRate, "US"),
		Store:    checkout.NewMemorySessionStore(),
		Bookings: repo,
		Logger:   zap.NewNop(),
	}
	r := gin.New()
	ch := NewCheckoutHandler(svc, zap.NewNop())
	bh := NewBookingHandler(repo, zap.NewNop())

	api := r.Group("/api/checkout")
	api.POST("", ch.InitiateCheckout)
	api.GET("/:sessionID", ch.GetSession)
	api.PUT("/:sessionID/customer", ch.SubmitCustomerDetails)
	api.PUT("/:sessionID/payment", ch.SubmitPayment)
	api.POST("/:sessionID/back", ch.GoBack)
	api.DELETE("/:sessionID", ch.CancelSession)
	r.GET("/api/bookings/:reference", bh.GetByReference)
	return r, repo
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func startSession(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/checkout", models.CheckoutInput{
		Room:     models.Room{ID: "room-1", Title: "Deluxe", BasePricePerNight: 164, OriginalPricePerNight: 175},
		Hotel:    models.Hotel{ID: "hotel-1", Name: "Casa Azul"},
		CheckIn:  "2025-06-01",
		CheckOut: "2025-06-02",
		Guests:   models.Guests{Adults: 2, Rooms: 1},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp models.CheckoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID
}

func customerBody() models.CustomerDetailsInput {
	return models.CustomerDetailsInput{
		FirstName:  "Ava",
		LastName:   "Reyes",
		Email:      "ava@example.com",
		Address:    "12 Harbour Rd",
		City:       "Lisbon",
		PostalCode: "1100-148",
		Phone:      "+351 912 345 678",
	}
}

func paymentBody() models.PaymentInput {
	return models.PaymentInput{
		Method:        "card",
		CardNumber:    "4242 4242 4242 4242",
		CardHolder:    "Ava Reyes",
		Expiry:        "12/25",
		CVC:           "123",
		AgreedToTerms: true,
	}
}

func TestCheckoutFlowOverHTTP(t *testing.T) {
	r, _ := newTestRouter()
	sessionID := startSession(t, r)

	w := doJSON(t, r, http.MethodPut, "/api/checkout/"+sessionID+"/customer", customerBody())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPut, "/api/checkout/"+sessionID+"/payment", paymentBody())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.CheckoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.StateConfirmation, resp.State)
	require.NotNil(t, resp.Confirmation)
	assert.Regexp(t, `^BK[A-Z0-9]{9}$`, resp.Confirmation.BookingReference)
	assert.Equal(t, 168.30, resp.Confirmation.Total)

	// The confirmed booking is retrievable by reference.
	w = doJSON(t, r, http.MethodGet, "/api/bookings/"+resp.Confirmation.BookingReference, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitCustomerDetails_ValidationErrorsReturned(t *testing.T) {
	r, _ := newTestRouter()
	sessionID := startSession(t, r)

	body := customerBody()
	body.Email = "not-an-email"
	body.Phone = ""
	w := doJSON(t, r, http.MethodPut, "/api/checkout/"+sessionID+"/customer", body)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp struct {
		Fields []checkout.FieldError `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []checkout.FieldError{
		{Field: "email", Kind: checkout.InvalidFormat},
		{Field: "phone", Kind: checkout.Missing},
	}, resp.Fields)
}

func TestSubmitPayment_TermsNotAccepted(t *testing.T) {
	r, _ := newTestRouter()
	sessionID := startSession(t, r)
	doJSON(t, r, http.MethodPut, "/api/checkout/"+sessionID+"/customer", customerBody())

	body := paymentBody()
	body.AgreedToTerms = false
	w := doJSON(t, r, http.MethodPut, "/api/checkout/"+sessionID+"/payment", body)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "termsNotAccepted")
}

func TestSubmitPayment_BeforeCustomerDetails(t *testing.T) {
	r, _ := newTestRouter()
	sessionID := startSession(t, r)

	w := doJSON(t, r, http.MethodPut, "/api/checkout/"+sessionID+"/payment", paymentBody())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGoBack_FromConfirmationConflicts(t *testing.T) {
	r, _ := newTestRouter()
	sessionID := startSession(t, r)
	doJSON(t, r, http.MethodPut, "/api/checkout/"+sessionID+"/customer", customerBody())
	doJSON(t, r, http.MethodPut, "/api/checkout/"+sessionID+"/payment", paymentBody())

	w := doJSON(t, r, http.MethodPost, "/api/checkout/"+sessionID+"/back", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUnknownSessionIs404(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/checkout/does-not-exist", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
