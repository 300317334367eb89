package handlers

import (
	"errors"
	"net/http"

	"wanderbook/models"
	"wanderbook/services/checkout"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler exposes the checkout pipeline over HTTP.
type CheckoutHandler struct {
	Service checkout.CheckoutSessionService
	Logger  *zap.Logger
}

func NewCheckoutHandler(service checkout.CheckoutSessionService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{Service: service, Logger: logger}
}

// InitiateCheckout opens a new checkout session from the initial booking
// context supplied by the catalog screens.
func (h *CheckoutHandler) InitiateCheckout(c *gin.Context) {
	var input models.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sess, err := h.Service.InitiateCheckout(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.CheckoutResponse{
		SessionID: sess.SessionID,
		State:     sess.State,
		Context:   &sess.Context,
	})
}

// GetSession returns the read-only projection of the current session.
func (h *CheckoutHandler) GetSession(c *gin.Context) {
	sess, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.CheckoutResponse{
		SessionID: sess.SessionID,
		State:     sess.State,
		Context:   &sess.Context,
	})
}

// SubmitCustomerDetails advances the session through the first step.
func (h *CheckoutHandler) SubmitCustomerDetails(c *gin.Context) {
	var input models.CustomerDetailsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sess, err := h.Service.SubmitCustomerDetails(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.CheckoutResponse{
		SessionID: sess.SessionID,
		State:     sess.State,
		Context:   &sess.Context,
	})
}

// SubmitPayment advances the session through the payment step and returns
// the issued confirmation.
func (h *CheckoutHandler) SubmitPayment(c *gin.Context) {
	var input models.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sess, err := h.Service.SubmitPayment(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	record, err := checkout.BuildConfirmationRecord(sess.Context)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.CheckoutResponse{
		SessionID:    sess.SessionID,
		State:        sess.State,
		Context:      &sess.Context,
		Confirmation: record,
	})
}

// GoBack returns from the payment step to the customer-details step.
func (h *CheckoutHandler) GoBack(c *gin.Context) {
	sess, err := h.Service.GoBack(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.CheckoutResponse{
		SessionID: sess.SessionID,
		State:     sess.State,
		Context:   &sess.Context,
	})
}

// CancelSession abandons an in-flight checkout.
func (h *CheckoutHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// respondError maps the checkout error taxonomy onto HTTP statuses. Field
// failures and the terms gate are recoverable; an incomplete context is a
// defect and surfaces as an internal error.
func (h *CheckoutHandler) respondError(c *gin.Context, err error) {
	var valErr *checkout.ValidationError
	var stateErr *checkout.StateError
	var incomplete *checkout.IncompleteContextError

	switch {
	case errors.As(err, &valErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": valErr.Fields,
		})
	case errors.Is(err, checkout.ErrTermsNotAccepted):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "terms and conditions must be accepted",
			"code":  "termsNotAccepted",
		})
	case errors.Is(err, checkout.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "checkout session not found or expired"})
	case errors.As(err, &stateErr):
		c.JSON(http.StatusConflict, gin.H{"error": stateErr.Error()})
	case errors.Is(err, checkout.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &incomplete):
		h.Logger.Error("checkout invariant bypassed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "checkout pipeline error"})
	default:
		h.Logger.Error("checkout request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
