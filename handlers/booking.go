package handlers

import (
	"net/http"

	bookingRepo "wanderbook/database/repository/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves confirmed bookings.
type BookingHandler struct {
	Repo   bookingRepo.BookingRepository
	Logger *zap.Logger
}

func NewBookingHandler(repo bookingRepo.BookingRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Repo: repo, Logger: logger}
}

// GetByReference fetches a confirmed booking by its display reference.
func (h *BookingHandler) GetByReference(c *gin.Context) {
	booking, err := h.Repo.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// ListByEmail fetches all bookings made under an email address.
func (h *BookingHandler) ListByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}
	bookings, err := h.Repo.ListByCustomerEmail(c.Request.Context(), email)
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
