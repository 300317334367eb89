package routes

import (
	"net/http"
	"time"

	"wanderbook/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCheckoutRoutes registers the checkout pipeline endpoints.
func RegisterCheckoutRoutes(r *gin.Engine, ch *handlers.CheckoutHandler) {
	api := r.Group("/api/checkout")
	{
		api.POST("", ch.InitiateCheckout)
		api.GET("/:sessionID", ch.GetSession)
		api.PUT("/:sessionID/customer", ch.SubmitCustomerDetails)
		api.PUT("/:sessionID/payment", ch.SubmitPayment)
		api.POST("/:sessionID/back", ch.GoBack)
		api.DELETE("/:sessionID", ch.CancelSession)
	}
}

// RegisterBookingRoutes registers confirmed-booking lookup endpoints.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	api := r.Group("/api/bookings")
	{
		api.GET("/:reference", bh.GetByReference)
		api.GET("", bh.ListByEmail)
	}
}

// RegisterRoutes wires CORS, health and all API groups.
func RegisterRoutes(r *gin.Engine, ch *handlers.CheckoutHandler, bh *handlers.BookingHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterCheckoutRoutes(r, ch)
	RegisterBookingRoutes(r, bh)
}
