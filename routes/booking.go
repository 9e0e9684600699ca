package routes

import (
	"pitchbook/handlers"
	"pitchbook/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking engine.
// Identity is optional on every route: a guest can check availability and
// book without an account.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	api := r.Group("/api/booking")
	api.Use(middleware.OptionalAuthMiddleware())
	{
		api.POST("/check", bh.CheckAvailability)      // Phase 1: advisory check + quote
		api.POST("/confirm", bh.ConfirmBooking)       // Phase 2: atomic reservation
		api.DELETE("/quote/:quoteID", bh.CancelQuote) // abandon a pending quote
		api.GET("/:id", bh.GetBooking)
	}

	r.GET("/api/bookings", middleware.OptionalAuthMiddleware(), bh.ListBookings)
}

// RegisterAdminRoutes registers the administrative booking surface.
func RegisterAdminRoutes(r *gin.Engine, ah *handlers.AdminHandler) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.OptionalAuthMiddleware(), middleware.AdminOnlyMiddleware())
	{
		admin.DELETE("/bookings/:id", ah.CancelBooking)
		admin.POST("/block", ah.BlockDates)
	}
}
