package handlers

import (
	"errors"
	"net/http"

	"pitchbook/models"
	"pitchbook/services/booking"
	"pitchbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler covers the administrative booking surface: cancelling
// bookings and blocking off date ranges for maintenance.
type AdminHandler struct {
	Coordinator booking.BookingCoordinator
	Logger      *zap.Logger
}

func NewAdminHandler(coordinator booking.BookingCoordinator, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Coordinator: coordinator, Logger: logger}
}

// CancelBooking releases a Confirmed booking's session days.
func (h *AdminHandler) CancelBooking(c *gin.Context) {
	id := c.Param("id")
	if err := h.Coordinator.Cancel(c.Request.Context(), id); err != nil {
		h.Logger.Warn("cancel booking failed", zap.String("bookingID", id), zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "could not cancel booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

// BlockDates reserves a date range as a venue hold so the days conflict
// like any other Confirmed booking. The hold goes through the same
// atomic commit path, so it cannot override an existing reservation.
func (h *AdminHandler) BlockDates(c *gin.Context) {
	var input struct {
		StartDate string `json:"startDate" binding:"required"`
		EndDate   string `json:"endDate" binding:"required"`
		Reason    string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	days, err := booking.EnumerateSessionDays(input.StartDate, input.EndDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date range", err.Error())
		return
	}
	if input.Reason == "" {
		input.Reason = "maintenance"
	}

	req := models.BookingRequest{
		CustomerName:    "Venue Hold",
		HoursPerSession: booking.MinHoursPerSession,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		HoldReason:      input.Reason,
	}

	hold, err := h.Coordinator.Reserve(c.Request.Context(), req, days)
	if err != nil {
		var conflict *booking.ConflictError
		if errors.As(err, &conflict) {
			c.JSON(http.StatusConflict, gin.H{
				"error":        "range overlaps existing bookings",
				"conflictDays": conflict.Days,
			})
			return
		}
		h.Logger.Error("block dates failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to block dates", err.Error())
		return
	}

	c.JSON(http.StatusCreated, hold)
}
