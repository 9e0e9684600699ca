package handlers

import (
	"errors"
	"net/http"

	ledgerRepo "pitchbook/database/repository/ledger"
	"pitchbook/middleware"
	"pitchbook/models"
	"pitchbook/services/booking"
	"pitchbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the availability/pricing engine over HTTP.
type BookingHandler struct {
	Quotes booking.QuoteService
	Ledger ledgerRepo.LedgerRepository
	Logger *zap.Logger
}

func NewBookingHandler(quotes booking.QuoteService, ledger ledgerRepo.LedgerRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Quotes: quotes, Ledger: ledger, Logger: logger}
}

// CheckAvailability runs the advisory availability check and returns a
// priced quote. The quote is advisory: days can still be taken by a
// concurrent customer before confirmation.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	// A logged-in caller's identity wins over whatever the body claims.
	if userID := c.GetString(middleware.CtxUserID); userID != "" {
		req.UserID = userID
		req.UserEmail = c.GetString(middleware.CtxUserEmail)
		if name := c.GetString(middleware.CtxUserName); name != "" {
			req.CustomerName = name
		}
	}

	quote, err := h.Quotes.CheckAvailability(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidRange) || errors.Is(err, booking.ErrInvalidInput) {
			utils.JSONError(c, http.StatusBadRequest, "invalid booking request", err.Error())
			return
		}
		h.Logger.Error("availability check failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to check availability", err.Error())
		return
	}

	c.JSON(http.StatusOK, quote)
}

// ConfirmBooking reserves the accepted days from a previously issued
// quote. It returns 409 with the newly conflicting days when the
// reservation lost a race, so the client can re-check and narrow.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var input struct {
		QuoteID      string              `json:"quoteId" binding:"required"`
		AcceptedDays []models.SessionDay `json:"acceptedDays"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	for i, d := range input.AcceptedDays {
		day, err := models.ParseSessionDay(string(d))
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid accepted day", err.Error())
			return
		}
		input.AcceptedDays[i] = day
	}

	bookingRecord, err := h.Quotes.ConfirmQuote(c.Request.Context(), input.QuoteID, input.AcceptedDays)
	if err != nil {
		var conflict *booking.ConflictError
		switch {
		case errors.As(err, &conflict):
			c.JSON(http.StatusConflict, gin.H{
				"error":        "some session days were taken before confirmation",
				"conflictDays": conflict.Days,
			})
		case errors.Is(err, booking.ErrFullyUnavailable):
			utils.JSONError(c, http.StatusConflict, "none of the requested days are available", err.Error())
		case errors.Is(err, booking.ErrQuoteExpired):
			utils.JSONError(c, http.StatusGone, "quote expired", "run a new availability check")
		case errors.Is(err, booking.ErrInvalidInput):
			utils.JSONError(c, http.StatusBadRequest, "invalid confirmation", err.Error())
		default:
			h.Logger.Error("booking confirmation failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to confirm booking", err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, bookingRecord)
}

// CancelQuote abandons a pending quote before confirmation.
func (h *BookingHandler) CancelQuote(c *gin.Context) {
	quoteID := c.Param("quoteID")
	if err := h.Quotes.CancelQuote(c.Request.Context(), quoteID); err != nil {
		h.Logger.Error("failed to cancel quote", zap.String("quoteID", quoteID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel quote", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "quote cancelled"})
}

// GetBooking fetches one booking by ID.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")
	bookingRecord, err := h.Ledger.GetBookingByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookingRecord)
}

// ListBookings returns the caller's own bookings; admins see everything.
// Anonymous callers are refused: without an identity there is no owner
// scope, and an unscoped list would expose other customers' contacts.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	isAdmin := c.GetString(middleware.CtxUserRole) == "admin"
	if !isAdmin && userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "sign in to list bookings", "anonymous callers cannot list bookings")
		return
	}
	if isAdmin {
		userID = ""
	}

	bookings, err := h.Ledger.ListBookings(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
