package booking

import (
	"context"
	"fmt"
	"time"

	ledgerRepo "pitchbook/database/repository/ledger"
	"pitchbook/models"
	"pitchbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingCoordinator owns the only mutating, concurrency-sensitive path:
// turning an accepted day set into a Confirmed booking, or failing with
// no partial effect.
type BookingCoordinator interface {
	// Reserve verifies atomically that none of the accepted days has been
	// confirmed by a concurrent reservation and commits the booking. On a
	// lost race it returns a *ConflictError naming the taken days so the
	// caller can re-run the advisory check.
	Reserve(ctx context.Context, req models.BookingRequest, accepted []models.SessionDay) (*models.Booking, error)

	// Cancel releases a Confirmed booking's days and marks it Cancelled.
	Cancel(ctx context.Context, bookingID string) error
}

// DefaultBookingCoordinator commits through the ledger's atomic
// CommitIfFree primitive. It makes exactly one attempt: a silent retry
// here could mask a changed conflict set from the customer.
type DefaultBookingCoordinator struct {
	Ledger ledgerRepo.LedgerRepository
}

func (co *DefaultBookingCoordinator) Reserve(ctx context.Context, req models.BookingRequest, accepted []models.SessionDay) (*models.Booking, error) {
	logger := utils.GetLogger()

	days := models.DedupeSessionDays(append([]models.SessionDay(nil), accepted...))
	if len(days) == 0 {
		return nil, fmt.Errorf("no accepted session days: %w", ErrInvalidInput)
	}

	// Price is always recomputed for the accepted day count; a quote made
	// for a wider range is never trusted past the narrowing. Venue holds
	// occupy days without charge.
	price := models.PriceBreakdown{Currency: currencyCode}
	if req.HoldReason == "" {
		var err error
		price, err = QuotePrice(len(days), req.HoursPerSession, req.Addons)
		if err != nil {
			return nil, err
		}
	}

	customerName := req.CustomerName
	if customerName == "" {
		customerName = "Guest"
	}

	booking := &models.Booking{
		ID:              uuid.New().String(),
		CustomerName:    customerName,
		Contact:         req.Contact,
		SessionDays:     days,
		HoursPerSession: req.HoursPerSession,
		Addons:          req.Addons,
		Price:           price,
		Status:          models.StatusConfirmed,
		CreatedAt:       time.Now(),
		UserID:          req.UserID,
		UserEmail:       req.UserEmail,
		HoldReason:      req.HoldReason,
	}

	conflicts, err := co.Ledger.CommitIfFree(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to commit booking: %w", err)
	}
	if len(conflicts) > 0 {
		logger.Info("reservation lost race",
			zap.String("bookingID", booking.ID),
			zap.Int("requested", len(days)),
			zap.Int("conflicts", len(conflicts)))
		return nil, &ConflictError{Days: conflicts}
	}

	logger.Info("booking confirmed",
		zap.String("bookingID", booking.ID),
		zap.Int("sessions", len(days)),
		zap.Int64("total", price.Total))
	return booking, nil
}

func (co *DefaultBookingCoordinator) Cancel(ctx context.Context, bookingID string) error {
	if err := co.Ledger.CancelBooking(ctx, bookingID); err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	utils.GetLogger().Info("booking cancelled", zap.String("bookingID", bookingID))
	return nil
}
