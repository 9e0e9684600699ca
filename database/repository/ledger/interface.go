package ledgerRepo

import (
	"context"

	"pitchbook/models"
)

// Reader is the read-only ledger view used by the advisory availability
// check. Its results may be stale by the time a reservation is attempted.
type Reader interface {
	// ListConfirmedSessions returns the session days occupied by Confirmed
	// bookings within the inclusive range.
	ListConfirmedSessions(ctx context.Context, from, to models.SessionDay) ([]models.SessionDay, error)
}

// LedgerRepository is the authoritative store of bookings and the session
// days they occupy.
type LedgerRepository interface {
	Reader

	// CommitIfFree atomically claims every session day on the booking and
	// persists it. If any day is already held by a Confirmed booking, no
	// state changes and the conflicting days are returned.
	CommitIfFree(ctx context.Context, booking *models.Booking) ([]models.SessionDay, error)

	// GetBookingByID retrieves a booking by its ID.
	GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error)

	// ListBookings returns bookings, optionally scoped to an owning user.
	ListBookings(ctx context.Context, userID string) ([]models.Booking, error)

	// CancelBooking marks a booking Cancelled and releases its session
	// days for future reservation.
	CancelBooking(ctx context.Context, bookingID string) error
}
