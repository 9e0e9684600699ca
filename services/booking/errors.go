package booking

import (
	"errors"
	"fmt"
	"strings"

	"pitchbook/models"
)

// Caller errors. These are rejected immediately and never retried.
var (
	// ErrInvalidRange means the end date falls before the start date.
	ErrInvalidRange = errors.New("end date is before start date")
	// ErrInvalidInput means a non-positive session count, sub-minimum
	// hours per session, or a malformed date.
	ErrInvalidInput = errors.New("invalid booking input")
	// ErrFullyUnavailable means every requested session day is taken.
	ErrFullyUnavailable = errors.New("none of the requested session days are available")
	// ErrQuoteExpired means the quote session is gone from the cache.
	ErrQuoteExpired = errors.New("quote not found or expired")
)

// ConflictError names the session days that became unavailable between
// the advisory check and the reservation attempt. The caller recovers by
// re-running the check and resubmitting with a narrowed day set.
type ConflictError struct {
	Days []models.SessionDay
}

func (e *ConflictError) Error() string {
	parts := make([]string, 0, len(e.Days))
	for _, d := range e.Days {
		parts = append(parts, string(d))
	}
	return fmt.Sprintf("session days no longer available: %s", strings.Join(parts, ", "))
}
