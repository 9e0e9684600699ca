package booking

import (
	"context"

	"pitchbook/models"
)

// QuoteService drives the customer-facing two-phase flow: an advisory
// availability check that produces a priced quote, then a confirmation
// that hands the accepted days to the coordinator.
type QuoteService interface {
	CheckAvailability(ctx context.Context, req models.BookingRequest) (*models.QuoteSession, error)
	ConfirmQuote(ctx context.Context, quoteID string, accepted []models.SessionDay) (*models.Booking, error)
	CancelQuote(ctx context.Context, quoteID string) error
}

// DefaultQuoteService implements QuoteService. The cache is injected
// behind QuoteCache rather than pulled from ambient state so tests can
// run against an in-memory fake.
type DefaultQuoteService struct {
	Checker     AvailabilityChecker
	Coordinator BookingCoordinator
	Cache       QuoteCache
}
