package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pitchbook/config"
	"pitchbook/models"

	"github.com/google/uuid"
)

const quoteKeyPrefix = "quote:"

func quoteTTL() time.Duration {
	minutes := config.AppConfig.QuoteTTLMinutes
	if minutes <= 0 {
		minutes = 10
	}
	return time.Duration(minutes) * time.Minute
}

// CheckAvailability enumerates the requested range, runs the advisory
// conflict check, prices the full request, and stores the result as a
// quote session under a TTL. An abandoned quote simply expires; nothing
// is written to the ledger here.
func (s *DefaultQuoteService) CheckAvailability(ctx context.Context, req models.BookingRequest) (*models.QuoteSession, error) {
	days, err := EnumerateSessionDays(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	price, err := QuotePrice(len(days), req.HoursPerSession, req.Addons)
	if err != nil {
		return nil, err
	}

	report, err := s.Checker.CheckConflicts(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("failed to check availability: %w", err)
	}

	session := &models.QuoteSession{
		QuoteID:       uuid.New().String(),
		Request:       req,
		RequestedDays: report.Requested,
		ConflictDays:  report.Conflicts,
		FreeDays:      report.Free,
		Verdict:       report.Verdict,
		Price:         price,
		CreatedAt:     time.Now(),
	}

	sessionData, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal quote session: %w", err)
	}
	if err := s.Cache.Set(ctx, quoteKeyPrefix+session.QuoteID, sessionData, quoteTTL()); err != nil {
		return nil, fmt.Errorf("failed to store quote session: %w", err)
	}

	return session, nil
}

// ConfirmQuote retrieves the quote session and reserves the accepted
// days. An empty accepted set means "all quoted free days". The price
// committed is recomputed for the accepted day count inside Reserve.
func (s *DefaultQuoteService) ConfirmQuote(ctx context.Context, quoteID string, accepted []models.SessionDay) (*models.Booking, error) {
	sessionData, err := s.Cache.Get(ctx, quoteKeyPrefix+quoteID)
	if errors.Is(err, errCacheMiss) {
		return nil, ErrQuoteExpired
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load quote session: %w", err)
	}
	var session models.QuoteSession
	if err := json.Unmarshal(sessionData, &session); err != nil {
		return nil, fmt.Errorf("failed to parse quote session: %w", err)
	}

	if len(session.FreeDays) == 0 {
		return nil, ErrFullyUnavailable
	}

	if len(accepted) == 0 {
		accepted = session.FreeDays
	} else {
		quoted := make(map[models.SessionDay]struct{}, len(session.FreeDays))
		for _, d := range session.FreeDays {
			quoted[d] = struct{}{}
		}
		for _, d := range accepted {
			if _, ok := quoted[d]; !ok {
				return nil, fmt.Errorf("day %s is not among the quoted free days: %w", d, ErrInvalidInput)
			}
		}
	}

	bookingRecord, err := s.Coordinator.Reserve(ctx, session.Request, accepted)
	if err != nil {
		// Leave the quote in place on a conflict so the client can
		// re-check and narrow before it expires.
		return nil, err
	}

	s.Cache.Del(ctx, quoteKeyPrefix+quoteID)
	return bookingRecord, nil
}

// CancelQuote drops a pending quote session from the cache.
func (s *DefaultQuoteService) CancelQuote(ctx context.Context, quoteID string) error {
	if err := s.Cache.Del(ctx, quoteKeyPrefix+quoteID); err != nil {
		return fmt.Errorf("failed to cancel quote session: %w", err)
	}
	return nil
}
