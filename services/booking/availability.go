package booking

import (
	"context"
	"fmt"

	ledgerRepo "pitchbook/database/repository/ledger"
	"pitchbook/models"
	"pitchbook/utils"

	"go.uber.org/zap"
)

// AvailabilityReport is the outcome of an advisory availability check.
// It may be stale by the time a reservation is attempted; only
// CommitIfFree decides for real.
type AvailabilityReport struct {
	Requested []models.SessionDay `json:"requested"`
	Conflicts []models.SessionDay `json:"conflicts,omitempty"`
	Free      []models.SessionDay `json:"free,omitempty"`
	Verdict   string              `json:"verdict"`
}

// AvailabilityChecker answers how many of a candidate day set are already
// held by Confirmed bookings. It never mutates the ledger.
type AvailabilityChecker interface {
	CheckConflicts(ctx context.Context, candidate []models.SessionDay) (*AvailabilityReport, error)
}

// DefaultAvailabilityChecker reads through the ledger's read interface.
type DefaultAvailabilityChecker struct {
	Ledger ledgerRepo.Reader
}

// CheckConflicts partitions the candidate days into conflicting and free
// and derives the verdict. Pending quotes do not count as conflicts; only
// Confirmed bookings block a day.
func (ac *DefaultAvailabilityChecker) CheckConflicts(ctx context.Context, candidate []models.SessionDay) (*AvailabilityReport, error) {
	logger := utils.GetLogger()

	days := models.DedupeSessionDays(append([]models.SessionDay(nil), candidate...))
	if len(days) == 0 {
		return nil, fmt.Errorf("no candidate session days: %w", ErrInvalidInput)
	}

	held, err := ac.Ledger.ListConfirmedSessions(ctx, days[0], days[len(days)-1])
	if err != nil {
		logger.Error("availability check failed",
			zap.String("from", string(days[0])),
			zap.String("to", string(days[len(days)-1])),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list confirmed sessions: %w", err)
	}

	heldSet := make(map[models.SessionDay]struct{}, len(held))
	for _, d := range held {
		heldSet[d] = struct{}{}
	}

	report := &AvailabilityReport{Requested: days}
	for _, d := range days {
		if _, taken := heldSet[d]; taken {
			report.Conflicts = append(report.Conflicts, d)
		} else {
			report.Free = append(report.Free, d)
		}
	}

	switch {
	case len(report.Conflicts) == 0:
		report.Verdict = models.VerdictAvailable
	case len(report.Conflicts) == len(days):
		report.Verdict = models.VerdictUnavailable
	default:
		report.Verdict = models.VerdictPartial
	}
	return report, nil
}
