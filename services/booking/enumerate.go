package booking

import (
	"fmt"
	"time"

	"pitchbook/models"
)

// EnumerateSessionDays expands an inclusive date range into one
// SessionDay per calendar day, in order. A single-day range yields
// exactly one day. The length of the result is the session count used
// throughout pricing.
func EnumerateSessionDays(startDate, endDate string) ([]models.SessionDay, error) {
	start, err := time.Parse(models.SessionDayFormat, startDate)
	if err != nil {
		return nil, fmt.Errorf("start date %q: %w", startDate, ErrInvalidInput)
	}
	end, err := time.Parse(models.SessionDayFormat, endDate)
	if err != nil {
		return nil, fmt.Errorf("end date %q: %w", endDate, ErrInvalidInput)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%s to %s: %w", startDate, endDate, ErrInvalidRange)
	}

	var days []models.SessionDay
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, models.NewSessionDay(d))
	}
	return days, nil
}
