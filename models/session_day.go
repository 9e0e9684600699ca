package models

import (
	"fmt"
	"sort"
	"time"
)

// SessionDayFormat is the wire and storage format for a SessionDay.
const SessionDayFormat = "2006-01-02"

// SessionDay is a single calendar day, the atomic unit of reservation.
// It is stored as "YYYY-MM-DD", so lexicographic order is chronological.
type SessionDay string

// NewSessionDay truncates a time to its calendar day.
func NewSessionDay(t time.Time) SessionDay {
	return SessionDay(t.Format(SessionDayFormat))
}

// ParseSessionDay validates a "YYYY-MM-DD" string.
func ParseSessionDay(s string) (SessionDay, error) {
	t, err := time.Parse(SessionDayFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid session day %q: %w", s, err)
	}
	return NewSessionDay(t), nil
}

// Time returns the day at midnight UTC.
func (d SessionDay) Time() (time.Time, error) {
	return time.Parse(SessionDayFormat, string(d))
}

// SortSessionDays orders days chronologically in place and returns the slice.
// Reservation paths rely on this ordering when claiming days one by one.
func SortSessionDays(days []SessionDay) []SessionDay {
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

// DedupeSessionDays returns the distinct days of the input, sorted.
func DedupeSessionDays(days []SessionDay) []SessionDay {
	seen := make(map[SessionDay]struct{}, len(days))
	out := make([]SessionDay, 0, len(days))
	for _, d := range days {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return SortSessionDays(out)
}
