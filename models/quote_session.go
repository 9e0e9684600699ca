package models

import "time"

// Availability verdicts for a requested date range.
const (
	VerdictAvailable   = "available"   // every requested day is free
	VerdictPartial     = "partial"     // some days are taken, the rest may be booked
	VerdictUnavailable = "unavailable" // every requested day is taken
)

// QuoteSession holds context between the advisory availability check and
// the final reservation. It lives only in the quote cache under a TTL; an
// abandoned quote simply expires and never touches the ledger.
type QuoteSession struct {
	QuoteID       string         `json:"quoteId"`
	Request       BookingRequest `json:"request"`
	RequestedDays []SessionDay   `json:"requestedDays"`
	ConflictDays  []SessionDay   `json:"conflictDays,omitempty"`
	FreeDays      []SessionDay   `json:"freeDays,omitempty"`
	Verdict       string         `json:"verdict"`
	Price         PriceBreakdown `json:"price"`
	CreatedAt     time.Time      `json:"createdAt"`
}
