package models

import "time"

// Booking status values. Confirmed bookings occupy their session days;
// cancelling releases them. An unconfirmed request is a quote session,
// not a booking, so no pending status exists on the ledger.
const (
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
)

// Booking is the durable reservation record. It is committed as a whole
// together with its session-day claims, or not at all.
type Booking struct {
	ID              string         `bson:"id" json:"id"`
	CustomerName    string         `bson:"customerName" json:"customerName"`
	Contact         string         `bson:"contact" json:"contact"`
	SessionDays     []SessionDay   `bson:"sessionDays" json:"sessionDays"`
	HoursPerSession int            `bson:"hoursPerSession" json:"hoursPerSession"`
	Addons          AddonSelection `bson:"addons" json:"addons"`
	Price           PriceBreakdown `bson:"price" json:"price"`
	Status          string         `bson:"status" json:"status"`
	CreatedAt       time.Time      `bson:"createdAt" json:"createdAt"`

	// Optional owning identity; empty for guest bookings.
	UserID    string `bson:"userId,omitempty" json:"userId,omitempty"`
	UserEmail string `bson:"userEmail,omitempty" json:"userEmail,omitempty"`

	// Set on administrative venue holds (maintenance blocks). Holds go
	// through the same commit path as customer bookings.
	HoldReason string `bson:"holdReason,omitempty" json:"holdReason,omitempty"`
}
