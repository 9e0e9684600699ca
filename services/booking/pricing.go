package booking

import (
	"fmt"

	"pitchbook/models"
)

// All rates and fees are integers in minor currency units (kobo).
const (
	// Hourly pitch rates. A booking whose total hours exceed
	// LongBookingHours is charged the lower long-booking rate for every
	// hour, not just the excess.
	DayRateMinor  int64 = 12_000_000 // ₦120,000.00 per hour
	LongRateMinor int64 = 10_000_000 // ₦100,000.00 per hour

	// Flat per-session add-on fees, independent of hours.
	MediaFeeMinor     int64 = 20_000_000
	LEDFeeMinor       int64 = 2_000_000
	SoundFeeMinor     int64 = 2_000_000
	DrinksFeeMinor    int64 = 5_000_000
	StreamingFeeMinor int64 = 15_000_000

	// LongBookingHours is the tier switch: total hours above this use
	// LongRateMinor.
	LongBookingHours = 24

	// MinHoursPerSession is the smallest bookable session length.
	MinHoursPerSession = 2

	// Tax is 7.5% of the subtotal, expressed in basis points so the
	// computation stays in integers.
	taxRateBps   int64 = 750
	bpsPerWhole  int64 = 10_000
	currencyCode       = "NGN"
)

// QuotePrice computes the deterministic price breakdown for a booking of
// sessionCount sessions at hoursPerSession hours each, with the selected
// add-ons. It is pure: the same inputs always produce the same breakdown,
// and it is recomputed from scratch whenever the session count or add-on
// selection changes.
func QuotePrice(sessionCount, hoursPerSession int, addons models.AddonSelection) (models.PriceBreakdown, error) {
	if sessionCount < 1 {
		return models.PriceBreakdown{}, fmt.Errorf("session count %d: %w", sessionCount, ErrInvalidInput)
	}
	if hoursPerSession < MinHoursPerSession {
		return models.PriceBreakdown{}, fmt.Errorf("hours per session %d (minimum %d): %w",
			hoursPerSession, MinHoursPerSession, ErrInvalidInput)
	}

	// The tier decision uses total hours across the entire booking.
	totalHours := sessionCount * hoursPerSession
	rate := DayRateMinor
	if totalHours > LongBookingHours {
		rate = LongRateMinor
	}

	sessions := int64(sessionCount)
	breakdown := models.PriceBreakdown{
		Base:     int64(hoursPerSession) * rate * sessions,
		Currency: currencyCode,
	}
	if addons.MediaServices {
		breakdown.Media = sessions * MediaFeeMinor
	}
	if addons.LEDScreen {
		breakdown.LED = sessions * LEDFeeMinor
	}
	if addons.SoundEquipment {
		breakdown.Sound = sessions * SoundFeeMinor
	}
	if addons.DrinksCorkage {
		breakdown.Drinks = sessions * DrinksFeeMinor
	}
	if addons.Streaming {
		breakdown.Streaming = sessions * StreamingFeeMinor
	}

	breakdown.Subtotal = breakdown.Base + breakdown.Media + breakdown.LED +
		breakdown.Sound + breakdown.Drinks + breakdown.Streaming
	breakdown.Tax = breakdown.Subtotal * taxRateBps / bpsPerWhole
	breakdown.Total = breakdown.Subtotal + breakdown.Tax
	return breakdown, nil
}
