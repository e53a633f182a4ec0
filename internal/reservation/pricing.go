package reservation

import (
	"time"

	"github.com/sewakita/sewakita-backend/internal/asset"
)

const hoursPerDay = 24 * time.Hour

// CalculatePrice computes the total price for renting an asset over
// [start, end) at the given rate (minor currency units).
//
// per_hour bills whole elapsed hours, truncating fractions.
// per_day bills whole elapsed days with a minimum of one day, so any
// booking shorter than 24 hours still costs a full day.
//
// The function is total: degenerate input (end <= start) yields 0 and it is
// the caller's job to reject such ranges before admission. A sub-hour
// per-hour booking also yields 0; the admission path rejects those with
// ErrTooShort instead of admitting a free booking.
func CalculatePrice(unit asset.PricingUnit, start, end time.Time, rate int64) int64 {
	if !end.After(start) {
		return 0
	}

	d := end.Sub(start)

	switch unit {
	case asset.UnitPerHour:
		hours := int64(d / time.Hour)
		return hours * rate
	case asset.UnitPerDay:
		days := int64(d / hoursPerDay)
		if days < 1 {
			days = 1
		}
		return days * rate
	default:
		return 0
	}
}
