package entity

import (
	"time"
)

// DayKeyFormat is the storage format for usage counter dates.
// The boundary is the server-local calendar day; the only consumer is
// server-side authorization, so user timezones are not considered.
const DayKeyFormat = "2006-01-02"

// DayKey returns the calendar-day key for a point in time
func DayKey(t time.Time) string {
	return t.Format(DayKeyFormat)
}

// UsageCounter tracks free-tier actions consumed by an owner on one calendar
// day, independent of the paid ledger.
type UsageCounter struct {
	Owner string
	Date  string // DayKeyFormat
	Count int
}

// Remaining returns how many free-tier actions are left under the given limit
func (u *UsageCounter) Remaining(limit int) int {
	if u.Count >= limit {
		return 0
	}
	return limit - u.Count
}
