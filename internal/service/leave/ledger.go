package leave

import (
	"math"
	"time"
)

// WorkingDaysPerMonth is the fixed month length used for the
// attendance aggregate, matching the 26-day field-force work month
// (Sundays off).
const WorkingDaysPerMonth = 26

// SelectableDays returns the inclusive day count of a leave range.
// Both dates are normalized to UTC midnight first so timezone and DST
// offsets cannot produce fractional days. from == to yields 1; a range
// with to before from yields a non-positive count, which callers must
// treat as invalid input.
func SelectableDays(from, to time.Time) int {
	from = atMidnight(from)
	to = atMidnight(to)
	return int(to.Sub(from)/(24*time.Hour)) + 1
}

func atMidnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// AttendanceRate returns presentDays as a rounded percentage of the
// fixed working month.
func AttendanceRate(presentDays int) int {
	return int(math.Round(float64(presentDays) / float64(WorkingDaysPerMonth) * 100))
}

// monthBounds returns the first and last calendar day of a month.
func monthBounds(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}
