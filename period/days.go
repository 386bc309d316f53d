package period

import "time"

// daySeconds is the civil-day step used for all duration arithmetic.
// Bounds are pinned to UTC midnight, so a day is always exactly 86400
// Unix seconds.
const daySeconds = 24 * 60 * 60

// Date returns the UTC midnight of the given calendar day. It is the
// canonical way to build query dates and birth dates for this library.
func Date(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// Midnight normalizes t to the UTC midnight of its calendar day. All
// exported entry points normalize incoming dates with it, so callers
// may pass any clock time.
func Midnight(t time.Time) time.Time {
	u := t.UTC()

	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays returns t shifted by n whole days.
func AddDays(t time.Time, n int) time.Time { return t.AddDate(0, 0, n) }

// DaysBetween returns the whole-day distance from a to b. Both inputs
// must be UTC midnights (as produced by Date/Midnight/AddDays); the
// result is negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	return int((b.Unix() - a.Unix()) / daySeconds)
}
