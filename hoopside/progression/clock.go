package progression

import "time"

// Calendar-day comparisons use UTC so streaks behave identically
// regardless of which server or client submitted the event.

// SameCalendarDay reports whether a and b fall on the same UTC date.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// ConsecutiveDay reports whether current's UTC date is exactly one day
// after previous's.
func ConsecutiveDay(previous, current time.Time) bool {
	return SameCalendarDay(previous.UTC().AddDate(0, 0, 1), current)
}

// WithinCooldown reports whether current falls inside the cooldown
// window that started at previous.
func WithinCooldown(previous, current time.Time, window time.Duration) bool {
	return current.Sub(previous) < window
}
