package domain

import "time"

// BookingHorizonBusinessDays is the furthest a move may be scheduled ahead.
// Shared by the pricing engine and the availability validator so the two
// rules cannot drift apart.
const BookingHorizonBusinessDays = 60

// DateOnly strips the time-of-day component, keeping the location.
// All calendar comparisons in the engine operate on date-only values.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two instants fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// AddBusinessDays walks forward one calendar day at a time from the given
// date, counting only Monday through Friday, until n business days have
// been counted. No holiday calendar is applied.
func AddBusinessDays(from time.Time, n int) time.Time {
	d := DateOnly(from)
	counted := 0
	for counted < n {
		d = d.AddDate(0, 0, 1)
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			counted++
		}
	}
	return d
}
