package domain

import "time"

// Interval is a half-open time range [Start, End) with minute granularity.
type Interval struct {
	Start time.Time
	End   time.Time
}

// IsValid returns true when the interval is well formed (Start strictly
// before End).
func (i Interval) IsValid() bool {
	return i.Start.Before(i.End)
}

// Minutes returns the interval duration in whole minutes.
func (i Interval) Minutes() int {
	return int(i.End.Sub(i.Start) / time.Minute)
}

// Overlaps reports whether two half-open intervals overlap.
// Strict inequalities on both sides: intervals that merely touch at a shared
// endpoint do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// DayStart returns midnight of the day the interval starts on, in the
// interval's own location.
func (i Interval) DayStart() time.Time {
	return StartOfDay(i.Start)
}

// StartOfDay truncates a timestamp to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
