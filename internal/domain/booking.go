package domain

import "time"

// Booking represents one confirmed reservation of the studio.
// A booking is immutable once constructed; the only way to build one is the
// scheduler's commit operation (seed placeholders go straight to the store).
type Booking struct {
	ID       string
	Interval Interval
	Title    string
	Contact  string
	Price    float64

	CreatedAt time.Time
}

// IsPlaceholder returns true for operator-seeded "Reservado" entries.
// Placeholders take part in overlap checks like any other booking; the flag
// only drives their visual treatment in the calendar.
func (b *Booking) IsPlaceholder() bool {
	return b.Title == PlaceholderTitle
}
