package domain

import (
	"fmt"
	"strings"
	"time"
)

// Default scheduling rules
const (
	DefaultHalfHourRate     = 40.0 // currency units per started half hour
	DefaultMinLeadTimeHours = 24
	DefaultSlotStepMinutes  = 30
	DefaultOpenTime         = "08:00"
	DefaultCloseTime        = "22:00"
)

// HalfHourMinutes is the pricing unit: partial half hours are billed as full.
const HalfHourMinutes = 30

// PlaceholderTitle marks operator-seeded bookings that block the calendar
// but belong to no tenant.
const PlaceholderTitle = "Reservado"

// DefaultBlackoutWeekdays lists weekdays on which no booking may start.
var DefaultBlackoutWeekdays = []time.Weekday{time.Sunday}

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04" // local wall-clock timestamp
)

// ParseWeekday converts an English weekday name ("sunday", "Monday") into a
// time.Weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), name) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday: %q", name)
}
