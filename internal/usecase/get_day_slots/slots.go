package get_day_slots

import (
	"fmt"
	"time"

	"github.com/espacohub/StudioBookingService/internal/domain"
)

// Hours describes the studio's bookable window within a day.
type Hours struct {
	OpenTime    string // "08:00"
	CloseTime   string // "22:00"
	StepMinutes int    // grid step, normally 30
}

// DefaultHours returns the studio's default bookable window.
func DefaultHours() Hours {
	return Hours{
		OpenTime:    domain.DefaultOpenTime,
		CloseTime:   domain.DefaultCloseTime,
		StepMinutes: domain.DefaultSlotStepMinutes,
	}
}

// generateGrid expands one calendar day into fixed-step intervals between
// opening and closing time. A slot whose end would cross closing time is not
// generated.
func generateGrid(day time.Time, hours Hours) ([]domain.Interval, error) {
	open, err := atTimeOfDay(day, hours.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("parse open time: %w", err)
	}
	closeAt, err := atTimeOfDay(day, hours.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("parse close time: %w", err)
	}
	if !open.Before(closeAt) || hours.StepMinutes <= 0 {
		return nil, fmt.Errorf("invalid bookable window %s-%s step=%d", hours.OpenTime, hours.CloseTime, hours.StepMinutes)
	}

	step := time.Duration(hours.StepMinutes) * time.Minute

	grid := make([]domain.Interval, 0)
	for cursor := open; cursor.Before(closeAt); cursor = cursor.Add(step) {
		end := cursor.Add(step)
		if end.After(closeAt) {
			break
		}
		grid = append(grid, domain.Interval{Start: cursor, End: end})
	}

	return grid, nil
}

// atTimeOfDay combines a calendar day with an HH:MM wall-clock time in the
// day's location.
func atTimeOfDay(day time.Time, hhmm string) (time.Time, error) {
	parsed, err := time.Parse(domain.TimeFormat, hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, day.Location()), nil
}

// overlapsAny reports whether the slot overlaps any booking in the set.
// Half-open semantics: a booking ending exactly where the slot starts does
// not block it.
func overlapsAny(slot domain.Interval, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if slot.Overlaps(b.Interval) {
			return true
		}
	}
	return false
}
