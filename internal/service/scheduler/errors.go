package scheduler

import "errors"

var (
	// ErrInvalidInterval is returned when the candidate interval is malformed (start >= end)
	ErrInvalidInterval = errors.New("scheduler: invalid interval")

	// ErrPastDate is returned when the slot starts before the current calendar day
	ErrPastDate = errors.New("scheduler: slot starts on a past date")

	// ErrInsufficientLeadTime is returned when the slot starts inside the minimum lead window
	ErrInsufficientLeadTime = errors.New("scheduler: insufficient booking lead time")

	// ErrBlackoutDay is returned when the slot starts on a blackout weekday
	ErrBlackoutDay = errors.New("scheduler: slot starts on a blackout day")

	// ErrSlotOccupied is returned when the slot overlaps an existing booking
	ErrSlotOccupied = errors.New("scheduler: slot already occupied")

	// ErrInvalidTitle is returned when the event title is empty
	ErrInvalidTitle = errors.New("scheduler: invalid event title")

	// ErrInvalidContact is returned when the contact is not a valid e-mail address
	ErrInvalidContact = errors.New("scheduler: invalid contact address")

	// ErrInternal is returned on internal scheduler failures
	ErrInternal = errors.New("scheduler: internal error")
)

// RejectionReason returns the stable machine-readable code for a scheduler
// rejection, or an empty string when the error is not a rejection.
func RejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInterval):
		return "invalid_interval"
	case errors.Is(err, ErrPastDate):
		return "past_date"
	case errors.Is(err, ErrInsufficientLeadTime):
		return "insufficient_lead_time"
	case errors.Is(err, ErrBlackoutDay):
		return "blackout_day"
	case errors.Is(err, ErrSlotOccupied):
		return "slot_occupied"
	case errors.Is(err, ErrInvalidTitle):
		return "invalid_title"
	case errors.Is(err, ErrInvalidContact):
		return "invalid_contact"
	default:
		return ""
	}
}
