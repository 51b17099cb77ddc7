package get_day_slots

import "time"

// SlotStatus classifies one grid slot in the day view
type SlotStatus string

const (
	// StatusFree marks a slot that passes validation and overlaps nothing
	StatusFree SlotStatus = "free"
	// StatusOccupied marks a slot overlapping an existing booking
	StatusOccupied SlotStatus = "occupied"
	// StatusUnavailable marks a slot rejected by a temporal rule
	StatusUnavailable SlotStatus = "unavailable"
)

// Request asks for the slot grid of one calendar day
type Request struct {
	Date time.Time // the day to expand, time-of-day ignored
}

// Response carries the expanded grid
type Response struct {
	Date  time.Time
	Slots []Slot
}

// Slot is one grid cell of the day view
type Slot struct {
	Start  time.Time
	End    time.Time
	Status SlotStatus
	Reason string // rejection reason code when Status is unavailable
}
