package select_slot

import (
	"time"

	"github.com/espacohub/StudioBookingService/internal/domain"
	"github.com/espacohub/StudioBookingService/internal/flow"
)

// SelectSlotRequest HTTP request model: a raw calendar selection gesture.
// Timestamps are local wall-clock (2006-01-02T15:04).
type SelectSlotRequest struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Action string `json:"action"` // click | select | doubleClick
}

// ToSlotEvent parses the request into a flow event
func (r *SelectSlotRequest) ToSlotEvent() (flow.SlotEvent, error) {
	start, err := time.ParseInLocation(domain.DateTimeFormat, r.Start, time.Local)
	if err != nil {
		return flow.SlotEvent{}, err
	}
	end, err := time.ParseInLocation(domain.DateTimeFormat, r.End, time.Local)
	if err != nil {
		return flow.SlotEvent{}, err
	}
	return flow.SlotEvent{
		Interval: domain.Interval{Start: start, End: end},
		Action:   flow.Action(r.Action),
	}, nil
}
