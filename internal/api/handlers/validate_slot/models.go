package validate_slot

import (
	"time"

	"github.com/espacohub/StudioBookingService/internal/domain"
)

// ValidateSlotRequest HTTP request model. Timestamps are local wall-clock
// (2006-01-02T15:04).
type ValidateSlotRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ValidateSlotResponse HTTP response model
type ValidateSlotResponse struct {
	Valid bool `json:"valid"`
}

// ToInterval parses the request timestamps
func (r *ValidateSlotRequest) ToInterval() (domain.Interval, error) {
	start, err := time.ParseInLocation(domain.DateTimeFormat, r.Start, time.Local)
	if err != nil {
		return domain.Interval{}, err
	}
	end, err := time.ParseInLocation(domain.DateTimeFormat, r.End, time.Local)
	if err != nil {
		return domain.Interval{}, err
	}
	return domain.Interval{Start: start, End: end}, nil
}
