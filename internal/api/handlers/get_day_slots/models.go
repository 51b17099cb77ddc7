package get_day_slots

import (
	"time"

	"github.com/espacohub/StudioBookingService/internal/domain"
	getDaySlots "github.com/espacohub/StudioBookingService/internal/usecase/get_day_slots"
)

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}

// Slot is one cell of the day-view grid
type Slot struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// ToUseCaseRequest parses the date query parameter
func ToUseCaseRequest(dateStr string) (*getDaySlots.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
	if err != nil {
		return nil, err
	}
	return &getDaySlots.Request{Date: date}, nil
}

// FromUseCaseResponse converts the usecase response into the HTTP response
func FromUseCaseResponse(resp *getDaySlots.Response) *DaySlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = Slot{
			Start:  s.Start.Format(domain.DateTimeFormat),
			End:    s.End.Format(domain.DateTimeFormat),
			Status: string(s.Status),
			Reason: s.Reason,
		}
	}
	return &DaySlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
