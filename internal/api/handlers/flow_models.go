package handlers

import (
	"github.com/espacohub/StudioBookingService/internal/domain"
	"github.com/espacohub/StudioBookingService/internal/flow"
)

// FlowStateResponse is the HTTP view of one session's booking flow,
// shared by the flow handlers.
type FlowStateResponse struct {
	SessionID   string        `json:"sessionId"`
	State       string        `json:"state"`
	Granularity string        `json:"granularity"`
	AnchorDate  string        `json:"anchorDate"`
	Prompt      string        `json:"prompt,omitempty"`
	Candidate   *IntervalView `json:"candidate,omitempty"`
	Selected    *BookingView  `json:"selected,omitempty"`
	Amount      float64       `json:"amount,omitempty"`
	Notice      string        `json:"notice,omitempty"`
}

// IntervalView is the HTTP view of a half-open interval
type IntervalView struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// BookingView is the HTTP view of a committed booking
type BookingView struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Start string  `json:"start"`
	End   string  `json:"end"`
	Price float64 `json:"price"`
}

// FromFlowSnapshot converts a flow snapshot into the HTTP view.
func FromFlowSnapshot(snap flow.Snapshot) *FlowStateResponse {
	resp := &FlowStateResponse{
		SessionID:   snap.SessionID,
		State:       string(snap.State),
		Granularity: string(snap.Granularity),
		AnchorDate:  snap.AnchorDate.Format(domain.DateFormat),
		Prompt:      string(snap.Prompt),
		Amount:      snap.Amount,
	}
	if snap.Candidate != nil {
		resp.Candidate = &IntervalView{
			Start: snap.Candidate.Start.Format(domain.DateTimeFormat),
			End:   snap.Candidate.End.Format(domain.DateTimeFormat),
		}
	}
	if snap.Selected != nil {
		resp.Selected = &BookingView{
			ID:    snap.Selected.ID,
			Title: snap.Selected.Title,
			Start: snap.Selected.Interval.Start.Format(domain.DateTimeFormat),
			End:   snap.Selected.Interval.End.Format(domain.DateTimeFormat),
			Price: snap.Selected.Price,
		}
	}
	return resp
}
