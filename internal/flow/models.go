package flow

import (
	"time"

	"github.com/espacohub/StudioBookingService/internal/domain"
)

// State is the flow controller state for one session
type State string

const (
	// StateBrowsing means the tenant is looking at the calendar (month or day view)
	StateBrowsing State = "browsing"
	// StateAwaitingTitle means the title prompt is outstanding for a candidate slot
	StateAwaitingTitle State = "awaiting_title"
	// StateAwaitingContact means the contact prompt is outstanding
	StateAwaitingContact State = "awaiting_contact"
	// StateSlotSelected means a booking is committed and highlighted for reservation
	StateSlotSelected State = "slot_selected"
	// StatePaymentHandoff is the terminal state: control passed to the payment page
	StatePaymentHandoff State = "payment_handoff"
)

// Granularity is the calendar view granularity
type Granularity string

const (
	GranularityMonth Granularity = "month"
	GranularityDay   Granularity = "day"
)

// Action is the raw calendar selection gesture reported by the UI
type Action string

const (
	ActionClick       Action = "click"
	ActionSelect      Action = "select"
	ActionDoubleClick Action = "doubleClick"
)

// IsValid reports whether the action is one the calendar can emit
func (a Action) IsValid() bool {
	return a == ActionClick || a == ActionSelect || a == ActionDoubleClick
}

// PromptKind names the outstanding prompt, if any
type PromptKind string

const (
	PromptNone    PromptKind = ""
	PromptTitle   PromptKind = "title"
	PromptContact PromptKind = "contact"
)

// SlotEvent is a raw slot-selection event from the calendar
type SlotEvent struct {
	Interval domain.Interval
	Action   Action
}

// PromptInput is the outcome of an outstanding prompt: either a value or an
// explicit cancellation. Cancellation is a first-class transition, not an
// error.
type PromptInput struct {
	Value     string
	Cancelled bool
}

// Snapshot is a point-in-time view of one session's flow state
type Snapshot struct {
	SessionID   string
	State       State
	Granularity Granularity
	AnchorDate  time.Time
	Prompt      PromptKind
	Candidate   *domain.Interval // set while a prompt sequence is running
	Selected    *domain.Booking  // set once a booking is committed
	Amount      float64          // set on payment handoff
}

// Handoff carries the computed price into the payment step
type Handoff struct {
	Amount float64
}
