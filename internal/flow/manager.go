package flow

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/espacohub/StudioBookingService/internal/domain"
)

// session is the mutable flow state for one tenant session.
// Every transition runs under the session lock, so at most one event is
// processed at a time and a suspended prompt blocks further transitions.
type session struct {
	mu sync.Mutex

	id          string
	state       State
	granularity Granularity
	anchor      time.Time

	candidate domain.Interval
	title     string
	selected  *domain.Booking
	amount    float64
}

// Manager owns the flow sessions and drives their state machines.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*session

	scheduler    Scheduler
	timeProvider TimeProvider
	logger       Logger
}

// NewManager creates a flow manager over the given scheduler.
func NewManager(scheduler Scheduler, logger Logger) *Manager {
	return &Manager{
		sessions:     make(map[string]*session),
		scheduler:    scheduler,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider swaps the reference clock. Used by tests.
func (m *Manager) WithTimeProvider(tp TimeProvider) *Manager {
	m.timeProvider = tp
	return m
}

// session returns the session for the given ID, creating it in the initial
// state (month view anchored at today) on first use.
func (m *Manager) session(sessionID string) *session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		s = &session{
			id:          sessionID,
			state:       StateBrowsing,
			granularity: GranularityMonth,
			anchor:      domain.StartOfDay(m.timeProvider.Now()),
		}
		m.sessions[sessionID] = s
		m.logger.Info("Flow: session %s created in %s/%s", sessionID, s.state, s.granularity)
	}
	return s
}

// Snapshot returns the current flow state of a session.
func (m *Manager) Snapshot(sessionID string) Snapshot {
	s := m.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// SelectSlot handles a raw slot-selection event from the calendar.
// The candidate interval is validated before anything else; a validation
// failure leaves the session exactly where it was. A valid selection in the
// month view drills down to the day view without starting a booking; in the
// day view it opens the title prompt.
func (m *Manager) SelectSlot(ctx context.Context, sessionID string, ev SlotEvent) (Snapshot, error) {
	s := m.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if !ev.Action.IsValid() || !ev.Interval.IsValid() {
		return s.snapshot(), ErrInvalidEvent
	}

	switch s.state {
	case StateAwaitingTitle, StateAwaitingContact:
		return s.snapshot(), ErrPromptPending
	case StatePaymentHandoff:
		return s.snapshot(), ErrFlowCompleted
	}

	if err := m.scheduler.ValidateSlot(ctx, ev.Interval); err != nil {
		m.logger.Warn("Flow: session %s slot rejected: %v", sessionID, err)
		return s.snapshot(), err
	}

	// A single click or drag-select in the month view is a drill-down, not a
	// booking attempt. A double click skips straight to the prompts.
	if s.granularity == GranularityMonth && (ev.Action == ActionClick || ev.Action == ActionSelect) {
		s.granularity = GranularityDay
		s.anchor = domain.StartOfDay(ev.Interval.Start)
		m.logger.Info("Flow: session %s drilled down to %s", sessionID, s.anchor.Format(domain.DateFormat))
		return s.snapshot(), nil
	}

	s.state = StateAwaitingTitle
	s.candidate = ev.Interval
	s.title = ""
	m.logger.Info("Flow: session %s awaiting title for slot %s-%s", sessionID,
		ev.Interval.Start.Format(domain.DateTimeFormat), ev.Interval.End.Format(domain.DateTimeFormat))
	return s.snapshot(), nil
}

// SubmitPrompt delivers the outcome of the outstanding prompt.
// Cancelling either prompt deterministically returns the session to the day
// view with the candidate discarded and the booking set untouched. Answering
// the contact prompt commits the booking; a commit rejection (the slot may
// have expired or been taken meanwhile) also falls back to the day view.
func (m *Manager) SubmitPrompt(ctx context.Context, sessionID string, in PromptInput) (Snapshot, error) {
	s := m.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateAwaitingTitle:
		if in.Cancelled {
			m.logger.Info("Flow: session %s cancelled title prompt", sessionID)
			s.backToDayView()
			return s.snapshot(), nil
		}
		if strings.TrimSpace(in.Value) == "" {
			// Prompt stays open, mirroring the calendar UI's input validator
			return s.snapshot(), ErrEmptyTitle
		}
		s.title = in.Value
		s.state = StateAwaitingContact
		return s.snapshot(), nil

	case StateAwaitingContact:
		if in.Cancelled {
			m.logger.Info("Flow: session %s cancelled contact prompt", sessionID)
			s.backToDayView()
			return s.snapshot(), nil
		}

		booking, err := m.scheduler.Commit(ctx, s.candidate, s.title, in.Value)
		if err != nil {
			m.logger.Warn("Flow: session %s commit rejected: %v", sessionID, err)
			s.backToDayView()
			return s.snapshot(), err
		}

		s.state = StateSlotSelected
		s.selected = booking
		s.candidate = domain.Interval{}
		s.title = ""
		m.logger.Info("Flow: session %s selected booking id=%s price=%.2f", sessionID, booking.ID, booking.Price)
		return s.snapshot(), nil

	default:
		return s.snapshot(), ErrNoPromptPending
	}
}

// Confirm finalizes the reservation: the session moves to the terminal
// payment handoff carrying the committed booking's price. Confirming with
// nothing selected fails without a transition.
func (m *Manager) Confirm(ctx context.Context, sessionID string) (*Handoff, error) {
	s := m.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StatePaymentHandoff {
		return nil, ErrFlowCompleted
	}
	if s.state != StateSlotSelected || s.selected == nil {
		return nil, ErrNoSlotSelected
	}

	s.state = StatePaymentHandoff
	s.amount = s.selected.Price
	m.logger.Info("Flow: session %s handed off to payment, amount=%.2f", sessionID, s.amount)

	return &Handoff{Amount: s.amount}, nil
}

// backToDayView discards the candidate and returns to browsing the day the
// candidate was on. Committed state is never touched here.
func (s *session) backToDayView() {
	if !s.candidate.Start.IsZero() {
		s.anchor = domain.StartOfDay(s.candidate.Start)
	}
	s.state = StateBrowsing
	s.granularity = GranularityDay
	s.candidate = domain.Interval{}
	s.title = ""
}

// snapshot must be called with the session lock held
func (s *session) snapshot() Snapshot {
	snap := Snapshot{
		SessionID:   s.id,
		State:       s.state,
		Granularity: s.granularity,
		AnchorDate:  s.anchor,
		Amount:      s.amount,
	}

	switch s.state {
	case StateAwaitingTitle:
		snap.Prompt = PromptTitle
	case StateAwaitingContact:
		snap.Prompt = PromptContact
	}

	if s.state == StateAwaitingTitle || s.state == StateAwaitingContact {
		candidate := s.candidate
		snap.Candidate = &candidate
	}
	if s.selected != nil {
		selected := *s.selected
		snap.Selected = &selected
	}

	return snap
}
