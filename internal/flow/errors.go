package flow

import "errors"

var (
	// ErrPromptPending is returned when a slot selection arrives while a prompt is outstanding
	ErrPromptPending = errors.New("flow: a prompt is pending, answer or cancel it first")

	// ErrNoPromptPending is returned when a prompt answer arrives with no prompt outstanding
	ErrNoPromptPending = errors.New("flow: no prompt is pending")

	// ErrEmptyTitle is returned when the title prompt is answered with blank text
	ErrEmptyTitle = errors.New("flow: event title must not be empty")

	// ErrNoSlotSelected is returned when the reservation is confirmed with no booking selected
	ErrNoSlotSelected = errors.New("flow: no slot selected")

	// ErrFlowCompleted is returned for events arriving after the payment handoff
	ErrFlowCompleted = errors.New("flow: booking flow already completed")

	// ErrInvalidEvent is returned for malformed slot-selection events
	ErrInvalidEvent = errors.New("flow: invalid slot event")
)
