package flow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/espacohub/StudioBookingService/internal/domain"
	storage "github.com/espacohub/StudioBookingService/internal/infra/storage/booking"
	"github.com/espacohub/StudioBookingService/internal/service/scheduler"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Monday, 2024-06-10 09:00 local time
var refNow = time.Date(2024, time.June, 10, 9, 0, 0, 0, time.Local)

func slot(day, startHour, startMin, endHour, endMin int) domain.Interval {
	d := time.Date(2024, time.June, day, 0, 0, 0, 0, time.Local)
	return domain.Interval{
		Start: d.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute),
		End:   d.Add(time.Duration(endHour)*time.Hour + time.Duration(endMin)*time.Minute),
	}
}

func newTestManager() (*Manager, *storage.Repository) {
	clock := &fixedClock{now: refNow}
	repo := storage.NewRepository()
	sched := scheduler.NewService(repo, scheduler.DefaultRules(), nil, nopLogger{}).
		WithTimeProvider(clock)
	mgr := NewManager(sched, nopLogger{}).WithTimeProvider(clock)
	return mgr, repo
}

func drillDownToDay(t *testing.T, mgr *Manager, sessionID string, iv domain.Interval) {
	t.Helper()
	snap, err := mgr.SelectSlot(context.Background(), sessionID, SlotEvent{Interval: iv, Action: ActionClick})
	require.NoError(t, err)
	require.Equal(t, GranularityDay, snap.Granularity)
}

func TestSelectSlot_MonthClickDrillsDown(t *testing.T) {
	mgr, _ := newTestManager()

	snap := mgr.Snapshot("s1")
	assert.Equal(t, StateBrowsing, snap.State)
	assert.Equal(t, GranularityMonth, snap.Granularity)

	snap, err := mgr.SelectSlot(context.Background(), "s1", SlotEvent{
		Interval: slot(12, 10, 0, 11, 0),
		Action:   ActionClick,
	})
	require.NoError(t, err)

	assert.Equal(t, StateBrowsing, snap.State)
	assert.Equal(t, GranularityDay, snap.Granularity)
	assert.Equal(t, time.Date(2024, time.June, 12, 0, 0, 0, 0, time.Local), snap.AnchorDate)
	assert.Nil(t, snap.Candidate, "drill-down must not start a booking")
}

func TestSelectSlot_MonthDoubleClickSkipsToPrompt(t *testing.T) {
	mgr, _ := newTestManager()

	snap, err := mgr.SelectSlot(context.Background(), "s1", SlotEvent{
		Interval: slot(12, 10, 0, 11, 0),
		Action:   ActionDoubleClick,
	})
	require.NoError(t, err)

	assert.Equal(t, StateAwaitingTitle, snap.State)
	assert.Equal(t, PromptTitle, snap.Prompt)
	require.NotNil(t, snap.Candidate)
	assert.True(t, snap.Candidate.Start.Equal(slot(12, 10, 0, 11, 0).Start))
}

func TestSelectSlot_RejectionLeavesSessionUntouched(t *testing.T) {
	mgr, _ := newTestManager()

	// 2024-06-16 is a Sunday
	snap, err := mgr.SelectSlot(context.Background(), "s1", SlotEvent{
		Interval: slot(16, 10, 0, 11, 0),
		Action:   ActionClick,
	})
	assert.ErrorIs(t, err, scheduler.ErrBlackoutDay)

	assert.Equal(t, StateBrowsing, snap.State)
	assert.Equal(t, GranularityMonth, snap.Granularity, "rejected selection must not drill down")
	assert.Nil(t, snap.Candidate)
}

func TestSelectSlot_InvalidEvent(t *testing.T) {
	mgr, _ := newTestManager()

	_, err := mgr.SelectSlot(context.Background(), "s1", SlotEvent{
		Interval: slot(12, 10, 0, 11, 0),
		Action:   Action("hover"),
	})
	assert.ErrorIs(t, err, ErrInvalidEvent)

	_, err = mgr.SelectSlot(context.Background(), "s1", SlotEvent{
		Interval: slot(12, 11, 0, 10, 0),
		Action:   ActionClick,
	})
	assert.ErrorIs(t, err, ErrInvalidEvent)
}

func TestFullFlow_HappyPath(t *testing.T) {
	mgr, repo := newTestManager()
	ctx := context.Background()
	iv := slot(12, 10, 0, 11, 30)

	drillDownToDay(t, mgr, "s1", iv)

	snap, err := mgr.SelectSlot(ctx, "s1", SlotEvent{Interval: iv, Action: ActionSelect})
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingTitle, snap.State)

	snap, err = mgr.SubmitPrompt(ctx, "s1", PromptInput{Value: "Gravação de podcast"})
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingContact, snap.State)
	assert.Equal(t, PromptContact, snap.Prompt)

	snap, err = mgr.SubmitPrompt(ctx, "s1", PromptInput{Value: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, StateSlotSelected, snap.State)
	require.NotNil(t, snap.Selected)
	assert.Equal(t, "Gravação de podcast", snap.Selected.Title)
	assert.Equal(t, 120.0, snap.Selected.Price)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	handoff, err := mgr.Confirm(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 120.0, handoff.Amount)

	snap = mgr.Snapshot("s1")
	assert.Equal(t, StatePaymentHandoff, snap.State)

	// Terminal state: nothing else is accepted
	_, err = mgr.Confirm(ctx, "s1")
	assert.ErrorIs(t, err, ErrFlowCompleted)
	_, err = mgr.SelectSlot(ctx, "s1", SlotEvent{Interval: slot(13, 10, 0, 11, 0), Action: ActionClick})
	assert.ErrorIs(t, err, ErrFlowCompleted)
}

func TestSubmitPrompt_CancelTitle(t *testing.T) {
	mgr, repo := newTestManager()
	ctx := context.Background()
	iv := slot(12, 10, 0, 11, 0)

	drillDownToDay(t, mgr, "s1", iv)
	_, err := mgr.SelectSlot(ctx, "s1", SlotEvent{Interval: iv, Action: ActionSelect})
	require.NoError(t, err)

	snap, err := mgr.SubmitPrompt(ctx, "s1", PromptInput{Cancelled: true})
	require.NoError(t, err)

	assert.Equal(t, StateBrowsing, snap.State)
	assert.Equal(t, GranularityDay, snap.Granularity)
	assert.Nil(t, snap.Candidate)
	assert.Nil(t, snap.Selected)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "cancellation must not create bookings")
}

func TestSubmitPrompt_CancelContact(t *testing.T) {
	mgr, repo := newTestManager()
	ctx := context.Background()
	iv := slot(12, 10, 0, 11, 0)

	drillDownToDay(t, mgr, "s1", iv)
	_, err := mgr.SelectSlot(ctx, "s1", SlotEvent{Interval: iv, Action: ActionSelect})
	require.NoError(t, err)
	_, err = mgr.SubmitPrompt(ctx, "s1", PromptInput{Value: "Podcast"})
	require.NoError(t, err)

	snap, err := mgr.SubmitPrompt(ctx, "s1", PromptInput{Cancelled: true})
	require.NoError(t, err)

	assert.Equal(t, StateBrowsing, snap.State)
	assert.Nil(t, snap.Candidate)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	// The discarded title must not leak into a later booking
	_, err = mgr.SelectSlot(ctx, "s1", SlotEvent{Interval: iv, Action: ActionSelect})
	require.NoError(t, err)
	_, err = mgr.SubmitPrompt(ctx, "s1", PromptInput{Value: "Ensaios"})
	require.NoError(t, err)
	snap, err = mgr.SubmitPrompt(ctx, "s1", PromptInput{Value: "bia@example.com"})
	require.NoError(t, err)
	require.NotNil(t, snap.Selected)
	assert.Equal(t, "Ensaios", snap.Selected.Title)
}

func TestSubmitPrompt_EmptyTitleKeepsPromptOpen(t *testing.T) {
	mgr, _ := newTestManager()
	ctx := context.Background()
	iv := slot(12, 10, 0, 11, 0)

	drillDownToDay(t, mgr, "s1", iv)
	_, err := mgr.SelectSlot(ctx, "s1", SlotEvent{Interval: iv, Action: ActionSelect})
	require.NoError(t, err)

	snap, err := mgr.SubmitPrompt(ctx, "s1", PromptInput{Value: "   "})
	assert.ErrorIs(t, err, ErrEmptyTitle)
	assert.Equal(t, StateAwaitingTitle, snap.State, "empty title keeps the prompt open")

	// A proper answer still works afterwards
	snap, err = mgr.SubmitPrompt(ctx, "s1", PromptInput{Value: "Podcast"})
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingContact, snap.State)
}

func TestSelectSlot_RejectedWhilePromptPending(t *testing.T) {
	mgr, _ := newTestManager()
	ctx := context.Background()
	iv := slot(12, 10, 0, 11, 0)

	drillDownToDay(t, mgr, "s1", iv)
	_, err := mgr.SelectSlot(ctx, "s1", SlotEvent{Interval: iv, Action: ActionSelect})
	require.NoError(t, err)

	_, err = mgr.SelectSlot(ctx, "s1", SlotEvent{Interval: slot(13, 10, 0, 11, 0), Action: ActionSelect})
	assert.ErrorIs(t, err, ErrPromptPending)
}

func TestSubmitPrompt_NoPromptPending(t *testing.T) {
	mgr, _ := newTestManager()

	_, err := mgr.SubmitPrompt(context.Background(), "s1", PromptInput{Value: "Podcast"})
	assert.ErrorIs(t, err, ErrNoPromptPending)
}

func TestConfirm_NothingSelected(t *testing.T) {
	mgr, _ := newTestManager()

	_, err := mgr.Confirm(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrNoSlotSelected)

	snap := mgr.Snapshot("s1")
	assert.Equal(t, StateBrowsing, snap.State, "failed confirm must not transition")
}

func TestSessionsAreIndependent(t *testing.T) {
	mgr, _ := newTestManager()
	ctx := context.Background()
	iv := slot(12, 10, 0, 11, 0)

	drillDownToDay(t, mgr, "s1", iv)
	_, err := mgr.SelectSlot(ctx, "s1", SlotEvent{Interval: iv, Action: ActionSelect})
	require.NoError(t, err)

	snap := mgr.Snapshot("s2")
	assert.Equal(t, StateBrowsing, snap.State)
	assert.Equal(t, GranularityMonth, snap.Granularity)
}

type mockScheduler struct {
	mock.Mock
}

func (m *mockScheduler) ValidateSlot(ctx context.Context, candidate domain.Interval) error {
	args := m.Called(ctx, candidate)
	return args.Error(0)
}

func (m *mockScheduler) PriceFor(interval domain.Interval) float64 {
	args := m.Called(interval)
	return args.Get(0).(float64)
}

func (m *mockScheduler) Commit(ctx context.Context, candidate domain.Interval, title, contact string) (*domain.Booking, error) {
	args := m.Called(ctx, candidate, title, contact)
	if b := args.Get(0); b != nil {
		return b.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestSubmitPrompt_CommitFailureFallsBackToDayView(t *testing.T) {
	ctx := context.Background()
	iv := slot(12, 10, 0, 11, 0)

	sched := &mockScheduler{}
	sched.On("ValidateSlot", mock.Anything, mock.Anything).Return(nil)
	sched.On("Commit", mock.Anything, iv, "Podcast", "ana@example.com").
		Return(nil, scheduler.ErrSlotOccupied)

	mgr := NewManager(sched, nopLogger{}).WithTimeProvider(&fixedClock{now: refNow})

	drillDownToDay(t, mgr, "s1", iv)
	_, err := mgr.SelectSlot(ctx, "s1", SlotEvent{Interval: iv, Action: ActionSelect})
	require.NoError(t, err)
	_, err = mgr.SubmitPrompt(ctx, "s1", PromptInput{Value: "Podcast"})
	require.NoError(t, err)

	snap, err := mgr.SubmitPrompt(ctx, "s1", PromptInput{Value: "ana@example.com"})
	assert.ErrorIs(t, err, scheduler.ErrSlotOccupied)

	assert.Equal(t, StateBrowsing, snap.State)
	assert.Equal(t, GranularityDay, snap.Granularity)
	assert.Nil(t, snap.Selected)

	sched.AssertExpectations(t)
}
