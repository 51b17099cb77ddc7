package scheduler

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	storage "github.com/espacohub/StudioBookingService/internal/infra/storage/booking"

	"github.com/espacohub/StudioBookingService/internal/domain"
)

// Rules holds the configurable temporal business rules for the studio.
type Rules struct {
	HalfHourRate     float64        // currency units per started half hour
	MinLeadTime      time.Duration  // minimum gap between "now" and slot start
	BlackoutWeekdays []time.Weekday // weekdays on which no slot may start
}

// DefaultRules returns the rules the studio runs with out of the box.
func DefaultRules() Rules {
	return Rules{
		HalfHourRate:     domain.DefaultHalfHourRate,
		MinLeadTime:      time.Duration(domain.DefaultMinLeadTimeHours) * time.Hour,
		BlackoutWeekdays: domain.DefaultBlackoutWeekdays,
	}
}

// Service is the slot scheduler: it owns validation of candidate intervals,
// pricing, and the single mutation entry point for the booking set.
type Service struct {
	repo         BookingRepository
	rules        Rules
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates a scheduler over the given booking repository.
// metrics may be nil when collection is disabled.
func NewService(repo BookingRepository, rules Rules, metrics Metrics, logger Logger) *Service {
	return &Service{
		repo:         repo,
		rules:        rules,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider swaps the reference clock. Used by tests.
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// ValidateSlot checks a candidate interval against the temporal business
// rules and the committed booking set. Checks run in a fixed order and
// short-circuit on the first failure so the user always sees the most
// fundamental problem first. Pure: no state is touched.
func (s *Service) ValidateSlot(ctx context.Context, candidate domain.Interval) error {
	now := s.timeProvider.Now()
	return s.validateSlotAt(ctx, candidate, now)
}

func (s *Service) validateSlotAt(ctx context.Context, candidate domain.Interval, now time.Time) error {
	if !candidate.IsValid() {
		return s.reject(ErrInvalidInterval)
	}

	// 1. No slots on past calendar days
	if candidate.Start.Before(domain.StartOfDay(now)) {
		return s.reject(ErrPastDate)
	}

	// 2. Minimum lead time between request and slot start
	if candidate.Start.Before(now.Add(s.rules.MinLeadTime)) {
		return s.reject(ErrInsufficientLeadTime)
	}

	// 3. Blackout weekdays
	weekday := candidate.Start.Weekday()
	for _, blackout := range s.rules.BlackoutWeekdays {
		if weekday == blackout {
			return s.reject(ErrBlackoutDay)
		}
	}

	// 4. No overlap with any existing booking
	bookings, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("ValidateSlot: failed to list bookings: %v", err)
		return fmt.Errorf("%w: ValidateSlot - list bookings: %v", ErrInternal, err)
	}
	for _, b := range bookings {
		if candidate.Overlaps(b.Interval) {
			return s.reject(ErrSlotOccupied)
		}
	}

	return nil
}

// PriceFor computes the price of an interval: the duration in minutes is
// rounded up to the next full half hour and multiplied by the half-hour
// rate. Deterministic and pure; malformed intervals price at zero.
func (s *Service) PriceFor(interval domain.Interval) float64 {
	if !interval.IsValid() {
		return 0
	}
	halfHours := math.Ceil(float64(interval.Minutes()) / float64(domain.HalfHourMinutes))
	return halfHours * s.rules.HalfHourRate
}

// Commit validates a candidate interval together with the tenant inputs and,
// on success, constructs the booking and inserts it into the set. This is
// the only operation that mutates the booking set. Validation re-runs
// against a fresh clock reading: a slot that passed ValidateSlot may have
// expired while the user was typing. All-or-nothing: any rejection leaves
// the set untouched.
func (s *Service) Commit(ctx context.Context, candidate domain.Interval, title, contact string) (*domain.Booking, error) {
	now := s.timeProvider.Now()

	if err := s.validateSlotAt(ctx, candidate, now); err != nil {
		s.logger.Warn("Commit: slot validation failed: %v", err)
		return nil, err
	}

	if err := validateTitle(title); err != nil {
		s.logger.Warn("Commit: title validation failed: %v", err)
		return nil, s.reject(err)
	}
	if err := validateContact(contact); err != nil {
		s.logger.Warn("Commit: contact validation failed: %v", err)
		return nil, s.reject(err)
	}

	booking := &domain.Booking{
		Interval:  candidate,
		Title:     title,
		Contact:   contact,
		Price:     s.PriceFor(candidate),
		CreatedAt: now,
	}

	created, err := s.repo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, storage.ErrSlotConflict) {
			// Lost the race against a concurrent commit
			s.logger.Warn("Commit: slot taken during commit: %v", err)
			return nil, s.reject(ErrSlotOccupied)
		}
		s.logger.Error("Commit: failed to store booking: %v", err)
		return nil, fmt.Errorf("%w: Commit - store booking: %v", ErrInternal, err)
	}

	if s.metrics != nil {
		s.metrics.BookingCreated()
	}
	s.logger.Info("Commit: booking created id=%s title=%q start=%s end=%s price=%.2f",
		created.ID, created.Title,
		created.Interval.Start.Format(domain.DateTimeFormat),
		created.Interval.End.Format(domain.DateTimeFormat),
		created.Price)

	return created, nil
}

// Bookings returns a snapshot of the committed booking set.
func (s *Service) Bookings(ctx context.Context) ([]*domain.Booking, error) {
	bookings, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Bookings: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: Bookings - list bookings: %v", ErrInternal, err)
	}
	return bookings, nil
}

func (s *Service) reject(err error) error {
	if s.metrics != nil {
		if reason := RejectionReason(err); reason != "" {
			s.metrics.SlotRejected(reason)
		}
	}
	return err
}
