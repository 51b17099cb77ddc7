package bookings

import (
	"context"
	"fmt"

	"github.com/espacohub/StudioBookingService/internal/domain"
)

// Seed describes an operator-provided booking loaded at startup, typically a
// "Reservado" placeholder that blocks the calendar.
type Seed struct {
	Title    string
	Interval domain.Interval
}

// Service exposes read access to the booking set and loads seed bookings.
type Service struct {
	repo   BookingRepository
	logger Logger
}

// NewService creates a booking service over the given repository.
func NewService(repo BookingRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List returns a snapshot of all bookings, placeholders included.
func (s *Service) List(ctx context.Context) ([]*domain.Booking, error) {
	bookings, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return bookings, nil
}

// LoadSeeds inserts operator-provided bookings into the store.
// Seeds bypass the scheduler's lead-time and blackout rules (they are
// operator data, not tenant requests) but still go through the repository,
// so the overlap invariant holds for them too. Price is zero: placeholders
// are not billed.
func (s *Service) LoadSeeds(ctx context.Context, seeds []Seed) error {
	for i, seed := range seeds {
		if !seed.Interval.IsValid() {
			return fmt.Errorf("%w: seed %d - interval must satisfy start < end", ErrInvalidSeed, i)
		}

		title := seed.Title
		if title == "" {
			title = domain.PlaceholderTitle
		}

		created, err := s.repo.Create(ctx, &domain.Booking{
			Interval: seed.Interval,
			Title:    title,
		})
		if err != nil {
			return fmt.Errorf("%w: seed %d - store booking: %v", ErrInvalidSeed, i, err)
		}

		s.logger.Info("LoadSeeds: seeded booking id=%s title=%q start=%s end=%s",
			created.ID, created.Title,
			created.Interval.Start.Format(domain.DateTimeFormat),
			created.Interval.End.Format(domain.DateTimeFormat))
	}

	return nil
}
