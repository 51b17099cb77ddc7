package scheduler

import (
	"context"
	"time"

	"github.com/espacohub/StudioBookingService/internal/domain"
)

// BookingRepository is the booking store contract used by the scheduler
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
}

// Metrics is the domain metrics contract. A nil Metrics disables recording.
type Metrics interface {
	BookingCreated()
	SlotRejected(reason string)
}

// TimeProvider supplies the reference clock (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging contract used by the scheduler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock
type RealTimeProvider struct{}

// Now returns the current wall-clock time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
