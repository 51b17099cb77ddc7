package flow

import (
	"context"
	"time"

	"github.com/espacohub/StudioBookingService/internal/domain"
)

// Scheduler is the slot scheduler contract used by the flow controller.
// The flow calls the scheduler synchronously; the scheduler never calls back.
type Scheduler interface {
	ValidateSlot(ctx context.Context, candidate domain.Interval) error
	PriceFor(interval domain.Interval) float64
	Commit(ctx context.Context, candidate domain.Interval, title, contact string) (*domain.Booking, error)
}

// TimeProvider supplies the reference clock (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging contract used by the flow controller
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
