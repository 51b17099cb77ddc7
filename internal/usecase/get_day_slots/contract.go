package get_day_slots

import (
	"context"
	"time"

	"github.com/espacohub/StudioBookingService/internal/domain"
)

// BookingRepository is the booking store contract used by the usecase
type BookingRepository interface {
	List(ctx context.Context) ([]*domain.Booking, error)
}

// SlotValidator applies the studio's temporal business rules to a candidate
// interval. Implemented by the scheduler service.
type SlotValidator interface {
	ValidateSlot(ctx context.Context, candidate domain.Interval) error
}

// TimeProvider supplies the reference clock (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging contract used by the usecase
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
