package bookings

import (
	"context"

	"github.com/espacohub/StudioBookingService/internal/domain"
)

// BookingRepository is the booking store contract used by the service
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
}

// Logger is the logging contract used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
