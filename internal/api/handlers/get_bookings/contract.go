package get_bookings

import (
	"context"

	"github.com/espacohub/StudioBookingService/internal/domain"
)

type BookingsService interface {
	List(ctx context.Context) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
