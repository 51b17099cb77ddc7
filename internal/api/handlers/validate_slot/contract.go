package validate_slot

import (
	"context"

	"github.com/espacohub/StudioBookingService/internal/domain"
)

type Scheduler interface {
	ValidateSlot(ctx context.Context, candidate domain.Interval) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
