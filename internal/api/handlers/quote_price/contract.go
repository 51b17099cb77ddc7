package quote_price

import (
	"github.com/espacohub/StudioBookingService/internal/domain"
)

type Scheduler interface {
	PriceFor(interval domain.Interval) float64
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
