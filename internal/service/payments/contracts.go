package payments

import "time"

// TimeProvider supplies the reference clock (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging contract used by the service
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
