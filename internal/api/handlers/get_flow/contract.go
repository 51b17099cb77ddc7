package get_flow

import (
	"github.com/espacohub/StudioBookingService/internal/flow"
)

type FlowManager interface {
	Snapshot(sessionID string) flow.Snapshot
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
