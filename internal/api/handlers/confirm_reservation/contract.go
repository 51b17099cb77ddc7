package confirm_reservation

import (
	"context"

	"github.com/espacohub/StudioBookingService/internal/flow"
)

type FlowManager interface {
	Confirm(ctx context.Context, sessionID string) (*flow.Handoff, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
