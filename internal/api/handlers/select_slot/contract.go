package select_slot

import (
	"context"

	"github.com/espacohub/StudioBookingService/internal/flow"
)

type FlowManager interface {
	SelectSlot(ctx context.Context, sessionID string, ev flow.SlotEvent) (flow.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
