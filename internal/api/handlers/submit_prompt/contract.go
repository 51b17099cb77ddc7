package submit_prompt

import (
	"context"

	"github.com/espacohub/StudioBookingService/internal/flow"
)

type FlowManager interface {
	SubmitPrompt(ctx context.Context, sessionID string, in flow.PromptInput) (flow.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
