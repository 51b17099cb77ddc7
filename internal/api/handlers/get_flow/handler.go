package get_flow

import (
	"net/http"

	"github.com/espacohub/StudioBookingService/internal/api/handlers"
	"github.com/espacohub/StudioBookingService/internal/api/middleware"
)

type Handler struct {
	flow   FlowManager
	logger Logger
}

func NewHandler(flow FlowManager, logger Logger) *Handler {
	return &Handler{
		flow:   flow,
		logger: logger,
	}
}

// Handle GET /api/v1/flow
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "sessão não informada")
		return
	}

	snap := h.flow.Snapshot(sessionID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromFlowSnapshot(snap))
}
