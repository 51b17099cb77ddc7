package select_slot

import (
	"errors"
	"net/http"

	"github.com/espacohub/StudioBookingService/internal/api/handlers"
	"github.com/espacohub/StudioBookingService/internal/api/middleware"
	"github.com/espacohub/StudioBookingService/internal/flow"
	scheduler "github.com/espacohub/StudioBookingService/internal/service/scheduler"
)

const (
	msgInvalidRequestBody = "corpo de requisição inválido"
	msgInvalidTimestamp   = "formato de data/hora inválido, esperado YYYY-MM-DDTHH:MM"
	msgInvalidEvent       = "evento de seleção inválido"
	msgPromptPending      = "responda ou cancele o diálogo aberto antes de continuar"
	msgFlowCompleted      = "reserva já encaminhada para pagamento"
	msgPastDate           = "Não é possível agendar eventos em datas passadas."
	msgInsufficientLead   = "Você precisa agendar com 1 dia de antecedência."
	msgBlackoutDay        = "Não é possível agendar eventos aos domingos."
	msgSlotOccupied       = "Já existe um evento marcado neste horário."
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

// Handle POST /api/v1/flow/select
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "sessão não informada")
		return
	}

	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /flow/select - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ev, err := req.ToSlotEvent()
	if err != nil {
		h.logger.Warn("POST /flow/select - Failed to parse timestamps: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimestamp)
		return
	}

	snap, err := h.flow.SelectSlot(r.Context(), sessionID, ev)
	if err != nil {
		reason := scheduler.RejectionReason(err)
		switch {
		case errors.Is(err, flow.ErrInvalidEvent):
			handlers.RespondBadRequest(w, msgInvalidEvent)
		case errors.Is(err, flow.ErrPromptPending):
			handlers.RespondError(w, http.StatusConflict, msgPromptPending)
		case errors.Is(err, flow.ErrFlowCompleted):
			handlers.RespondError(w, http.StatusConflict, msgFlowCompleted)
		case errors.Is(err, scheduler.ErrInvalidInterval):
			handlers.RespondRejection(w, http.StatusBadRequest, msgInvalidEvent, reason)
		case errors.Is(err, scheduler.ErrPastDate):
			handlers.RespondRejection(w, http.StatusUnprocessableEntity, msgPastDate, reason)
		case errors.Is(err, scheduler.ErrInsufficientLeadTime):
			handlers.RespondRejection(w, http.StatusUnprocessableEntity, msgInsufficientLead, reason)
		case errors.Is(err, scheduler.ErrBlackoutDay):
			handlers.RespondRejection(w, http.StatusUnprocessableEntity, msgBlackoutDay, reason)
		case errors.Is(err, scheduler.ErrSlotOccupied):
			handlers.RespondRejection(w, http.StatusConflict, msgSlotOccupied, reason)
		default:
			h.logger.Error("POST /flow/select - Failed to process event: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /flow/select - Session %s now in %s", sessionID, snap.State)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromFlowSnapshot(snap))
}
