package submit_prompt

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
	msgNoPromptPending    = "nenhum diálogo aberto nesta sessão"
	msgEmptyTitle         = "Você precisa digitar algo!"
	msgInvalidContact     = "Por favor, digite um e-mail válido!"
	msgPastDate           = "Não é possível agendar eventos em datas passadas."
	msgInsufficientLead   = "Você precisa agendar com 1 dia de antecedência."
	msgBlackoutDay        = "Não é possível agendar eventos aos domingos."
	msgSlotOccupied       = "Já existe um evento marcado neste horário."
	noticeBookingCreated  = `Evento adicionado. Clique em "Reservar" para ir ao pagamento.`
)

// PromptRequest HTTP request model: the outcome of the open prompt
type PromptRequest struct {
	Value     string `json:"value,omitempty"`
	Cancelled bool   `json:"cancelled,omitempty"`
}

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

// Handle POST /api/v1/flow/prompt
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "sessão não informada")
		return
	}

	var req PromptRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /flow/prompt - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snap, err := h.flow.SubmitPrompt(r.Context(), sessionID, flow.PromptInput{
		Value:     req.Value,
		Cancelled: req.Cancelled,
	})
	if err != nil {
		reason := scheduler.RejectionReason(err)
		switch {
		case errors.Is(err, flow.ErrNoPromptPending):
			handlers.RespondError(w, http.StatusConflict, msgNoPromptPending)
		case errors.Is(err, flow.ErrEmptyTitle), errors.Is(err, scheduler.ErrInvalidTitle):
			handlers.RespondRejection(w, http.StatusUnprocessableEntity, msgEmptyTitle, "invalid_title")
		case errors.Is(err, scheduler.ErrInvalidContact):
			handlers.RespondRejection(w, http.StatusUnprocessableEntity, msgInvalidContact, reason)
		case errors.Is(err, scheduler.ErrPastDate):
			handlers.RespondRejection(w, http.StatusUnprocessableEntity, msgPastDate, reason)
		case errors.Is(err, scheduler.ErrInsufficientLeadTime):
			handlers.RespondRejection(w, http.StatusUnprocessableEntity, msgInsufficientLead, reason)
		case errors.Is(err, scheduler.ErrBlackoutDay):
			handlers.RespondRejection(w, http.StatusUnprocessableEntity, msgBlackoutDay, reason)
		case errors.Is(err, scheduler.ErrSlotOccupied):
			handlers.RespondRejection(w, http.StatusConflict, msgSlotOccupied, reason)
		default:
			h.logger.Error("POST /flow/prompt - Failed to process prompt: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := handlers.FromFlowSnapshot(snap)
	if snap.State == flow.StateSlotSelected {
		response.Notice = noticeBookingCreated
	}

	h.logger.Info("POST /flow/prompt - Session %s now in %s", sessionID, snap.State)
	handlers.RespondJSON(w, http.StatusOK, response)
}
