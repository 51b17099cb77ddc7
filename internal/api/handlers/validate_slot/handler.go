package validate_slot

import (
	"errors"
	"net/http"

	"github.com/espacohub/StudioBookingService/internal/api/handlers"
	scheduler "github.com/espacohub/StudioBookingService/internal/service/scheduler"
)

const (
	msgInvalidRequestBody = "corpo de requisição inválido"
	msgInvalidTimestamp   = "formato de data/hora inválido, esperado YYYY-MM-DDTHH:MM"
	msgInvalidInterval    = "intervalo inválido: início deve ser antes do fim"
	msgPastDate           = "Não é possível agendar eventos em datas passadas."
	msgInsufficientLead   = "Você precisa agendar com 1 dia de antecedência."
	msgBlackoutDay        = "Não é possível agendar eventos aos domingos."
	msgSlotOccupied       = "Já existe um evento marcado neste horário."
)

type Handler struct {
	scheduler Scheduler
	logger    Logger
}

func NewHandler(s Scheduler, logger Logger) *Handler {
	return &Handler{
		scheduler: s,
		logger:    logger,
	}
}

// Handle POST /api/v1/slots/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	interval, err := req.ToInterval()
	if err != nil {
		h.logger.Warn("POST /slots/validate - Failed to parse timestamps: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimestamp)
		return
	}

	if err := h.scheduler.ValidateSlot(r.Context(), interval); err != nil {
		reason := scheduler.RejectionReason(err)
		switch {
		case errors.Is(err, scheduler.ErrInvalidInterval):
			handlers.RespondRejection(w, http.StatusBadRequest, msgInvalidInterval, reason)
		case errors.Is(err, scheduler.ErrPastDate):
			handlers.RespondRejection(w, http.StatusUnprocessableEntity, msgPastDate, reason)
		case errors.Is(err, scheduler.ErrInsufficientLeadTime):
			handlers.RespondRejection(w, http.StatusUnprocessableEntity, msgInsufficientLead, reason)
		case errors.Is(err, scheduler.ErrBlackoutDay):
			handlers.RespondRejection(w, http.StatusUnprocessableEntity, msgBlackoutDay, reason)
		case errors.Is(err, scheduler.ErrSlotOccupied):
			handlers.RespondRejection(w, http.StatusConflict, msgSlotOccupied, reason)
		default:
			h.logger.Error("POST /slots/validate - Validation error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ValidateSlotResponse{Valid: true})
}
