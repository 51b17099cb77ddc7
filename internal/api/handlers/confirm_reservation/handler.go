package confirm_reservation

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/espacohub/StudioBookingService/internal/api/handlers"
	"github.com/espacohub/StudioBookingService/internal/api/middleware"
	"github.com/espacohub/StudioBookingService/internal/flow"
)

const (
	msgNoSlotSelected = "Você deve selecionar uma data e horário para reservar o espaço."
	msgFlowCompleted  = "reserva já encaminhada para pagamento"
)

// reserveParam carries the reservation amount to the payment page
const reserveParam = "valorReserva"

// ConfirmResponse HTTP response model: the payment handoff
type ConfirmResponse struct {
	Amount     float64 `json:"amount"`
	PaymentURL string  `json:"paymentUrl"`
}

type Handler struct {
	flow        FlowManager
	paymentPath string
	logger      Logger
}

func NewHandler(flow FlowManager, paymentPath string, logger Logger) *Handler {
	return &Handler{
		flow:        flow,
		paymentPath: paymentPath,
		logger:      logger,
	}
}

// Handle POST /api/v1/flow/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "sessão não informada")
		return
	}

	handoff, err := h.flow.Confirm(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, flow.ErrNoSlotSelected):
			h.logger.Warn("POST /flow/confirm - No slot selected: session=%s", sessionID)
			handlers.RespondRejection(w, http.StatusConflict, msgNoSlotSelected, "no_slot_selected")
		case errors.Is(err, flow.ErrFlowCompleted):
			handlers.RespondError(w, http.StatusConflict, msgFlowCompleted)
		default:
			h.logger.Error("POST /flow/confirm - Failed to confirm: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	query := url.Values{}
	query.Set(reserveParam, strconv.FormatFloat(handoff.Amount, 'f', -1, 64))
	paymentURL := fmt.Sprintf("%s?%s", h.paymentPath, query.Encode())

	h.logger.Info("POST /flow/confirm - Session %s handed off, amount=%.2f", sessionID, handoff.Amount)
	handlers.RespondJSON(w, http.StatusOK, ConfirmResponse{
		Amount:     handoff.Amount,
		PaymentURL: paymentURL,
	})
}
