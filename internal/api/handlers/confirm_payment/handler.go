package confirm_payment

import (
	"errors"
	"net/http"

	"github.com/espacohub/StudioBookingService/internal/api/handlers"
	"github.com/espacohub/StudioBookingService/internal/service/payments"
)

const (
	msgInvalidRequestBody = "corpo de requisição inválido"
	msgInvalidAmount      = "valor de pagamento inválido"
	msgInvalidCard        = "dados do cartão inválidos"
	msgCardExpired        = "cartão expirado"
	msgUnsupportedMethod  = "método de pagamento não suportado"
)

type Handler struct {
	service PaymentsService
	logger  Logger
}

func NewHandler(service PaymentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	receipt, err := h.service.Charge(r.Context(), req.ToChargeRequest())
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrInvalidAmount):
			h.logger.Warn("POST /payments - Invalid amount: %.2f", req.Amount)
			handlers.RespondBadRequest(w, msgInvalidAmount)
		case errors.Is(err, payments.ErrCardExpired):
			h.logger.Warn("POST /payments - Card expired")
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgCardExpired)
		case errors.Is(err, payments.ErrInvalidCard):
			h.logger.Warn("POST /payments - Invalid card: %v", err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidCard)
		case errors.Is(err, payments.ErrUnsupportedMethod):
			h.logger.Warn("POST /payments - Unsupported method: %s", req.Method)
			handlers.RespondBadRequest(w, msgUnsupportedMethod)
		default:
			h.logger.Error("POST /payments - Failed to charge: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments - Payment confirmed id=%s amount=%.2f", receipt.ID, receipt.Amount)
	handlers.RespondJSON(w, http.StatusOK, FromReceipt(receipt))
}
