package quote_price

import (
	"net/http"
	"time"

	"github.com/espacohub/StudioBookingService/internal/api/handlers"
	"github.com/espacohub/StudioBookingService/internal/domain"
)

const (
	msgMissingRange     = "parâmetros start e end obrigatórios"
	msgInvalidTimestamp = "formato de data/hora inválido, esperado YYYY-MM-DDTHH:MM"
	msgInvalidInterval  = "intervalo inválido: início deve ser antes do fim"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	Minutes   int     `json:"minutes"`
	HalfHours int     `json:"halfHours"`
	Amount    float64 `json:"amount"`
}

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

// Handle GET /api/v1/slots/quote
// Query params: start, end (required, YYYY-MM-DDTHH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /slots/quote - Missing range")
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	start, err := time.ParseInLocation(domain.DateTimeFormat, startStr, time.Local)
	if err != nil {
		h.logger.Warn("GET /slots/quote - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimestamp)
		return
	}
	end, err := time.ParseInLocation(domain.DateTimeFormat, endStr, time.Local)
	if err != nil {
		h.logger.Warn("GET /slots/quote - Invalid end: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimestamp)
		return
	}

	interval := domain.Interval{Start: start, End: end}
	if !interval.IsValid() {
		h.logger.Warn("GET /slots/quote - Invalid interval: start=%s end=%s", startStr, endStr)
		handlers.RespondBadRequest(w, msgInvalidInterval)
		return
	}

	amount := h.scheduler.PriceFor(interval)
	minutes := interval.Minutes()
	halfHours := (minutes + domain.HalfHourMinutes - 1) / domain.HalfHourMinutes

	h.logger.Info("GET /slots/quote - Quoted %d minutes at %.2f", minutes, amount)
	handlers.RespondJSON(w, http.StatusOK, QuoteResponse{
		Minutes:   minutes,
		HalfHours: halfHours,
		Amount:    amount,
	})
}
