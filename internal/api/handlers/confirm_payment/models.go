package confirm_payment

import (
	"time"

	"github.com/espacohub/StudioBookingService/internal/service/payments"
)

// PaymentRequest HTTP request model
type PaymentRequest struct {
	Amount float64      `json:"amount"`
	Method string       `json:"method"` // card | pix
	Card   *CardRequest `json:"card,omitempty"`
}

// CardRequest holds the card form fields
type CardRequest struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Expiry string `json:"expiry"` // MM/YY
	CVC    string `json:"cvc"`
}

// PaymentResponse HTTP response model
type PaymentResponse struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
	PaidAt string  `json:"paidAt"`
}

// ToChargeRequest converts the HTTP request into the service model
func (r *PaymentRequest) ToChargeRequest() *payments.ChargeRequest {
	req := &payments.ChargeRequest{
		Amount: r.Amount,
		Method: r.Method,
	}
	if r.Card != nil {
		req.Card = &payments.Card{
			Number: r.Card.Number,
			Name:   r.Card.Name,
			Expiry: r.Card.Expiry,
			CVC:    r.Card.CVC,
		}
	}
	return req
}

// FromReceipt converts the service receipt into the HTTP response
func FromReceipt(receipt *payments.Receipt) *PaymentResponse {
	return &PaymentResponse{
		ID:     receipt.ID,
		Amount: receipt.Amount,
		Method: receipt.Method,
		PaidAt: receipt.PaidAt.Format(time.RFC3339),
	}
}
