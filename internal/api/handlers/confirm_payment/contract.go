package confirm_payment

import (
	"context"

	"github.com/espacohub/StudioBookingService/internal/service/payments"
)

type PaymentsService interface {
	Charge(ctx context.Context, req *payments.ChargeRequest) (*payments.Receipt, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
