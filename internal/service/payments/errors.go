package payments

import "errors"

var (
	// ErrInvalidAmount is returned when the amount is zero or negative
	ErrInvalidAmount = errors.New("payments: invalid amount")

	// ErrInvalidCard is returned when the card details fail the shape check
	ErrInvalidCard = errors.New("payments: invalid card details")

	// ErrCardExpired is returned when the card expiry is in the past
	ErrCardExpired = errors.New("payments: card expired")

	// ErrUnsupportedMethod is returned for payment methods other than card and pix
	ErrUnsupportedMethod = errors.New("payments: unsupported payment method")
)
