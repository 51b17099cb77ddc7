package payments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var refNow = time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)

func newTestService() *Service {
	return NewService(nopLogger{}).WithTimeProvider(&fixedClock{now: refNow})
}

func validCard() *Card {
	return &Card{
		Number: "4111 1111 1111 1111",
		Name:   "Ana Maria",
		Expiry: "12/27",
		CVC:    "123",
	}
}

func TestCharge_Card(t *testing.T) {
	svc := newTestService()

	receipt, err := svc.Charge(context.Background(), &ChargeRequest{
		Amount: 120,
		Method: MethodCard,
		Card:   validCard(),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, receipt.ID)
	assert.Equal(t, 120.0, receipt.Amount)
	assert.Equal(t, MethodCard, receipt.Method)
	assert.Equal(t, refNow, receipt.PaidAt)
}

func TestCharge_PixNeedsNoCard(t *testing.T) {
	svc := newTestService()

	receipt, err := svc.Charge(context.Background(), &ChargeRequest{
		Amount: 80,
		Method: MethodPix,
	})
	require.NoError(t, err)
	assert.Equal(t, MethodPix, receipt.Method)
}

func TestCharge_InvalidAmount(t *testing.T) {
	svc := newTestService()

	_, err := svc.Charge(context.Background(), &ChargeRequest{Amount: 0, Method: MethodPix})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Charge(context.Background(), &ChargeRequest{Amount: -40, Method: MethodPix})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Charge(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestCharge_UnsupportedMethod(t *testing.T) {
	svc := newTestService()

	_, err := svc.Charge(context.Background(), &ChargeRequest{Amount: 40, Method: "boleto"})
	assert.ErrorIs(t, err, ErrUnsupportedMethod)
}

func TestCharge_CardValidation(t *testing.T) {
	mutate := func(fn func(*Card)) *Card {
		c := validCard()
		fn(c)
		return c
	}

	tests := []struct {
		name    string
		card    *Card
		wantErr error
	}{
		{"missing card", nil, ErrInvalidCard},
		{"short number", mutate(func(c *Card) { c.Number = "4111 1111" }), ErrInvalidCard},
		{"letters in number", mutate(func(c *Card) { c.Number = "4111x1111y1111z1111" }), ErrInvalidCard},
		{"blank holder", mutate(func(c *Card) { c.Name = "  " }), ErrInvalidCard},
		{"short cvc", mutate(func(c *Card) { c.CVC = "12" }), ErrInvalidCard},
		{"malformed expiry", mutate(func(c *Card) { c.Expiry = "2027-12" }), ErrInvalidCard},
		{"expired card", mutate(func(c *Card) { c.Expiry = "05/24" }), ErrCardExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService()

			_, err := svc.Charge(context.Background(), &ChargeRequest{
				Amount: 120,
				Method: MethodCard,
				Card:   tt.card,
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCharge_CardValidThroughEndOfExpiryMonth(t *testing.T) {
	svc := newTestService()

	// Clock reads June 2024: a card expiring 06/24 still works
	card := validCard()
	card.Expiry = "06/24"

	_, err := svc.Charge(context.Background(), &ChargeRequest{
		Amount: 40,
		Method: MethodCard,
		Card:   card,
	})
	assert.NoError(t, err)
}
