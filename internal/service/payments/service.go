package payments

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Payment methods accepted by the studio
const (
	MethodCard = "card"
	MethodPix  = "pix"
)

const expiryFormat = "01/06" // MM/YY

var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	cvcPattern        = regexp.MustCompile(`^\d{3,4}$`)
)

// Card holds the card details entered in the payment form.
type Card struct {
	Number string // 16 digits, spaces allowed
	Name   string
	Expiry string // MM/YY
	CVC    string
}

// ChargeRequest is a payment attempt for a reservation.
type ChargeRequest struct {
	Amount float64
	Method string
	Card   *Card // required for MethodCard
}

// Receipt confirms a completed payment.
type Receipt struct {
	ID     string
	Amount float64
	Method string
	PaidAt time.Time
}

// Service validates payment input and confirms the charge.
// No money moves and nothing is stored: the studio site confirms every
// well-formed payment, pix ones with a 24h manual confirmation notice on the
// UI side.
type Service struct {
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the payments service.
func NewService(logger Logger) *Service {
	return &Service{
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider swaps the reference clock. Used by tests.
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Charge validates the request shape and returns a receipt.
func (s *Service) Charge(ctx context.Context, req *ChargeRequest) (*Receipt, error) {
	if req == nil || req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	switch req.Method {
	case MethodPix:
		// No card details needed, confirmation happens out of band
	case MethodCard:
		if err := s.validateCard(req.Card); err != nil {
			s.logger.Warn("Charge: card validation failed: %v", err)
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMethod, req.Method)
	}

	receipt := &Receipt{
		ID:     uuid.NewString(),
		Amount: req.Amount,
		Method: req.Method,
		PaidAt: s.timeProvider.Now(),
	}

	s.logger.Info("Charge: payment confirmed id=%s method=%s amount=%.2f",
		receipt.ID, receipt.Method, receipt.Amount)

	return receipt, nil
}

func (s *Service) validateCard(card *Card) error {
	if card == nil {
		return fmt.Errorf("%w: card details are required", ErrInvalidCard)
	}

	number := strings.ReplaceAll(card.Number, " ", "")
	if !cardNumberPattern.MatchString(number) {
		return fmt.Errorf("%w: number must have 16 digits", ErrInvalidCard)
	}
	if strings.TrimSpace(card.Name) == "" {
		return fmt.Errorf("%w: holder name is required", ErrInvalidCard)
	}
	if !cvcPattern.MatchString(card.CVC) {
		return fmt.Errorf("%w: cvc must have 3 or 4 digits", ErrInvalidCard)
	}

	expiry, err := time.Parse(expiryFormat, card.Expiry)
	if err != nil {
		return fmt.Errorf("%w: expiry must be MM/YY", ErrInvalidCard)
	}

	// Valid through the last day of the expiry month
	now := s.timeProvider.Now()
	endOfMonth := expiry.AddDate(0, 1, 0)
	if !now.Before(endOfMonth) {
		return ErrCardExpired
	}

	return nil
}
