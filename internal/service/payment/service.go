package payment

import (
	"context"
	"fmt"
	"math"

	"github.com/medcamphq/medcamp-api/internal/domain"
	"github.com/medcamphq/medcamp-api/internal/platform/logger"
	"github.com/medcamphq/medcamp-api/internal/store"
)

// Currency is the only currency camp fees are charged in.
const Currency = "usd"

// Service coordinates the payment gateway and the payment store.
type Service struct {
	gateway      Gateway
	paymentStore store.PaymentStore
}

// NewService creates a payment Service with the given collaborators.
func NewService(gateway Gateway, paymentStore store.PaymentStore) *Service {
	return &Service{
		gateway:      gateway,
		paymentStore: paymentStore,
	}
}

// CreateIntent requests a card-payment authorization for the given fee.
// The fee is a decimal dollar amount; the gateway is asked for the
// truncated cent value. Returns the client secret the browser needs to
// complete the card flow.
func (s *Service) CreateIntent(ctx context.Context, fees float64) (string, error) {
	log := logger.FromContext(ctx)

	if fees <= 0 || math.IsNaN(fees) || math.IsInf(fees, 0) {
		return "", fmt.Errorf("%w: %v", ErrInvalidAmount, fees)
	}

	amountCents := int64(fees * 100)

	intent, err := s.gateway.CreateIntent(ctx, amountCents, Currency)
	if err != nil {
		log.Error("gateway intent creation failed",
			"error", err,
			"amount_cents", amountCents,
			"currency", Currency)
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}

	log.Debug("payment intent created",
		"intent_id", intent.ID,
		"amount_cents", amountCents)

	return intent.ClientSecret, nil
}

// RecordPayment persists a payment the client reports as completed. The
// reported transaction is first verified with the gateway; anything the
// gateway does not show as succeeded is rejected and nothing is written.
func (s *Service) RecordPayment(ctx context.Context, payment *domain.Payment) error {
	log := logger.FromContext(ctx)

	if err := payment.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	status, err := s.gateway.RetrieveIntent(ctx, payment.TransactionID)
	if err != nil {
		log.Error("gateway intent lookup failed",
			"error", err,
			"transaction_id", payment.TransactionID)
		return fmt.Errorf("%w: %v", ErrGateway, err)
	}

	if status != IntentStatusSucceeded {
		log.Warn("rejected unsettled payment report",
			"transaction_id", payment.TransactionID,
			"gateway_status", string(status))
		return fmt.Errorf("%w: status %q", ErrPaymentNotSettled, status)
	}

	if err := s.paymentStore.Create(ctx, payment); err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}

	log.Info("payment recorded",
		"transaction_id", payment.TransactionID,
		"camp_id", payment.CampID.Hex(),
		"amount", payment.Amount)

	return nil
}

// ListByParticipant returns the payment records for the given participant.
func (s *Service) ListByParticipant(ctx context.Context, email string) ([]*domain.Payment, error) {
	payments, err := s.paymentStore.ListByParticipant(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}
