package mocks

import (
	"context"
	"sync"

	"github.com/medcamphq/medcamp-api/internal/service/payment"
)

// MockGateway implements payment.Gateway for testing
type MockGateway struct {
	mu sync.Mutex

	// Function fields for customizable behavior
	CreateIntentFn   func(ctx context.Context, amountCents int64, currency string) (*payment.Intent, error)
	RetrieveIntentFn func(ctx context.Context, intentID string) (payment.IntentStatus, error)

	// Default values used when functions aren't explicitly defined
	Intent      *payment.Intent
	CreateErr   error
	Status      payment.IntentStatus
	RetrieveErr error

	// Captured arguments from the most recent CreateIntent call
	LastAmountCents int64
	LastCurrency    string

	// Call counters
	CreateIntentCalls   int
	RetrieveIntentCalls int
}

// CreateIntent implements the payment.Gateway interface
func (m *MockGateway) CreateIntent(
	ctx context.Context,
	amountCents int64,
	currency string,
) (*payment.Intent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateIntentCalls++
	m.LastAmountCents = amountCents
	m.LastCurrency = currency

	if m.CreateIntentFn != nil {
		return m.CreateIntentFn(ctx, amountCents, currency)
	}

	if m.CreateErr != nil {
		return nil, m.CreateErr
	}

	if m.Intent != nil {
		return m.Intent, nil
	}
	return &payment.Intent{ID: "pi_mock", ClientSecret: "pi_mock_secret"}, nil
}

// RetrieveIntent implements the payment.Gateway interface
func (m *MockGateway) RetrieveIntent(
	ctx context.Context,
	intentID string,
) (payment.IntentStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RetrieveIntentCalls++

	if m.RetrieveIntentFn != nil {
		return m.RetrieveIntentFn(ctx, intentID)
	}

	if m.RetrieveErr != nil {
		return "", m.RetrieveErr
	}

	if m.Status != "" {
		return m.Status, nil
	}
	return payment.IntentStatusSucceeded, nil
}
