package mocks

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/medcamphq/medcamp-api/internal/domain"
)

// MockPaymentStore implements store.PaymentStore for testing
type MockPaymentStore struct {
	mu sync.Mutex

	// Function fields for customizable behavior
	CreateFn            func(ctx context.Context, payment *domain.Payment) error
	ListByParticipantFn func(ctx context.Context, email string) ([]*domain.Payment, error)

	// Data for default implementation
	Payments    []*domain.Payment
	CreateError error

	// Call counters
	CreateCalls            int
	ListByParticipantCalls int
}

// NewMockPaymentStore creates a new mock store with initialized defaults
func NewMockPaymentStore() *MockPaymentStore {
	return &MockPaymentStore{}
}

// Create implements the store.PaymentStore interface
func (m *MockPaymentStore) Create(ctx context.Context, payment *domain.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls++

	if m.CreateFn != nil {
		return m.CreateFn(ctx, payment)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	payment.ID = bson.NewObjectID()
	m.Payments = append(m.Payments, payment)
	return nil
}

// ListByParticipant implements the store.PaymentStore interface
func (m *MockPaymentStore) ListByParticipant(
	ctx context.Context,
	email string,
) ([]*domain.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListByParticipantCalls++

	if m.ListByParticipantFn != nil {
		return m.ListByParticipantFn(ctx, email)
	}

	var payments []*domain.Payment
	for _, payment := range m.Payments {
		if payment.ParticipantEmail == email {
			payments = append(payments, payment)
		}
	}
	return payments, nil
}

// StoreCalls reports the total number of store accesses, used to assert
// that rejected requests never touched persistence.
func (m *MockPaymentStore) StoreCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CreateCalls + m.ListByParticipantCalls
}
