package mocks

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/medcamphq/medcamp-api/internal/domain"
	"github.com/medcamphq/medcamp-api/internal/store"
)

// MockRegistrationStore implements store.RegistrationStore for testing
type MockRegistrationStore struct {
	mu sync.Mutex

	// Function fields for customizable behavior
	CreateFn            func(ctx context.Context, reg *domain.Registration) error
	GetByIDFn           func(ctx context.Context, id string) (*domain.Registration, error)
	ListByParticipantFn func(ctx context.Context, email string) ([]*domain.Registration, error)
	ListAllFn           func(ctx context.Context) ([]*domain.Registration, error)
	UpdateFn            func(ctx context.Context, id string, patch domain.RegistrationPatch) (*domain.Registration, error)
	DeleteFn            func(ctx context.Context, id string) error

	// Data for default implementation
	Registrations map[string]*domain.Registration
	CreateError   error

	// Call counters
	CreateCalls            int
	GetByIDCalls           int
	ListByParticipantCalls int
	ListAllCalls           int
	UpdateCalls            int
	DeleteCalls            int
}

// NewMockRegistrationStore creates a new mock store with initialized defaults
func NewMockRegistrationStore() *MockRegistrationStore {
	return &MockRegistrationStore{
		Registrations: make(map[string]*domain.Registration),
	}
}

// Create implements the store.RegistrationStore interface
func (m *MockRegistrationStore) Create(ctx context.Context, reg *domain.Registration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls++

	if m.CreateFn != nil {
		return m.CreateFn(ctx, reg)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	reg.ID = bson.NewObjectID()
	m.Registrations[reg.ID.Hex()] = reg
	return nil
}

// GetByID implements the store.RegistrationStore interface
func (m *MockRegistrationStore) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetByIDCalls++

	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	reg, exists := m.Registrations[id]
	if !exists {
		return nil, store.ErrRegistrationNotFound
	}
	return reg, nil
}

// ListByParticipant implements the store.RegistrationStore interface
func (m *MockRegistrationStore) ListByParticipant(
	ctx context.Context,
	email string,
) ([]*domain.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListByParticipantCalls++

	if m.ListByParticipantFn != nil {
		return m.ListByParticipantFn(ctx, email)
	}

	var regs []*domain.Registration
	for _, reg := range m.Registrations {
		if reg.ParticipantEmail == email {
			regs = append(regs, reg)
		}
	}
	return regs, nil
}

// ListAll implements the store.RegistrationStore interface
func (m *MockRegistrationStore) ListAll(ctx context.Context) ([]*domain.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListAllCalls++

	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}

	regs := make([]*domain.Registration, 0, len(m.Registrations))
	for _, reg := range m.Registrations {
		regs = append(regs, reg)
	}
	return regs, nil
}

// Update implements the store.RegistrationStore interface
func (m *MockRegistrationStore) Update(
	ctx context.Context,
	id string,
	patch domain.RegistrationPatch,
) (*domain.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls++

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}

	reg, exists := m.Registrations[id]
	if !exists {
		return nil, store.ErrRegistrationNotFound
	}

	if patch.IsEmpty() {
		return nil, store.ErrEmptyPatch
	}

	if patch.PaymentStatus != nil {
		reg.PaymentStatus = *patch.PaymentStatus
	}
	if patch.ConfirmationStatus != nil {
		reg.ConfirmationStatus = *patch.ConfirmationStatus
	}
	reg.UpdatedAt = time.Now().UTC()

	return reg, nil
}

// Delete implements the store.RegistrationStore interface
func (m *MockRegistrationStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls++

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Registrations[id]; !exists {
		return store.ErrRegistrationNotFound
	}
	delete(m.Registrations, id)
	return nil
}

// StoreCalls reports the total number of store accesses, used to assert
// that rejected requests never touched persistence.
func (m *MockRegistrationStore) StoreCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CreateCalls + m.GetByIDCalls + m.ListByParticipantCalls +
		m.ListAllCalls + m.UpdateCalls + m.DeleteCalls
}
