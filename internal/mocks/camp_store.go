package mocks

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/medcamphq/medcamp-api/internal/domain"
	"github.com/medcamphq/medcamp-api/internal/store"
)

// MockCampStore implements store.CampStore for testing. The default
// implementation keeps camps in a map guarded by a mutex, so the atomic
// increment behaves like the real store's document-side $inc under
// concurrent callers.
type MockCampStore struct {
	mu sync.Mutex

	// Function fields for customizable behavior
	CreateFn    func(ctx context.Context, camp *domain.Camp) error
	GetByIDFn   func(ctx context.Context, id string) (*domain.Camp, error)
	ListFn      func(ctx context.Context) ([]*domain.Camp, error)
	UpdateFn    func(ctx context.Context, id string, patch domain.CampPatch) (*domain.Camp, error)
	DeleteFn    func(ctx context.Context, id string) error
	IncrementFn func(ctx context.Context, id string) (*domain.Camp, error)

	// Data for default implementation
	Camps map[string]*domain.Camp

	// Call counters
	CreateCalls    int
	GetByIDCalls   int
	ListCalls      int
	UpdateCalls    int
	DeleteCalls    int
	IncrementCalls int
}

// NewMockCampStore creates a new mock store with initialized defaults
func NewMockCampStore() *MockCampStore {
	return &MockCampStore{
		Camps: make(map[string]*domain.Camp),
	}
}

// Create implements the store.CampStore interface
func (m *MockCampStore) Create(ctx context.Context, camp *domain.Camp) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls++

	if m.CreateFn != nil {
		return m.CreateFn(ctx, camp)
	}

	camp.ID = bson.NewObjectID()
	camp.ParticipantCount = 0
	m.Camps[camp.ID.Hex()] = camp
	return nil
}

// GetByID implements the store.CampStore interface
func (m *MockCampStore) GetByID(ctx context.Context, id string) (*domain.Camp, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetByIDCalls++

	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	camp, exists := m.Camps[id]
	if !exists {
		return nil, store.ErrCampNotFound
	}
	copied := *camp
	return &copied, nil
}

// List implements the store.CampStore interface
func (m *MockCampStore) List(ctx context.Context) ([]*domain.Camp, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListCalls++

	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	camps := make([]*domain.Camp, 0, len(m.Camps))
	for _, camp := range m.Camps {
		copied := *camp
		camps = append(camps, &copied)
	}
	return camps, nil
}

// Update implements the store.CampStore interface
func (m *MockCampStore) Update(
	ctx context.Context,
	id string,
	patch domain.CampPatch,
) (*domain.Camp, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls++

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}

	camp, exists := m.Camps[id]
	if !exists {
		return nil, store.ErrCampNotFound
	}

	if patch.IsEmpty() {
		return nil, store.ErrEmptyPatch
	}

	if patch.Name != nil {
		camp.Name = *patch.Name
	}
	if patch.Description != nil {
		camp.Description = *patch.Description
	}
	if patch.Fees != nil {
		camp.Fees = *patch.Fees
	}
	if patch.DateTime != nil {
		camp.DateTime = *patch.DateTime
	}
	if patch.Location != nil {
		camp.Location = *patch.Location
	}
	if patch.HealthcareProfessional != nil {
		camp.HealthcareProfessional = *patch.HealthcareProfessional
	}
	camp.UpdatedAt = time.Now().UTC()

	copied := *camp
	return &copied, nil
}

// Delete implements the store.CampStore interface
func (m *MockCampStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls++

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Camps[id]; !exists {
		return store.ErrCampNotFound
	}
	delete(m.Camps, id)
	return nil
}

// IncrementParticipantCount implements the store.CampStore interface.
// Like the real implementation's $inc, the read-increment-write happens
// under a single lock, so N concurrent calls always add exactly N.
func (m *MockCampStore) IncrementParticipantCount(ctx context.Context, id string) (*domain.Camp, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.IncrementCalls++

	if m.IncrementFn != nil {
		return m.IncrementFn(ctx, id)
	}

	camp, exists := m.Camps[id]
	if !exists {
		return nil, store.ErrCampNotFound
	}

	camp.ParticipantCount++
	camp.UpdatedAt = time.Now().UTC()

	copied := *camp
	return &copied, nil
}

// StoreCalls reports the total number of store accesses, used to assert
// that rejected requests never touched persistence.
func (m *MockCampStore) StoreCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CreateCalls + m.GetByIDCalls + m.ListCalls +
		m.UpdateCalls + m.DeleteCalls + m.IncrementCalls
}
