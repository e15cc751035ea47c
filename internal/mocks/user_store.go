package mocks

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/medcamphq/medcamp-api/internal/domain"
	"github.com/medcamphq/medcamp-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	mu sync.Mutex

	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, user *domain.User) error
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	UpdateFn     func(ctx context.Context, email string, patch domain.UserPatch) (*domain.User, error)

	// Data for default implementation
	Users           map[string]*domain.User
	CreateError     error
	GetByEmailError error

	// Call counters
	CreateCalls     int
	GetByEmailCalls int
	UpdateCalls     int
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Create implements the store.UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls++

	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if _, exists := m.Users[user.Email]; exists {
		return store.ErrEmailExists
	}

	user.ID = bson.NewObjectID()
	m.Users[user.Email] = user
	return nil
}

// GetByEmail implements the store.UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetByEmailCalls++

	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	if m.GetByEmailError != nil {
		return nil, m.GetByEmailError
	}

	user, exists := m.Users[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// Update implements the store.UserStore interface
func (m *MockUserStore) Update(
	ctx context.Context,
	email string,
	patch domain.UserPatch,
) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls++

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, email, patch)
	}

	user, exists := m.Users[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	if patch.IsEmpty() {
		return nil, store.ErrEmptyPatch
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.PhotoURL != nil {
		user.PhotoURL = *patch.PhotoURL
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.Address != nil {
		user.Address = *patch.Address
	}
	user.UpdatedAt = time.Now().UTC()

	return user, nil
}

// StoreCalls reports the total number of store accesses, used to assert
// that rejected requests never touched persistence.
func (m *MockUserStore) StoreCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CreateCalls + m.GetByEmailCalls + m.UpdateCalls
}
