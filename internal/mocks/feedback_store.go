package mocks

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/medcamphq/medcamp-api/internal/domain"
)

// MockFeedbackStore implements store.FeedbackStore for testing
type MockFeedbackStore struct {
	mu sync.Mutex

	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, feedback *domain.Feedback) error
	ListByCampFn func(ctx context.Context, campID string) ([]*domain.Feedback, error)

	// Data for default implementation
	Feedback    []*domain.Feedback
	CreateError error

	// Call counters
	CreateCalls     int
	ListByCampCalls int
}

// NewMockFeedbackStore creates a new mock store with initialized defaults
func NewMockFeedbackStore() *MockFeedbackStore {
	return &MockFeedbackStore{}
}

// Create implements the store.FeedbackStore interface
func (m *MockFeedbackStore) Create(ctx context.Context, feedback *domain.Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls++

	if m.CreateFn != nil {
		return m.CreateFn(ctx, feedback)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	feedback.ID = bson.NewObjectID()
	m.Feedback = append(m.Feedback, feedback)
	return nil
}

// ListByCamp implements the store.FeedbackStore interface
func (m *MockFeedbackStore) ListByCamp(
	ctx context.Context,
	campID string,
) ([]*domain.Feedback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListByCampCalls++

	if m.ListByCampFn != nil {
		return m.ListByCampFn(ctx, campID)
	}

	var feedback []*domain.Feedback
	for _, f := range m.Feedback {
		if f.CampID.Hex() == campID {
			feedback = append(feedback, f)
		}
	}
	return feedback, nil
}

// StoreCalls reports the total number of store accesses, used to assert
// that rejected requests never touched persistence.
func (m *MockFeedbackStore) StoreCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CreateCalls + m.ListByCampCalls
}
