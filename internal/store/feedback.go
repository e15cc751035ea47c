package store

import (
	"context"

	"github.com/medcamphq/medcamp-api/internal/domain"
)

// FeedbackStore defines the interface for feedback data persistence.
// Feedback is append-only.
type FeedbackStore interface {
	// Create saves a new feedback record and fills in its generated ID.
	Create(ctx context.Context, feedback *domain.Feedback) error

	// ListByCamp returns all feedback left for the given camp.
	ListByCamp(ctx context.Context, campID string) ([]*domain.Feedback, error)
}
