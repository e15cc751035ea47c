package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/medcamphq/medcamp-api/internal/domain"
	"github.com/medcamphq/medcamp-api/internal/store"
)

const feedbackCollection = "feedback"

// feedbackStore implements store.FeedbackStore over the feedback
// collection. Feedback is append-only.
type feedbackStore struct {
	db *mongo.Database
}

// Ensure feedbackStore implements store.FeedbackStore interface
var _ store.FeedbackStore = (*feedbackStore)(nil)

// NewFeedbackStore creates a FeedbackStore backed by the given database.
func NewFeedbackStore(db *mongo.Database) store.FeedbackStore {
	return &feedbackStore{db: db}
}

func (s *feedbackStore) collection() *mongo.Collection {
	return s.db.Collection(feedbackCollection)
}

// Create saves a new feedback record and fills in its generated ID.
func (s *feedbackStore) Create(ctx context.Context, feedback *domain.Feedback) error {
	if err := feedback.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	feedback.CreatedAt = time.Now().UTC()

	result, err := s.collection().InsertOne(ctx, feedback)
	if err != nil {
		return store.NewStoreError("feedback", "create", "insert failed", err)
	}

	objectID, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return store.NewStoreError("feedback", "create", "unexpected inserted ID type", nil)
	}
	feedback.ID = objectID

	return nil
}

// ListByCamp returns all feedback left for the given camp.
func (s *feedbackStore) ListByCamp(ctx context.Context, campID string) ([]*domain.Feedback, error) {
	objectID, err := parseObjectID(campID, store.ErrCampNotFound)
	if err != nil {
		return nil, err
	}

	cursor, err := s.collection().Find(ctx, bson.M{"campId": objectID})
	if err != nil {
		return nil, store.NewStoreError("feedback", "list", "find failed", err)
	}
	defer cursor.Close(ctx)

	var feedback []*domain.Feedback
	for cursor.Next(ctx) {
		var f domain.Feedback
		if err := cursor.Decode(&f); err != nil {
			return nil, store.NewStoreError("feedback", "list", "decode failed", err)
		}
		feedback = append(feedback, &f)
	}

	if err := cursor.Err(); err != nil {
		return nil, store.NewStoreError("feedback", "list", "cursor failed", err)
	}

	return feedback, nil
}
