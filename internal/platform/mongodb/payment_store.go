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

const paymentCollection = "payments"

// paymentStore implements store.PaymentStore over the payments collection.
// Records are insert-only.
type paymentStore struct {
	db *mongo.Database
}

// Ensure paymentStore implements store.PaymentStore interface
var _ store.PaymentStore = (*paymentStore)(nil)

// NewPaymentStore creates a PaymentStore backed by the given database.
func NewPaymentStore(db *mongo.Database) store.PaymentStore {
	return &paymentStore{db: db}
}

func (s *paymentStore) collection() *mongo.Collection {
	return s.db.Collection(paymentCollection)
}

// Create saves a new payment record and fills in its generated ID.
func (s *paymentStore) Create(ctx context.Context, payment *domain.Payment) error {
	if err := payment.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	payment.CreatedAt = time.Now().UTC()

	result, err := s.collection().InsertOne(ctx, payment)
	if err != nil {
		return store.NewStoreError("payment", "create", "insert failed", err)
	}

	objectID, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return store.NewStoreError("payment", "create", "unexpected inserted ID type", nil)
	}
	payment.ID = objectID

	return nil
}

// ListByParticipant returns all payment records for the given email.
func (s *paymentStore) ListByParticipant(
	ctx context.Context,
	email string,
) ([]*domain.Payment, error) {
	cursor, err := s.collection().Find(ctx, bson.M{"participantEmail": email})
	if err != nil {
		return nil, store.NewStoreError("payment", "list", "find failed", err)
	}
	defer cursor.Close(ctx)

	var payments []*domain.Payment
	for cursor.Next(ctx) {
		var payment domain.Payment
		if err := cursor.Decode(&payment); err != nil {
			return nil, store.NewStoreError("payment", "list", "decode failed", err)
		}
		payments = append(payments, &payment)
	}

	if err := cursor.Err(); err != nil {
		return nil, store.NewStoreError("payment", "list", "cursor failed", err)
	}

	return payments, nil
}
