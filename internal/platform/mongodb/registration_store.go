package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/medcamphq/medcamp-api/internal/domain"
	"github.com/medcamphq/medcamp-api/internal/store"
)

const registrationCollection = "registrations"

// registrationStore implements store.RegistrationStore over the
// registrations collection.
type registrationStore struct {
	db *mongo.Database
}

// Ensure registrationStore implements store.RegistrationStore interface
var _ store.RegistrationStore = (*registrationStore)(nil)

// NewRegistrationStore creates a RegistrationStore backed by the given
// database.
func NewRegistrationStore(db *mongo.Database) store.RegistrationStore {
	return &registrationStore{db: db}
}

func (s *registrationStore) collection() *mongo.Collection {
	return s.db.Collection(registrationCollection)
}

// Create saves a new registration and fills in its generated ID. There is
// no uniqueness constraint on (camp, participant): duplicates are allowed.
func (s *registrationStore) Create(ctx context.Context, reg *domain.Registration) error {
	if err := reg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	now := time.Now().UTC()
	reg.CreatedAt = now
	reg.UpdatedAt = now

	result, err := s.collection().InsertOne(ctx, reg)
	if err != nil {
		return store.NewStoreError("registration", "create", "insert failed", err)
	}

	objectID, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return store.NewStoreError("registration", "create", "unexpected inserted ID type", nil)
	}
	reg.ID = objectID

	return nil
}

// GetByID retrieves a registration by its hex identifier.
func (s *registrationStore) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	objectID, err := parseObjectID(id, store.ErrRegistrationNotFound)
	if err != nil {
		return nil, err
	}

	var reg domain.Registration
	err = s.collection().FindOne(ctx, bson.M{"_id": objectID}).Decode(&reg)
	if err != nil {
		return nil, mapError(err, store.ErrRegistrationNotFound)
	}

	return &reg, nil
}

// ListByParticipant returns all registrations held by the given email.
func (s *registrationStore) ListByParticipant(
	ctx context.Context,
	email string,
) ([]*domain.Registration, error) {
	return s.list(ctx, bson.M{"participantEmail": email})
}

// ListAll returns every registration in the collection.
func (s *registrationStore) ListAll(ctx context.Context) ([]*domain.Registration, error) {
	return s.list(ctx, bson.M{})
}

func (s *registrationStore) list(ctx context.Context, filter bson.M) ([]*domain.Registration, error) {
	cursor, err := s.collection().Find(ctx, filter)
	if err != nil {
		return nil, store.NewStoreError("registration", "list", "find failed", err)
	}
	defer cursor.Close(ctx)

	var regs []*domain.Registration
	for cursor.Next(ctx) {
		var reg domain.Registration
		if err := cursor.Decode(&reg); err != nil {
			return nil, store.NewStoreError("registration", "list", "decode failed", err)
		}
		regs = append(regs, &reg)
	}

	if err := cursor.Err(); err != nil {
		return nil, store.NewStoreError("registration", "list", "cursor failed", err)
	}

	return regs, nil
}

// Update applies the patch's populated status fields with a $set,
// returning the updated document.
func (s *registrationStore) Update(
	ctx context.Context,
	id string,
	patch domain.RegistrationPatch,
) (*domain.Registration, error) {
	objectID, err := parseObjectID(id, store.ErrRegistrationNotFound)
	if err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return nil, store.ErrEmptyPatch
	}

	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	update := bson.M{}
	if patch.PaymentStatus != nil {
		update["paymentStatus"] = *patch.PaymentStatus
	}
	if patch.ConfirmationStatus != nil {
		update["confirmationStatus"] = *patch.ConfirmationStatus
	}
	update["updated_at"] = time.Now().UTC()

	var reg domain.Registration
	err = s.collection().FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&reg)
	if err != nil {
		return nil, mapError(err, store.ErrRegistrationNotFound)
	}

	return &reg, nil
}

// Delete removes a registration by its hex identifier.
func (s *registrationStore) Delete(ctx context.Context, id string) error {
	objectID, err := parseObjectID(id, store.ErrRegistrationNotFound)
	if err != nil {
		return err
	}

	result, err := s.collection().DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return store.NewStoreError("registration", "delete", "delete failed", err)
	}

	if result.DeletedCount == 0 {
		return store.ErrRegistrationNotFound
	}

	return nil
}
