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

const userCollection = "users"

// userStore implements store.UserStore over the users collection.
type userStore struct {
	db *mongo.Database
}

// Ensure userStore implements store.UserStore interface
var _ store.UserStore = (*userStore)(nil)

// NewUserStore creates a UserStore backed by the given database. A unique
// index on email backs the idempotent first-sign-in creation.
func NewUserStore(ctx context.Context, db *mongo.Database) (store.UserStore, error) {
	collection := db.Collection(userCollection)

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user email index: %w", err)
	}

	return &userStore{db: db}, nil
}

func (s *userStore) collection() *mongo.Collection {
	return s.db.Collection(userCollection)
}

// Create saves a new user, mapping a duplicate email to ErrEmailExists so
// callers can treat re-sign-in as a no-op.
func (s *userStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := s.collection().InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrEmailExists
		}
		return store.NewStoreError("user", "create", "insert failed", err)
	}

	objectID, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return store.NewStoreError("user", "create", "unexpected inserted ID type", nil)
	}
	user.ID = objectID

	return nil
}

// GetByEmail retrieves a user by their email address.
func (s *userStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.collection().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, mapError(err, store.ErrUserNotFound)
	}

	return &user, nil
}

// Update applies the patch's populated profile fields with a $set,
// returning the updated document.
func (s *userStore) Update(ctx context.Context, email string, patch domain.UserPatch) (*domain.User, error) {
	if patch.IsEmpty() {
		return nil, store.ErrEmptyPatch
	}

	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	update := bson.M{}
	if patch.Name != nil {
		update["name"] = *patch.Name
	}
	if patch.PhotoURL != nil {
		update["photoURL"] = *patch.PhotoURL
	}
	if patch.Phone != nil {
		update["phone"] = *patch.Phone
	}
	if patch.Address != nil {
		update["address"] = *patch.Address
	}
	update["updated_at"] = time.Now().UTC()

	var user domain.User
	err := s.collection().FindOneAndUpdate(
		ctx,
		bson.M{"email": email},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		return nil, mapError(err, store.ErrUserNotFound)
	}

	return &user, nil
}
