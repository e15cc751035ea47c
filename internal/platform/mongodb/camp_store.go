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

const campCollection = "camps"

// campStore implements store.CampStore over the camps collection.
type campStore struct {
	db *mongo.Database
}

// Ensure campStore implements store.CampStore interface
var _ store.CampStore = (*campStore)(nil)

// NewCampStore creates a CampStore backed by the given database.
func NewCampStore(db *mongo.Database) store.CampStore {
	return &campStore{db: db}
}

func (s *campStore) collection() *mongo.Collection {
	return s.db.Collection(campCollection)
}

// Create saves a new camp and fills in its generated ID. The participant
// count is forced to zero; it only moves through IncrementParticipantCount.
func (s *campStore) Create(ctx context.Context, camp *domain.Camp) error {
	if err := camp.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	now := time.Now().UTC()
	camp.ParticipantCount = 0
	camp.CreatedAt = now
	camp.UpdatedAt = now

	result, err := s.collection().InsertOne(ctx, camp)
	if err != nil {
		return store.NewStoreError("camp", "create", "insert failed", mapError(err, store.ErrCampNotFound))
	}

	objectID, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return store.NewStoreError("camp", "create", "unexpected inserted ID type", nil)
	}
	camp.ID = objectID

	return nil
}

// GetByID retrieves a camp by its hex identifier.
func (s *campStore) GetByID(ctx context.Context, id string) (*domain.Camp, error) {
	objectID, err := parseObjectID(id, store.ErrCampNotFound)
	if err != nil {
		return nil, err
	}

	var camp domain.Camp
	err = s.collection().FindOne(ctx, bson.M{"_id": objectID}).Decode(&camp)
	if err != nil {
		return nil, mapError(err, store.ErrCampNotFound)
	}

	return &camp, nil
}

// List returns every camp, unfiltered and unpaginated.
func (s *campStore) List(ctx context.Context) ([]*domain.Camp, error) {
	cursor, err := s.collection().Find(ctx, bson.M{})
	if err != nil {
		return nil, store.NewStoreError("camp", "list", "find failed", err)
	}
	defer cursor.Close(ctx)

	var camps []*domain.Camp
	for cursor.Next(ctx) {
		var camp domain.Camp
		if err := cursor.Decode(&camp); err != nil {
			return nil, store.NewStoreError("camp", "list", "decode failed", err)
		}
		camps = append(camps, &camp)
	}

	if err := cursor.Err(); err != nil {
		return nil, store.NewStoreError("camp", "list", "cursor failed", err)
	}

	return camps, nil
}

// Update applies the patch's populated fields with a $set, returning the
// updated document.
func (s *campStore) Update(ctx context.Context, id string, patch domain.CampPatch) (*domain.Camp, error) {
	objectID, err := parseObjectID(id, store.ErrCampNotFound)
	if err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return nil, store.ErrEmptyPatch
	}

	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	update := campPatchToSet(patch)
	update["updated_at"] = time.Now().UTC()

	var camp domain.Camp
	err = s.collection().FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&camp)
	if err != nil {
		return nil, mapError(err, store.ErrCampNotFound)
	}

	return &camp, nil
}

// Delete removes a camp by its hex identifier.
func (s *campStore) Delete(ctx context.Context, id string) error {
	objectID, err := parseObjectID(id, store.ErrCampNotFound)
	if err != nil {
		return err
	}

	result, err := s.collection().DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return store.NewStoreError("camp", "delete", "delete failed", err)
	}

	if result.DeletedCount == 0 {
		return store.ErrCampNotFound
	}

	return nil
}

// IncrementParticipantCount adds one to the stored count with a single
// document-side $inc, so concurrent registrations cannot lose updates.
func (s *campStore) IncrementParticipantCount(ctx context.Context, id string) (*domain.Camp, error) {
	objectID, err := parseObjectID(id, store.ErrCampNotFound)
	if err != nil {
		return nil, err
	}

	var camp domain.Camp
	err = s.collection().FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{
			"$inc": bson.M{"participantCount": 1},
			"$set": bson.M{"updated_at": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&camp)
	if err != nil {
		return nil, mapError(err, store.ErrCampNotFound)
	}

	return &camp, nil
}

// campPatchToSet builds the $set document from a patch's populated fields.
func campPatchToSet(patch domain.CampPatch) bson.M {
	update := bson.M{}
	if patch.Name != nil {
		update["campName"] = *patch.Name
	}
	if patch.Description != nil {
		update["description"] = *patch.Description
	}
	if patch.Fees != nil {
		update["fees"] = *patch.Fees
	}
	if patch.DateTime != nil {
		update["dateTime"] = *patch.DateTime
	}
	if patch.Location != nil {
		update["location"] = *patch.Location
	}
	if patch.HealthcareProfessional != nil {
		update["healthcareProfessional"] = *patch.HealthcareProfessional
	}
	return update
}
