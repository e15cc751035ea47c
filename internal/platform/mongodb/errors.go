package mongodb

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/medcamphq/medcamp-api/internal/store"
)

// mapError translates driver errors into the store's sentinel errors.
// notFound is the entity-specific error substituted for ErrNoDocuments.
func mapError(err, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return notFound
	case mongo.IsDuplicateKeyError(err):
		return store.ErrDuplicate
	default:
		return err
	}
}

// parseObjectID converts a hex path identifier into an ObjectID, mapping
// malformed input to the entity's not-found error: a syntactically invalid
// ID can never name a stored document.
func parseObjectID(id string, notFound error) (bson.ObjectID, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, notFound
	}
	return objectID, nil
}
