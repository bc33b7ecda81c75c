package mongodb

import (
	"context"

	"github.com/zerocycle/zerocycle-admin-backend/internal/apperrors"
	"github.com/zerocycle/zerocycle-admin-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type documentKey struct {
	ID primitive.ObjectID `bson:"_id"`
}

// openStream starts a change stream with full-document lookup so update
// events carry the post-image the views render.
func openStream(ctx context.Context, coll *mongo.Collection) (*mongo.ChangeStream, error) {
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	stream, err := coll.Watch(ctx, mongo.Pipeline{}, opts)
	if err != nil {
		return nil, apperrors.Unavailable(err)
	}
	return stream, nil
}

// changeTypeOf maps a change-stream operation type onto the model's change
// classification. Operations the views do not care about (drop, invalidate)
// are skipped.
func changeTypeOf(op string) (models.ChangeType, bool) {
	switch op {
	case "insert":
		return models.ChangeCreated, true
	case "update", "replace":
		return models.ChangeUpdated, true
	case "delete":
		return models.ChangeDeleted, true
	}
	return "", false
}
