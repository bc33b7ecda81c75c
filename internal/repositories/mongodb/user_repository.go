package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/zerocycle/zerocycle-admin-backend/internal/apperrors"
	"github.com/zerocycle/zerocycle-admin-backend/internal/models"
	"github.com/zerocycle/zerocycle-admin-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure UserRepository implements the interface
var _ repositories.UserRepository = (*UserRepository)(nil)

// UserRepository handles MongoDB operations for User
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		collection: db.Collection("users"),
	}
}

// FindByID finds a user by ID
func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Unavailable(err)
	}
	return &user, nil
}

// FindAll retrieves all users
func (r *UserRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperrors.Unavailable(err)
	}
	defer cursor.Close(ctx)

	var users []*models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, apperrors.Unavailable(err)
	}
	if users == nil {
		users = []*models.User{}
	}
	return users, nil
}

// UpdateStatus sets the status of a user
func (r *UserRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.UserStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return apperrors.Unavailable(err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes a user permanently
func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperrors.Unavailable(err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Count returns the total number of users
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, apperrors.Unavailable(err)
	}
	return count, nil
}

// Watch opens a change stream on the users collection. Events are pushed to
// the returned channel until ctx is cancelled; the channel is then closed.
func (r *UserRepository) Watch(ctx context.Context) (<-chan models.UserChange, error) {
	stream, err := openStream(ctx, r.collection)
	if err != nil {
		return nil, err
	}

	ch := make(chan models.UserChange)
	go func() {
		defer close(ch)
		defer stream.Close(context.Background())
		for stream.Next(ctx) {
			var ev struct {
				OperationType string       `bson:"operationType"`
				FullDocument  *models.User `bson:"fullDocument"`
				DocumentKey   documentKey  `bson:"documentKey"`
			}
			if err := stream.Decode(&ev); err != nil {
				continue
			}
			changeType, ok := changeTypeOf(ev.OperationType)
			if !ok {
				continue
			}
			change := models.UserChange{Type: changeType, ID: ev.DocumentKey.ID.Hex(), User: ev.FullDocument}
			select {
			case ch <- change:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}
