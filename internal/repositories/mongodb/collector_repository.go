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

// Compile-time check to ensure CollectorRepository implements the interface
var _ repositories.CollectorRepository = (*CollectorRepository)(nil)

// CollectorRepository handles MongoDB operations for Collector
type CollectorRepository struct {
	collection *mongo.Collection
}

// NewCollectorRepository creates a new CollectorRepository
func NewCollectorRepository(db *mongo.Database) *CollectorRepository {
	return &CollectorRepository{
		collection: db.Collection("collectors"),
	}
}

// Create inserts a new collector
func (r *CollectorRepository) Create(ctx context.Context, collector *models.Collector) error {
	collector.ID = primitive.NewObjectID()
	collector.CreatedAt = time.Now()
	collector.UpdatedAt = time.Now()
	if _, err := r.collection.InsertOne(ctx, collector); err != nil {
		return apperrors.Unavailable(err)
	}
	return nil
}

// FindByID finds a collector by ID
func (r *CollectorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Collector, error) {
	var collector models.Collector
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&collector)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Unavailable(err)
	}
	return &collector, nil
}

// FindAll retrieves all collectors
func (r *CollectorRepository) FindAll(ctx context.Context) ([]*models.Collector, error) {
	return r.find(ctx, bson.M{})
}

// FindByStatus retrieves collectors with the given status
func (r *CollectorRepository) FindByStatus(ctx context.Context, status models.CollectorStatus) ([]*models.Collector, error) {
	return r.find(ctx, bson.M{"status": status})
}

func (r *CollectorRepository) find(ctx context.Context, filter bson.M) ([]*models.Collector, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, apperrors.Unavailable(err)
	}
	defer cursor.Close(ctx)

	var collectors []*models.Collector
	if err = cursor.All(ctx, &collectors); err != nil {
		return nil, apperrors.Unavailable(err)
	}
	if collectors == nil {
		collectors = []*models.Collector{}
	}
	return collectors, nil
}

// UpdateStatus sets the status of a collector
func (r *CollectorRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.CollectorStatus) error {
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

// Delete removes a collector permanently. Deletion is terminal; rejection
// uses this rather than a stored REJECTED status.
func (r *CollectorRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperrors.Unavailable(err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Count returns the total number of collectors
func (r *CollectorRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, apperrors.Unavailable(err)
	}
	return count, nil
}

// CountByStatus returns the number of collectors with the given status
func (r *CollectorRepository) CountByStatus(ctx context.Context, status models.CollectorStatus) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, apperrors.Unavailable(err)
	}
	return count, nil
}

// Watch opens a change stream on the collectors collection. Events are pushed
// to the returned channel until ctx is cancelled; the channel is then closed.
func (r *CollectorRepository) Watch(ctx context.Context) (<-chan models.CollectorChange, error) {
	stream, err := openStream(ctx, r.collection)
	if err != nil {
		return nil, err
	}

	ch := make(chan models.CollectorChange)
	go func() {
		defer close(ch)
		defer stream.Close(context.Background())
		for stream.Next(ctx) {
			var ev struct {
				OperationType string            `bson:"operationType"`
				FullDocument  *models.Collector `bson:"fullDocument"`
				DocumentKey   documentKey       `bson:"documentKey"`
			}
			if err := stream.Decode(&ev); err != nil {
				continue
			}
			changeType, ok := changeTypeOf(ev.OperationType)
			if !ok {
				continue
			}
			change := models.CollectorChange{Type: changeType, ID: ev.DocumentKey.ID.Hex(), Collector: ev.FullDocument}
			select {
			case ch <- change:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}
