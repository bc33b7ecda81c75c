package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/zerocycle/zerocycle-admin-backend/internal/apperrors"
	"github.com/zerocycle/zerocycle-admin-backend/internal/models"
	"github.com/zerocycle/zerocycle-admin-backend/internal/points"
	"github.com/zerocycle/zerocycle-admin-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The points configuration lives in a single well-known document.
const pointsConfigKey = "points_config"

// Compile-time check to ensure PointsConfigRepository implements the interface
var _ repositories.PointsConfigRepository = (*PointsConfigRepository)(nil)

// PointsConfigRepository handles MongoDB operations for the settings singleton
type PointsConfigRepository struct {
	collection *mongo.Collection
}

// NewPointsConfigRepository creates a new PointsConfigRepository
func NewPointsConfigRepository(db *mongo.Database) *PointsConfigRepository {
	return &PointsConfigRepository{
		collection: db.Collection("settings"),
	}
}

// Get returns the stored points configuration, or the launch defaults when
// nothing has been saved yet.
func (r *PointsConfigRepository) Get(ctx context.Context) (*models.PointsConfig, error) {
	var cfg models.PointsConfig
	err := r.collection.FindOne(ctx, bson.M{"key": pointsConfigKey}).Decode(&cfg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &models.PointsConfig{
				PointsPerKg:  points.DefaultPointsPerKg,
				RatePerPoint: points.DefaultRatePerPoint,
			}, nil
		}
		return nil, apperrors.Unavailable(err)
	}
	return &cfg, nil
}

// Update upserts the points configuration singleton
func (r *PointsConfigRepository) Update(ctx context.Context, cfg *models.PointsConfig) error {
	cfg.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"pointsPerKg":  cfg.PointsPerKg,
		"ratePerPoint": cfg.RatePerPoint,
		"updatedAt":    cfg.UpdatedAt,
		"updatedBy":    cfg.UpdatedBy,
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, bson.M{"key": pointsConfigKey}, update, opts); err != nil {
		return apperrors.Unavailable(err)
	}
	return nil
}
