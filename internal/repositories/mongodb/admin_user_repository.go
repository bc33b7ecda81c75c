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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure AdminUserRepository implements the interface
var _ repositories.AdminUserRepository = (*AdminUserRepository)(nil)

// AdminUserRepository handles MongoDB operations for AdminUser
type AdminUserRepository struct {
	collection *mongo.Collection
}

// NewAdminUserRepository creates a new AdminUserRepository
func NewAdminUserRepository(db *mongo.Database) *AdminUserRepository {
	return &AdminUserRepository{
		collection: db.Collection("admin_users"),
	}
}

// Upsert writes the admin account keyed by email, creating it on first use
// and replacing name and password hash on subsequent runs.
func (r *AdminUserRepository) Upsert(ctx context.Context, admin *models.AdminUser) error {
	now := time.Now()
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"email": admin.Email},
		bson.M{
			"$set": bson.M{
				"name":      admin.Name,
				"password":  admin.Password,
				"updatedAt": now,
			},
			"$setOnInsert": bson.M{
				"email":     admin.Email,
				"createdAt": now,
			},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return apperrors.Unavailable(err)
	}
	if id, ok := res.UpsertedID.(primitive.ObjectID); ok {
		admin.ID = id
	}
	admin.UpdatedAt = now
	return nil
}

// FindByEmail finds an admin user by email
func (r *AdminUserRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Unavailable(err)
	}
	return &admin, nil
}
