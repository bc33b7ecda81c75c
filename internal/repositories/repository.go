package repositories

import (
	"context"

	"github.com/zerocycle/zerocycle-admin-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository defines the interface for end-user data operations.
// Watch returns a channel of change events backed by the store's push
// subscription; it is closed when ctx is cancelled. Views depend only on
// this interface so the store collaborator can be substituted in tests.
type UserRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindAll(ctx context.Context) ([]*models.User, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.UserStatus) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	Watch(ctx context.Context) (<-chan models.UserChange, error)
}

// CollectorRepository defines the interface for collector data operations.
type CollectorRepository interface {
	Create(ctx context.Context, collector *models.Collector) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Collector, error)
	FindAll(ctx context.Context) ([]*models.Collector, error)
	FindByStatus(ctx context.Context, status models.CollectorStatus) ([]*models.Collector, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.CollectorStatus) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.CollectorStatus) (int64, error)
	Watch(ctx context.Context) (<-chan models.CollectorChange, error)
}

// AdminUserRepository defines the interface for admin account operations.
// Upsert keys on the email: seeding a fresh database and rotating the
// password are the same operation.
type AdminUserRepository interface {
	Upsert(ctx context.Context, admin *models.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
}

// PointsConfigRepository defines the interface for the points configuration
// singleton. Get returns the defaults when nothing has been saved yet.
type PointsConfigRepository interface {
	Get(ctx context.Context) (*models.PointsConfig, error)
	Update(ctx context.Context, cfg *models.PointsConfig) error
}
