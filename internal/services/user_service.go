package services

import (
	"context"

	"github.com/zerocycle/zerocycle-admin-backend/internal/apperrors"
	"github.com/zerocycle/zerocycle-admin-backend/internal/models"
	"github.com/zerocycle/zerocycle-admin-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService handles end-user account management. Accounts are created by
// the mobile app; the admin side toggles status or deletes, nothing else.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// GetAllUsers retrieves all users
func (s *UserService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.FindAll(ctx)
}

// SetStatus toggles a user between ACTIVE and BLOCKED. Setting the status
// the record already has succeeds without error.
func (s *UserService) SetStatus(ctx context.Context, id primitive.ObjectID, status models.UserStatus) error {
	if !status.IsValid() {
		return apperrors.Validation("status", "status must be ACTIVE or BLOCKED")
	}
	return s.userRepo.UpdateStatus(ctx, id, status)
}

// DeleteUser removes a user permanently
func (s *UserService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	return s.userRepo.Delete(ctx, id)
}

// CountUsers returns the total number of users
func (s *UserService) CountUsers(ctx context.Context) (int64, error) {
	return s.userRepo.Count(ctx)
}

// Watch subscribes to live changes on the users collection
func (s *UserService) Watch(ctx context.Context) (<-chan models.UserChange, error) {
	return s.userRepo.Watch(ctx)
}
