package services

import (
	"context"

	"github.com/zerocycle/zerocycle-admin-backend/internal/apperrors"
	"github.com/zerocycle/zerocycle-admin-backend/internal/models"
	"github.com/zerocycle/zerocycle-admin-backend/internal/repositories"
)

// SettingsService manages the points configuration singleton.
type SettingsService struct {
	settingsRepo repositories.PointsConfigRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settingsRepo repositories.PointsConfigRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// GetPointsConfig returns the current configuration, falling back to the
// launch defaults when nothing has been saved yet.
func (s *SettingsService) GetPointsConfig(ctx context.Context) (*models.PointsConfig, error) {
	return s.settingsRepo.Get(ctx)
}

// UpdatePointsConfig validates and persists the configuration. updatedBy is
// the acting admin's email.
func (s *SettingsService) UpdatePointsConfig(ctx context.Context, req *models.UpdatePointsConfigRequest, updatedBy string) (*models.PointsConfig, error) {
	if req.PointsPerKg <= 0 {
		return nil, apperrors.Validation("pointsPerKg", "points per kg must be positive")
	}
	if req.RatePerPoint <= 0 {
		return nil, apperrors.Validation("ratePerPoint", "rate per point must be positive")
	}
	cfg := &models.PointsConfig{
		PointsPerKg:  req.PointsPerKg,
		RatePerPoint: req.RatePerPoint,
		UpdatedBy:    updatedBy,
	}
	if err := s.settingsRepo.Update(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
