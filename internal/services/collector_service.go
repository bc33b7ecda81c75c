package services

import (
	"context"

	"github.com/zerocycle/zerocycle-admin-backend/internal/apperrors"
	"github.com/zerocycle/zerocycle-admin-backend/internal/models"
	"github.com/zerocycle/zerocycle-admin-backend/internal/repositories"
	"github.com/zerocycle/zerocycle-admin-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectorService owns the collector lifecycle:
//
//	PENDING_CONFIRMATION --Approve--> ACTIVE
//	PENDING_CONFIRMATION --Reject--> deleted
//	ACTIVE <--SetActive--> INACTIVE
//	ACTIVE/INACTIVE --Remove--> deleted
//
// Deletion is terminal. Concurrent admin edits are last-write-wins at the
// store's granularity; there is no optimistic locking.
type CollectorService struct {
	collectorRepo repositories.CollectorRepository
}

// NewCollectorService creates a new CollectorService
func NewCollectorService(collectorRepo repositories.CollectorRepository) *CollectorService {
	return &CollectorService{
		collectorRepo: collectorRepo,
	}
}

// Register handles public self-registration. The record always starts at
// PENDING_CONFIRMATION regardless of what the caller sends.
func (s *CollectorService) Register(ctx context.Context, req *models.RegisterCollectorRequest) (*models.Collector, error) {
	if err := validateCollectorRequest(req); err != nil {
		return nil, err
	}
	collector := &models.Collector{
		Name:     req.Name,
		Location: req.Location,
		Contact:  req.Contact,
		Status:   models.CollectorPendingConfirmation,
	}
	if err := s.collectorRepo.Create(ctx, collector); err != nil {
		return nil, err
	}
	return collector, nil
}

// CreateActive handles admin direct-create; the record starts ACTIVE with no
// confirmation step.
func (s *CollectorService) CreateActive(ctx context.Context, req *models.RegisterCollectorRequest) (*models.Collector, error) {
	if err := validateCollectorRequest(req); err != nil {
		return nil, err
	}
	collector := &models.Collector{
		Name:     req.Name,
		Location: req.Location,
		Contact:  req.Contact,
		Status:   models.CollectorActive,
	}
	if err := s.collectorRepo.Create(ctx, collector); err != nil {
		return nil, err
	}
	return collector, nil
}

func validateCollectorRequest(req *models.RegisterCollectorRequest) error {
	if len(req.Name) < 3 {
		return apperrors.Validation("name", "name must be at least 3 characters")
	}
	if len(req.Location) < 5 {
		return apperrors.Validation("location", "location must be at least 5 characters")
	}
	if !utils.ValidPhoneNumber(req.Contact) {
		return apperrors.Validation("contact", "invalid phone number")
	}
	return nil
}

// GetCollectorByID retrieves a collector by ID
func (s *CollectorService) GetCollectorByID(ctx context.Context, id primitive.ObjectID) (*models.Collector, error) {
	return s.collectorRepo.FindByID(ctx, id)
}

// GetAllCollectors retrieves all collectors
func (s *CollectorService) GetAllCollectors(ctx context.Context) ([]*models.Collector, error) {
	return s.collectorRepo.FindAll(ctx)
}

// GetCollectorsByStatus retrieves collectors with the given status
func (s *CollectorService) GetCollectorsByStatus(ctx context.Context, status models.CollectorStatus) ([]*models.Collector, error) {
	if !status.IsValid() {
		return nil, apperrors.Validation("status", "unknown collector status")
	}
	return s.collectorRepo.FindByStatus(ctx, status)
}

// Approve moves a pending collector to ACTIVE. Approving a collector that is
// not pending fails with ErrInvalidTransition.
func (s *CollectorService) Approve(ctx context.Context, id primitive.ObjectID) error {
	collector, err := s.collectorRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if collector.Status != models.CollectorPendingConfirmation {
		return apperrors.ErrInvalidTransition
	}
	return s.collectorRepo.UpdateStatus(ctx, id, models.CollectorActive)
}

// Reject removes a pending collector permanently. There is no stored
// REJECTED status.
func (s *CollectorService) Reject(ctx context.Context, id primitive.ObjectID) error {
	collector, err := s.collectorRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if collector.Status != models.CollectorPendingConfirmation {
		return apperrors.ErrInvalidTransition
	}
	return s.collectorRepo.Delete(ctx, id)
}

// SetActive toggles an approved collector between ACTIVE and INACTIVE.
// Setting the status the record already has succeeds without error; a
// pending collector must go through Approve instead.
func (s *CollectorService) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	collector, err := s.collectorRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if collector.Status == models.CollectorPendingConfirmation {
		return apperrors.ErrInvalidTransition
	}
	status := models.CollectorInactive
	if active {
		status = models.CollectorActive
	}
	return s.collectorRepo.UpdateStatus(ctx, id, status)
}

// Remove deletes a collector permanently, whatever its status.
func (s *CollectorService) Remove(ctx context.Context, id primitive.ObjectID) error {
	return s.collectorRepo.Delete(ctx, id)
}

// CountCollectors returns the total number of collectors
func (s *CollectorService) CountCollectors(ctx context.Context) (int64, error) {
	return s.collectorRepo.Count(ctx)
}

// CountCollectorsByStatus returns the number of collectors with the given status
func (s *CollectorService) CountCollectorsByStatus(ctx context.Context, status models.CollectorStatus) (int64, error) {
	return s.collectorRepo.CountByStatus(ctx, status)
}

// Watch subscribes to live changes on the collectors collection
func (s *CollectorService) Watch(ctx context.Context) (<-chan models.CollectorChange, error) {
	return s.collectorRepo.Watch(ctx)
}
