package services

import (
	"context"
	"strings"

	"github.com/zerocycle/zerocycle-admin-backend/internal/apperrors"
	"github.com/zerocycle/zerocycle-admin-backend/internal/metrics"
	"github.com/zerocycle/zerocycle-admin-backend/internal/models"
	"github.com/zerocycle/zerocycle-admin-backend/internal/points"
	"github.com/zerocycle/zerocycle-admin-backend/internal/repositories"
	"github.com/zerocycle/zerocycle-admin-backend/internal/utils"
	"github.com/zerocycle/zerocycle-admin-backend/pkg/textgen"
	"github.com/zerocycle/zerocycle-admin-backend/pkg/whatsapp"
	"go.uber.org/zap"
)

// NotificationService assembles pickup notifications: validate the request,
// derive points from the persisted configuration, hand the fixed template to
// the text-generation collaborator and return the message with its wa.me deep
// link. Nothing is persisted and nothing is retried automatically.
type NotificationService struct {
	settingsRepo repositories.PointsConfigRepository
	generator    textgen.Generator
	log          *zap.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(settingsRepo repositories.PointsConfigRepository, generator textgen.Generator, log *zap.Logger) *NotificationService {
	return &NotificationService{
		settingsRepo: settingsRepo,
		generator:    generator,
		log:          log,
	}
}

// Generate builds the notification message for one operator submission.
// Validation failures name the offending field and nothing is submitted;
// collaborator failures surface as ErrGenerationFailed and the operator may
// resubmit manually.
func (s *NotificationService) Generate(ctx context.Context, req *models.NotificationRequest) (*models.NotificationResult, error) {
	if req.Language == "" {
		req.Language = textgen.LanguageIndonesian
	}
	if err := validateNotificationRequest(req); err != nil {
		return nil, err
	}

	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	earned, err := points.Compute(req.WasteAmountKg, cfg.PointsPerKg)
	if err != nil {
		return nil, err
	}

	input := textgen.PickupNotificationInput{
		UserName:      req.UserName,
		PickupDate:    req.PickupDate,
		PickupTime:    req.PickupTime,
		WasteType:     req.WasteType,
		WasteAmountKg: req.WasteAmountKg,
		PointsEarned:  earned,
		Currency:      points.DefaultCurrency,
		ExchangeRate:  cfg.RatePerPoint,
		PhoneNumber:   req.PhoneNumber,
	}

	message, err := s.generator.GeneratePickupNotification(ctx, req.Language, input)
	if err != nil {
		s.log.Warn("pickup notification generation failed",
			zap.String("userName", req.UserName), zap.Error(err))
		return nil, apperrors.GenerationFailed(err)
	}

	metrics.NotificationsGenerated.Inc()
	return &models.NotificationResult{
		Message:      message,
		WhatsAppLink: whatsapp.DeepLink(req.PhoneNumber, message),
		PointsEarned: earned,
		ExchangeRate: cfg.RatePerPoint,
		Currency:     points.DefaultCurrency,
	}, nil
}

func validateNotificationRequest(req *models.NotificationRequest) error {
	if strings.TrimSpace(req.UserName) == "" {
		return apperrors.Validation("userName", "user name is required")
	}
	if strings.TrimSpace(req.PickupDate) == "" {
		return apperrors.Validation("pickupDate", "pickup date is required")
	}
	if strings.TrimSpace(req.PickupTime) == "" {
		return apperrors.Validation("pickupTime", "pickup time is required")
	}
	if strings.TrimSpace(req.WasteType) == "" {
		return apperrors.Validation("wasteType", "waste type is required")
	}
	if req.WasteAmountKg < 0.1 {
		return apperrors.Validation("wasteAmountKg", "waste amount must be at least 0.1 kg")
	}
	if !utils.ValidPhoneNumber(req.PhoneNumber) {
		return apperrors.Validation("phoneNumber", "invalid phone number")
	}
	if !textgen.SupportedLanguage(req.Language) {
		return apperrors.Validation("language", "language must be id or en")
	}
	return nil
}
