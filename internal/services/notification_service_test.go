package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/zerocycle/zerocycle-admin-backend/internal/apperrors"
	"github.com/zerocycle/zerocycle-admin-backend/internal/models"
	"github.com/zerocycle/zerocycle-admin-backend/pkg/textgen"
	"go.uber.org/zap"
)

// renderGenerator renders the template locally, like the client's mock mode.
type renderGenerator struct{}

func (renderGenerator) GeneratePickupNotification(ctx context.Context, lang string, in textgen.PickupNotificationInput) (string, error) {
	return textgen.RenderPrompt(lang, in)
}

// failingGenerator simulates an unreachable collaborator.
type failingGenerator struct{}

func (failingGenerator) GeneratePickupNotification(ctx context.Context, lang string, in textgen.PickupNotificationInput) (string, error) {
	return "", errors.New("quota exceeded")
}

func validNotification() *models.NotificationRequest {
	return &models.NotificationRequest{
		UserName:      "Budi",
		PhoneNumber:   "+62 812 3456 7890",
		PickupDate:    "2026-09-01",
		PickupTime:    "09:30",
		WasteType:     models.WasteTypeMixed,
		WasteAmountKg: 5,
	}
}

func newNotificationService(gen textgen.Generator) *NotificationService {
	return NewNotificationService(&memPointsConfigRepo{}, gen, zap.NewNop())
}

func TestGenerateDerivesPointsAndMessage(t *testing.T) {
	svc := newNotificationService(renderGenerator{})

	result, err := svc.Generate(context.Background(), validNotification())
	if err != nil {
		t.Fatal(err)
	}
	if result.PointsEarned != 10 {
		t.Fatalf("pointsEarned = %v, want 10", result.PointsEarned)
	}
	for _, want := range []string{"Budi", "10", "500", "IDR"} {
		if !strings.Contains(result.Message, want) {
			t.Errorf("message missing %q:\n%s", want, result.Message)
		}
	}
	if !strings.HasPrefix(result.WhatsAppLink, "https://wa.me/6281234567890?text=") {
		t.Fatalf("unexpected deep link: %s", result.WhatsAppLink)
	}
	if result.Currency != "IDR" || result.ExchangeRate != 500 {
		t.Fatalf("currency/rate = %s/%d, want IDR/500", result.Currency, result.ExchangeRate)
	}
}

func TestGenerateUsesPersistedConfig(t *testing.T) {
	settings := &memPointsConfigRepo{}
	if err := settings.Update(context.Background(), &models.PointsConfig{PointsPerKg: 3, RatePerPoint: 1000}); err != nil {
		t.Fatal(err)
	}
	svc := NewNotificationService(settings, renderGenerator{}, zap.NewNop())

	result, err := svc.Generate(context.Background(), validNotification())
	if err != nil {
		t.Fatal(err)
	}
	if result.PointsEarned != 15 {
		t.Fatalf("pointsEarned = %v, want 15 (5 kg * 3)", result.PointsEarned)
	}
	if result.ExchangeRate != 1000 {
		t.Fatalf("exchangeRate = %d, want 1000", result.ExchangeRate)
	}
}

func TestGenerateEnglishVariant(t *testing.T) {
	svc := newNotificationService(renderGenerator{})
	req := validNotification()
	req.Language = "en"

	result, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(result.Message, "Dear Budi") {
		t.Fatalf("expected english greeting:\n%s", result.Message)
	}
}

func TestGenerateValidation(t *testing.T) {
	svc := newNotificationService(renderGenerator{})
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*models.NotificationRequest)
		field  string
	}{
		{"empty name", func(r *models.NotificationRequest) { r.UserName = "  " }, "userName"},
		{"empty date", func(r *models.NotificationRequest) { r.PickupDate = "" }, "pickupDate"},
		{"empty time", func(r *models.NotificationRequest) { r.PickupTime = "" }, "pickupTime"},
		{"empty waste type", func(r *models.NotificationRequest) { r.WasteType = "" }, "wasteType"},
		{"tiny amount", func(r *models.NotificationRequest) { r.WasteAmountKg = 0.05 }, "wasteAmountKg"},
		{"zero amount", func(r *models.NotificationRequest) { r.WasteAmountKg = 0 }, "wasteAmountKg"},
		{"short phone", func(r *models.NotificationRequest) { r.PhoneNumber = "123" }, "phoneNumber"},
		{"alpha phone", func(r *models.NotificationRequest) { r.PhoneNumber = "abc1234567890" }, "phoneNumber"},
		{"bad language", func(r *models.NotificationRequest) { r.Language = "fr" }, "language"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validNotification()
			tc.mutate(req)
			_, err := svc.Generate(ctx, req)
			var verr *apperrors.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("field = %s, want %s", verr.Field, tc.field)
			}
		})
	}
}

func TestGenerateCollaboratorFailure(t *testing.T) {
	svc := newNotificationService(failingGenerator{})

	_, err := svc.Generate(context.Background(), validNotification())
	if !errors.Is(err, apperrors.ErrGenerationFailed) {
		t.Fatalf("got %v, want ErrGenerationFailed", err)
	}
}

func TestGenerateAcceptsFreeTextWasteType(t *testing.T) {
	svc := newNotificationService(renderGenerator{})
	req := validNotification()
	req.WasteType = "Elektronik"

	result, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(result.Message, "Elektronik") {
		t.Fatalf("free-text waste type missing from message:\n%s", result.Message)
	}
}
