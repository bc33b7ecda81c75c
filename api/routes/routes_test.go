package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/zerocycle/zerocycle-admin-backend/internal/config"
	"github.com/zerocycle/zerocycle-admin-backend/internal/handlers"
	"github.com/zerocycle/zerocycle-admin-backend/internal/utils"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiresIn = 3600
	cfg.Server.AllowedOrigins = []string{"http://localhost:3000"}

	// Service wiring is irrelevant here; these tests only exercise route
	// placement and the auth gate.
	return SetupRouter(cfg, zap.NewNop(), Handlers{
		Auth:         handlers.NewAuthHandler(nil),
		User:         handlers.NewUserHandler(nil),
		Collector:    handlers.NewCollectorHandler(nil),
		Notification: handlers.NewNotificationHandler(nil),
		Settings:     handlers.NewSettingsHandler(nil),
		Dashboard:    handlers.NewDashboardHandler(nil, nil),
	})
}

func TestHealthUnderVersionedPrefix(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/v1/health = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("GET /health = %d, want 404", rec.Code)
	}
}

func TestMetricsAtRoot(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics = %d, want 200", rec.Code)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{
		"/api/v1/users",
		"/api/v1/collectors",
		"/api/v1/dashboard/stats",
		"/api/v1/settings/points",
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token = %d, want 401", path, rec.Code)
		}
	}
}

func TestAdminRoutesAcceptValidToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiresIn = 3600

	router := newTestRouter(t)
	token, err := utils.GenerateJWT("admin-id", "admin@zerocycle.id", cfg)
	if err != nil {
		t.Fatal(err)
	}

	// A valid token must pass the gate; the nil-wired handler then panics,
	// which gin's recovery turns into a 500. Anything but 401 proves the
	// middleware accepted the token.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)
	if rec.Code == http.StatusUnauthorized {
		t.Fatalf("GET /api/v1/users with token = 401, want pass-through")
	}
}
