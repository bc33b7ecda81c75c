package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zerocycle/zerocycle-admin-backend/internal/models"
	"github.com/zerocycle/zerocycle-admin-backend/internal/services"
)

// SettingsHandler handles the points configuration endpoints.
type SettingsHandler struct {
	settingsService *services.SettingsService
}

func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetPointsConfig handles GET /settings/points
func (h *SettingsHandler) GetPointsConfig(c *gin.Context) {
	cfg, err := h.settingsService.GetPointsConfig(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdatePointsConfig handles PUT /settings/points. The acting admin is taken
// from the JWT claims set by the auth middleware.
func (h *SettingsHandler) UpdatePointsConfig(c *gin.Context) {
	var req models.UpdatePointsConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pointsPerKg and ratePerPoint are required"})
		return
	}

	updatedBy := c.GetString("adminEmail")
	cfg, err := h.settingsService.UpdatePointsConfig(c.Request.Context(), &req, updatedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}
