package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zerocycle/zerocycle-admin-backend/internal/models"
	"github.com/zerocycle/zerocycle-admin-backend/internal/services"
)

// DashboardHandler serves the aggregate counters shown on the dashboard
// landing page.
type DashboardHandler struct {
	userService      *services.UserService
	collectorService *services.CollectorService
}

func NewDashboardHandler(userService *services.UserService, collectorService *services.CollectorService) *DashboardHandler {
	return &DashboardHandler{userService: userService, collectorService: collectorService}
}

// GetStats handles GET /dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.userService.CountUsers(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	collectors, err := h.collectorService.CountCollectors(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	pending, err := h.collectorService.CountCollectorsByStatus(ctx, models.CollectorPendingConfirmation)
	if err != nil {
		respondError(c, err)
		return
	}
	active, err := h.collectorService.CountCollectorsByStatus(ctx, models.CollectorActive)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalUsers":        users,
		"totalCollectors":   collectors,
		"pendingCollectors": pending,
		"activeCollectors":  active,
	})
}
