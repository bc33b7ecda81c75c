package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zerocycle/zerocycle-admin-backend/internal/models"
	"github.com/zerocycle/zerocycle-admin-backend/internal/services"
)

// NotificationHandler handles pickup notification generation.
type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// Generate handles POST /notifications/generate. It returns the composed
// message plus a wa.me link; nothing is sent from the backend.
func (h *NotificationHandler) Generate(c *gin.Context) {
	var req models.NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.notificationService.Generate(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
