package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zerocycle/zerocycle-admin-backend/internal/metrics"
	"github.com/zerocycle/zerocycle-admin-backend/internal/models"
	"github.com/zerocycle/zerocycle-admin-backend/internal/services"
)

// CollectorHandler handles collector lifecycle requests: the public
// self-registration endpoint plus the admin-side CRUD and approvals.
type CollectorHandler struct {
	collectorService *services.CollectorService
}

func NewCollectorHandler(collectorService *services.CollectorService) *CollectorHandler {
	return &CollectorHandler{collectorService: collectorService}
}

// Register handles POST /collectors/register. This endpoint is public: it is
// where collectors apply from the field, so every application starts in
// PENDING_CONFIRMATION regardless of the payload.
func (h *CollectorHandler) Register(c *gin.Context) {
	var req models.RegisterCollectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, location and contact are required"})
		return
	}

	collector, err := h.collectorService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, collector)
}

// Create handles POST /collectors. Admin-created collectors skip the
// confirmation queue and start ACTIVE.
func (h *CollectorHandler) Create(c *gin.Context) {
	var req models.RegisterCollectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, location and contact are required"})
		return
	}

	collector, err := h.collectorService.CreateActive(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, collector)
}

// GetCollectors handles GET /collectors with an optional ?status= filter.
func (h *CollectorHandler) GetCollectors(c *gin.Context) {
	if raw := c.Query("status"); raw != "" {
		status := models.CollectorStatus(raw)
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status filter", "field": "status"})
			return
		}
		collectors, err := h.collectorService.GetCollectorsByStatus(c.Request.Context(), status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"collectors": collectors, "total": len(collectors)})
		return
	}

	collectors, err := h.collectorService.GetAllCollectors(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"collectors": collectors, "total": len(collectors)})
}

// GetCollectorByID handles GET /collectors/:id
func (h *CollectorHandler) GetCollectorByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return
	}

	collector, err := h.collectorService.GetCollectorByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, collector)
}

// Approve handles POST /collectors/:id/approve
func (h *CollectorHandler) Approve(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return
	}

	if err := h.collectorService.Approve(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id.Hex(), "status": models.CollectorActive})
}

// Reject handles POST /collectors/:id/reject. Rejection removes the record
// permanently; the applicant may register again later.
func (h *CollectorHandler) Reject(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return
	}

	if err := h.collectorService.Reject(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rejected": id.Hex()})
}

type setCollectorActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetActive handles PATCH /collectors/:id/status, toggling an approved
// collector between ACTIVE and INACTIVE.
func (h *CollectorHandler) SetActive(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return
	}

	var req setCollectorActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "active is required"})
		return
	}

	if err := h.collectorService.SetActive(c.Request.Context(), id, *req.Active); err != nil {
		respondError(c, err)
		return
	}

	status := models.CollectorInactive
	if *req.Active {
		status = models.CollectorActive
	}
	c.JSON(http.StatusOK, gin.H{"id": id.Hex(), "status": status})
}

// Delete handles DELETE /collectors/:id
func (h *CollectorHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return
	}

	if err := h.collectorService.Remove(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id.Hex()})
}

// WatchCollectors handles GET /collectors/watch as a server-sent event
// stream, so the confirmation queue updates without polling.
func (h *CollectorHandler) WatchCollectors(c *gin.Context) {
	changes, err := h.collectorService.Watch(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	metrics.WatchSubscriptions.Inc()
	defer metrics.WatchSubscriptions.Dec()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		change, ok := <-changes
		if !ok {
			return false
		}
		c.SSEvent("change", change)
		return true
	})
}
