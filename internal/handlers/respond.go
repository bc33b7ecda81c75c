package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zerocycle/zerocycle-admin-backend/internal/apperrors"
)

// respondError maps the service error taxonomy to HTTP in one place. Every
// failure returns control to the dashboard with an actionable message; none
// is fatal.
func respondError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case errors.Is(err, apperrors.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "action is not valid for the record's current status"})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		// Fixed message regardless of cause, so the response never reveals
		// which field was wrong.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect email or password"})
	case errors.Is(err, apperrors.ErrGenerationFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to generate notification message, please try again"})
	case errors.Is(err, apperrors.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database is unreachable, please try again"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
