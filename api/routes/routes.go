package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zerocycle/zerocycle-admin-backend/internal/config"
	"github.com/zerocycle/zerocycle-admin-backend/internal/handlers"
	"github.com/zerocycle/zerocycle-admin-backend/internal/metrics"
	"github.com/zerocycle/zerocycle-admin-backend/internal/middleware"
)

// Handlers bundles the constructed handlers for router wiring.
type Handlers struct {
	Auth         *handlers.AuthHandler
	User         *handlers.UserHandler
	Collector    *handlers.CollectorHandler
	Notification *handlers.NotificationHandler
	Settings     *handlers.SettingsHandler
	Dashboard    *handlers.DashboardHandler
}

// SetupRouter builds the gin engine with the full middleware chain and the
// public and protected route groups.
func SetupRouter(cfg *config.Config, log *zap.Logger, h Handlers) *gin.Engine {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.MetricsMiddleware())

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Public routes. Self-registration stays open so collectors can apply
	// from the field without an admin account.
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		public.POST("/auth/login", h.Auth.Login)
		public.POST("/collectors/register", h.Collector.Register)
	}

	api := router.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg, log))
	{
		users := api.Group("/users")
		{
			users.GET("", h.User.GetUsers)
			users.GET("/watch", h.User.WatchUsers)
			users.GET("/:id", h.User.GetUserByID)
			users.PATCH("/:id/status", h.User.UpdateUserStatus)
			users.DELETE("/:id", h.User.DeleteUser)
		}

		collectors := api.Group("/collectors")
		{
			collectors.GET("", h.Collector.GetCollectors)
			collectors.POST("", h.Collector.Create)
			collectors.GET("/watch", h.Collector.WatchCollectors)
			collectors.GET("/:id", h.Collector.GetCollectorByID)
			collectors.POST("/:id/approve", h.Collector.Approve)
			collectors.POST("/:id/reject", h.Collector.Reject)
			collectors.PATCH("/:id/status", h.Collector.SetActive)
			collectors.DELETE("/:id", h.Collector.Delete)
		}

		api.POST("/notifications/generate", h.Notification.Generate)

		settings := api.Group("/settings")
		{
			settings.GET("/points", h.Settings.GetPointsConfig)
			settings.PUT("/points", h.Settings.UpdatePointsConfig)
		}

		api.GET("/dashboard/stats", h.Dashboard.GetStats)
	}

	return router
}
