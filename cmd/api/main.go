package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/zerocycle/zerocycle-admin-backend/api/routes"
	"github.com/zerocycle/zerocycle-admin-backend/internal/config"
	"github.com/zerocycle/zerocycle-admin-backend/internal/handlers"
	"github.com/zerocycle/zerocycle-admin-backend/internal/logging"
	mongorepo "github.com/zerocycle/zerocycle-admin-backend/internal/repositories/mongodb"
	"github.com/zerocycle/zerocycle-admin-backend/internal/services"
	"github.com/zerocycle/zerocycle-admin-backend/pkg/mongodb"
	"github.com/zerocycle/zerocycle-admin-backend/pkg/textgen"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logg.Closer()
	logger := logg.Base

	client, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.Warn("failed to disconnect from MongoDB", zap.Error(err))
		}
	}()

	db := client.Database(cfg.MongoDB.Database)

	userRepo := mongorepo.NewUserRepository(db)
	collectorRepo := mongorepo.NewCollectorRepository(db)
	adminRepo := mongorepo.NewAdminUserRepository(db)
	pointsRepo := mongorepo.NewPointsConfigRepository(db)

	generator := textgen.NewClient(cfg)

	authService := services.NewAuthService(adminRepo, cfg)
	userService := services.NewUserService(userRepo)
	collectorService := services.NewCollectorService(collectorRepo)
	notificationService := services.NewNotificationService(pointsRepo, generator, logger)
	settingsService := services.NewSettingsService(pointsRepo)

	router := routes.SetupRouter(cfg, logger, routes.Handlers{
		Auth:         handlers.NewAuthHandler(authService),
		User:         handlers.NewUserHandler(userService),
		Collector:    handlers.NewCollectorHandler(collectorService),
		Notification: handlers.NewNotificationHandler(notificationService),
		Settings:     handlers.NewSettingsHandler(settingsService),
		Dashboard:    handlers.NewDashboardHandler(userService, collectorService),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Server.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
