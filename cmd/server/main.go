package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	_ "github.com/tutorhub/tutorhub-api/api/swagger"
	"github.com/tutorhub/tutorhub-api/internal/handler"
	"github.com/tutorhub/tutorhub-api/internal/middleware"
	"github.com/tutorhub/tutorhub-api/internal/models"
	"github.com/tutorhub/tutorhub-api/internal/repository"
	"github.com/tutorhub/tutorhub-api/internal/service"
	"github.com/tutorhub/tutorhub-api/pkg/cache"
	"github.com/tutorhub/tutorhub-api/pkg/config"
	"github.com/tutorhub/tutorhub-api/pkg/database"
	"github.com/tutorhub/tutorhub-api/pkg/logger"
)

// @title TutorHub API
// @version 0.1.0
// @description Tutoring platform backend
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	metricsService := service.NewMetricsService()

	var cacheService *service.CacheService
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, list cache disabled", "error", err)
		} else {
			defer redisClient.Close()
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheService = service.NewCacheService(cacheRepo, metricsService, cfg.Cache.TTL, logr, true)
		}
	}

	userRepo := repository.NewUserRepository(db)
	tutorRepo := repository.NewTutorRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	materialRepo := repository.NewMaterialRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	authSessionRepo := repository.NewAuthSessionRepository(db)

	creds := service.NewStaticCredentialStore([]service.Account{
		{Email: cfg.Demo.StudentEmail, Password: cfg.Demo.StudentPassword, FirstName: "Gnaneswari", LastName: "Kandregula", Role: models.RoleStudent},
		{Email: cfg.Demo.AdminEmail, Password: cfg.Demo.AdminPassword, FirstName: "Admin", LastName: "User", Role: models.RoleAdmin},
	})

	authService := service.NewAuthService(userRepo, authSessionRepo, creds, nil, logr, service.AuthConfig{
		SessionTTL: cfg.Session.TTL,
		JWTSecret:  cfg.JWT.Secret,
	})
	tutorService := service.NewTutorService(tutorRepo, cacheService, nil, logr)
	sessionService := service.NewSessionService(sessionRepo, tutorRepo, userRepo, nil, logr)
	materialService := service.NewMaterialService(materialRepo, userRepo, cacheService, nil, logr)
	videoService := service.NewVideoService(videoRepo, userRepo, tutorRepo, cacheService, nil, logr)
	feedbackService := service.NewFeedbackService(feedbackRepo, userRepo, nil, logr)
	userService := service.NewUserService(userRepo, tutorRepo, sessionRepo, logr)
	exportService := service.NewExportService(sessionService, userService, logr)

	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			authService.PurgeExpired(context.Background())
		}
	}()

	engine := handler.NewEngine(handler.RouterDeps{
		Config:  cfg,
		Logger:  logr,
		Auth:    authService,
		Metrics: metricsService,
		Resolvers: []middleware.IdentityResolver{
			middleware.NewSessionResolver(authService, cfg.Session.CookieName),
			middleware.NewBearerResolver(authService),
		},
		AuthHandler:     handler.NewAuthHandler(authService, cfg.Session),
		TutorHandler:    handler.NewTutorHandler(tutorService),
		SessionHandler:  handler.NewSessionHandler(sessionService),
		MaterialHandler: handler.NewMaterialHandler(materialService),
		VideoHandler:    handler.NewVideoHandler(videoService),
		FeedbackHandler: handler.NewFeedbackHandler(feedbackService),
		AdminHandler:    handler.NewAdminHandler(userService, sessionService),
		ExportHandler:   handler.NewExportHandler(exportService),
		MetricsHandler:  handler.NewMetricsHandler(metricsService),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := engine.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
