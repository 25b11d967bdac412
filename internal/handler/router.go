package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/tutorhub/tutorhub-api/internal/middleware"
	"github.com/tutorhub/tutorhub-api/internal/service"
	"github.com/tutorhub/tutorhub-api/pkg/config"
	"github.com/tutorhub/tutorhub-api/pkg/logger"
	corsmiddleware "github.com/tutorhub/tutorhub-api/pkg/middleware/cors"
	reqidmiddleware "github.com/tutorhub/tutorhub-api/pkg/middleware/requestid"
)

// RouterDeps carries everything the HTTP surface needs.
type RouterDeps struct {
	Config    *config.Config
	Logger    *zap.Logger
	Auth      *service.AuthService
	Metrics   *service.MetricsService
	Resolvers []middleware.IdentityResolver

	AuthHandler     *AuthHandler
	TutorHandler    *TutorHandler
	SessionHandler  *SessionHandler
	MaterialHandler *MaterialHandler
	VideoHandler    *VideoHandler
	FeedbackHandler *FeedbackHandler
	AdminHandler    *AdminHandler
	ExportHandler   *ExportHandler
	MetricsHandler  *MetricsHandler
}

// NewEngine assembles the gin engine: ambient middleware, operational
// endpoints, and the API route tree with its auth gates.
func NewEngine(deps RouterDeps) *gin.Engine {
	cfg := deps.Config

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(deps.Logger))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(deps.Metrics))

	r.GET("/health", deps.MetricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", deps.MetricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.Identity(deps.Resolvers...))

	auth := api.Group("/auth")
	{
		auth.POST("/login", deps.AuthHandler.Login)
		auth.POST("/logout", deps.AuthHandler.Logout)
		auth.GET("/user", deps.AuthHandler.CurrentUser)
	}

	authed := api.Group("")
	authed.Use(middleware.RequireAuth(deps.Auth))

	admin := authed.Group("")
	admin.Use(middleware.RequireAdmin())

	tutors := authed.Group("/tutors")
	{
		tutors.GET("", deps.TutorHandler.List)
		tutors.GET("/:id", deps.TutorHandler.Get)
	}
	adminTutors := admin.Group("/tutors")
	{
		adminTutors.POST("", deps.TutorHandler.Create)
		adminTutors.PUT("/:id", deps.TutorHandler.Update)
		adminTutors.DELETE("/:id", deps.TutorHandler.Delete)
	}

	sessions := authed.Group("/sessions")
	{
		sessions.GET("", deps.SessionHandler.List)
		sessions.GET("/upcoming", deps.SessionHandler.Upcoming)
		sessions.GET("/stats", deps.SessionHandler.Stats)
		sessions.POST("", deps.SessionHandler.Create)
		sessions.PUT("/:id", deps.SessionHandler.Update)
	}

	materials := authed.Group("/materials")
	{
		materials.GET("", deps.MaterialHandler.List)
		materials.GET("/:id", deps.MaterialHandler.Get)
	}
	adminMaterials := admin.Group("/materials")
	{
		adminMaterials.POST("", deps.MaterialHandler.Create)
		adminMaterials.DELETE("/:id", deps.MaterialHandler.Delete)
	}

	videos := authed.Group("/videos")
	{
		videos.GET("", deps.VideoHandler.List)
		videos.GET("/:id", deps.VideoHandler.Get)
	}
	adminVideos := admin.Group("/videos")
	{
		adminVideos.POST("", deps.VideoHandler.Create)
		adminVideos.DELETE("/:id", deps.VideoHandler.Delete)
	}

	feedback := authed.Group("/feedback")
	{
		feedback.GET("", deps.FeedbackHandler.List)
		feedback.GET("/:id", deps.FeedbackHandler.Get)
		feedback.POST("", deps.FeedbackHandler.Create)
	}
	adminFeedback := admin.Group("/feedback")
	{
		adminFeedback.GET("/stats", deps.FeedbackHandler.Stats)
		adminFeedback.PUT("/:id", deps.FeedbackHandler.Update)
		adminFeedback.DELETE("/:id", deps.FeedbackHandler.Delete)
	}

	dashboard := admin.Group("/admin")
	{
		dashboard.GET("/stats", deps.AdminHandler.Stats)
		dashboard.GET("/students", deps.AdminHandler.ListUsers)
		dashboard.GET("/sessions", deps.AdminHandler.ListSessions)
		dashboard.PUT("/users/:id/role", deps.AdminHandler.UpdateUserRole)
		dashboard.GET("/export/sessions", deps.ExportHandler.Sessions)
		dashboard.GET("/export/students", deps.ExportHandler.Students)
	}

	return r
}
