package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/wYibin/miniweibo/internal/handlers"
	"github.com/wYibin/miniweibo/internal/middleware"
	"github.com/wYibin/miniweibo/internal/models"
	"github.com/wYibin/miniweibo/internal/repositories"
	"github.com/wYibin/miniweibo/internal/services"
	"github.com/wYibin/miniweibo/pkg/config"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Message{},
	); err != nil {
		return err
	}
	log.Println("Auto-migrations completed.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Repositories ---
	userRepo := repositories.NewGormUserRepository(db)
	followRepo := repositories.NewGormFollowRepository(db)
	messageRepo := repositories.NewGormMessageRepository(db)

	// --- Services ---
	authService := services.NewAuthService(db, userRepo, cfg.JWTSecret)
	followService := services.NewFollowService(db, userRepo, followRepo)
	messageService := services.NewMessageService(db)
	timelineService := services.NewTimelineService(userRepo, followRepo, messageRepo)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	followHandler := handlers.NewFollowHandler(followService)
	messageHandler := handlers.NewMessageHandler(messageService)
	timelineHandler := handlers.NewTimelineHandler(timelineService)

	api := e.Group("/api/v1")

	authGroup := api.Group("/auth")
	authHandler.RegisterAuthRoutes(authGroup)

	// Public and author timelines admit anonymous viewers.
	public := api.Group("", middleware.OptionalJWTAuth(cfg.JWTSecret))
	timelineHandler.RegisterPublicTimelineRoutes(public)

	// Personal timeline, posting and follow mutations need a viewer identity.
	authed := api.Group("", middleware.JWTAuth(cfg.JWTSecret))
	timelineHandler.RegisterAuthedTimelineRoutes(authed)
	followHandler.RegisterFollowRoutes(authed)
	messageHandler.RegisterMessageRoutes(authed)

	return nil
}
