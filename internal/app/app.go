package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"iconsherald/database"
	"iconsherald/internal/auth"
	"iconsherald/internal/config"
	"iconsherald/internal/email"
	"iconsherald/internal/handlers"
	"iconsherald/internal/logger"
	"iconsherald/internal/middleware"
	"iconsherald/internal/models"
	"iconsherald/internal/payments"
	"iconsherald/internal/render"
	"iconsherald/internal/repositories"
	"iconsherald/internal/routes"
	"iconsherald/internal/services"
	"iconsherald/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected", "driver", cfg.Database.Driver)

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstSuperAdmin(db); err != nil {
		logger.Fatal("Failed to seed first super admin", "error", err)
	}

	router, err := SetupRouter(cfg, db)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires the full dependency graph and returns the engine.
// Split out from Run so tests can build a router over their own database.
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	repos := repositories.NewRepositoryContainer(db)
	tokens := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL)
	gateway := payments.NewGateway(cfg)

	sender, err := email.NewSMTPSender(cfg)
	if err != nil {
		return nil, fmt.Errorf("email sender: %w", err)
	}

	svcs := services.NewServiceContainer(repos, tokens, gateway, sender)

	renderer, err := render.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}

	appHandlers := handlers.NewAppHandlers(svcs, validator.New(), renderer)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, appHandlers, tokens)
	return router, nil
}

// seedFirstSuperAdmin creates the bootstrap super admin from environment
// credentials when no such account exists yet.
func seedFirstSuperAdmin(db *gorm.DB) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		logger.Warn("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping super admin seed")
		return nil
	}

	var existing models.User
	result := db.Where("role = ?", models.UserRoleSuperAdmin).First(&existing)
	if result.Error == nil {
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for super admin: %w", result.Error)
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Email:        adminEmail,
		Name:         "Icons Herald Administration",
		PasswordHash: hash,
		Role:         models.UserRoleSuperAdmin,
		Status:       models.UserStatusActive,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create super admin: %w", err)
	}

	logger.Info("Created first super admin", "email", adminEmail)
	return nil
}
