package app

import (
	"errors"
	"fmt"
	"time"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/config"
	"jobportal_backend/internal/database"
	"jobportal_backend/internal/email"
	"jobportal_backend/internal/handlers"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/routes"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/storage"
	"jobportal_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Run wires the whole application and starts the HTTP server.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to migrate schema", "error", err)
	}
	logger.Info("Database connected and migrated")

	if err := seedFirstAdmin(db, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
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

// SetupRouter builds the gin engine with all dependencies injected. Tests
// call this directly against their own database.
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	store, err := storage.NewStorage(storage.Config{Type: "local", BasePath: cfg.Storage.ResumeDir})
	if err != nil {
		return nil, fmt.Errorf("initialize storage: %w", err)
	}

	svc := initializeServices(cfg, db, store)
	appHandlers := initializeHandlers(svc)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SessionMiddleware(svc.AuthService))

	routes.RegisterRoutes(router, appHandlers)
	return router, nil
}

// ServiceContainer groups the service layer for wiring.
type ServiceContainer struct {
	AuthService        *services.AuthService
	UserService        *services.UserService
	JobService         *services.JobService
	ApplicationService *services.ApplicationService
}

func initializeServices(cfg *config.Config, db *gorm.DB, store storage.Storage) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	appRepo := repositories.NewApplicationRepository(db)

	tokens := auth.NewTokenManager(cfg.Session.Secret, time.Duration(cfg.Session.TTLMinutes)*time.Minute)

	var mailer email.Provider
	if cfg.Email.SMTPHost != "" {
		smtp, err := email.NewSMTPProvider(email.SMTPConfig{
			Host:     cfg.Email.SMTPHost,
			Port:     cfg.Email.SMTPPort,
			Username: cfg.Email.SMTPUsername,
			Password: cfg.Email.SMTPPassword,
			From:     cfg.Email.FromEmail,
		})
		if err != nil {
			logger.Warn("SMTP misconfigured, falling back to log-only notifications", "error", err)
			mailer = &email.LogProvider{}
		} else {
			mailer = smtp
		}
	} else {
		mailer = &email.LogProvider{}
	}

	return &ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, tokens),
		UserService:        services.NewUserService(userRepo, mailer),
		JobService:         services.NewJobService(jobRepo),
		ApplicationService: services.NewApplicationService(appRepo, jobRepo, store),
	}
}

func initializeHandlers(svc *ServiceContainer) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(base, svc.AuthService),
		JobHandler:         handlers.NewJobHandler(base, svc.JobService),
		ApplicationHandler: handlers.NewApplicationHandler(base, svc.ApplicationService, svc.JobService),
		AdminHandler:       handlers.NewAdminHandler(base, svc.UserService, svc.JobService, svc.ApplicationService),
		FileHandler:        handlers.NewFileHandler(base, svc.ApplicationService),
	}
}

// seedFirstAdmin creates the administrator account on first startup. The
// admin is an employer-flagged-off, approved account by convention.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("Admin credentials not configured, skipping admin seeding")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", cfg.Admin.Email).First(&existing)
	if result.Error == nil {
		logger.Info("Admin user already exists, skipping creation", "email", cfg.Admin.Email)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	username := cfg.Admin.Username
	if username == "" {
		username = "admin"
	}

	admin := &models.User{
		Username:     username,
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		IsAdmin:      true,
		IsApproved:   true,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Created first admin user", "email", cfg.Admin.Email)
	return nil
}
