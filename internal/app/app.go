package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"geekku_backend/database"
	"geekku_backend/internal/auth"
	"geekku_backend/internal/config"
	"geekku_backend/internal/events"
	"geekku_backend/internal/handlers"
	"geekku_backend/internal/logger"
	"geekku_backend/internal/middleware"
	"geekku_backend/internal/models"
	"geekku_backend/internal/repositories"
	"geekku_backend/internal/routes"
	"geekku_backend/internal/services"
	"geekku_backend/internal/storage"
	"geekku_backend/internal/validator"
	"geekku_backend/internal/workers"
	"geekku_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// InitLogger настраивает глобальный логгер, при наличии хоста подключает Fluent Bit
func InitLogger(cfg *config.Config) {
	opts := logger.Options{Env: cfg.Server.Env}
	if cfg.Logging.FluentHost != "" {
		client, err := logger.NewFluentClient(logger.FluentConfig{
			Host:      cfg.Logging.FluentHost,
			Port:      cfg.Logging.FluentPort,
			TagPrefix: cfg.Logging.FluentTagPrefix,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "fluent disabled: %v\n", err)
		} else {
			opts.Fluent = client
		}
	}
	logger.Init(opts)
	apperrors.SetDebug(cfg.IsDevelopment())
	logger.Info("Logger initialized", "env", cfg.Server.Env)
}

// OpenDatabase открывает соединение и проверяет его пингом
func OpenDatabase(cfg *config.Config) (*gorm.DB, error) {
	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	db, err := database.Open(database.Options{
		Driver:       cfg.Database.Driver,
		DSN:          cfg.Database.DSN,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		LogQueries:   cfg.IsDevelopment(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get *sql.DB from GORM: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database unavailable: %w", err)
	}
	logger.Info("Database connected")
	return db, nil
}

// Migrate создает схему и первого администратора
func Migrate(cfg *config.Config, db *gorm.DB) error {
	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logger.Info("Schema migrated")
	return seedFirstAdmin(db, cfg)
}

// Run поднимает HTTP сервер и блокируется до SIGINT/SIGTERM
func Run(cfg *config.Config, migrate bool) error {
	db, err := OpenDatabase(cfg)
	if err != nil {
		return err
	}
	if migrate {
		if err := Migrate(cfg, db); err != nil {
			return err
		}
	}

	deps, cleanup, err := buildDependencies(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ginRouter := SetupRouter(cfg, db, deps)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	workers.NewAuthCodeWorker(db, repositories.NewAuthCodeRepository(), services.CodeTTL, 0).Start(workerCtx)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
	})

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              address,
		Handler:           c.Handler(ginRouter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "address", address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server startup error: %w", err)
		}
		return nil
	case sig := <-quit:
		logger.Info("Shutting down server", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}

// buildDependencies собирает внешние зависимости сервисов по конфигурации
func buildDependencies(cfg *config.Config) (services.Dependencies, func(), error) {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		return services.Dependencies{}, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.Broker.URL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.Broker.URL, cfg.Broker.Exchange)
		if err != nil {
			logger.Warn("Broker unavailable, events disabled", "error", err)
		} else {
			publisher = amqpPublisher
			logger.Info("Broker connected", "exchange", cfg.Broker.Exchange)
		}
	}

	var smsSender services.CodeSender = LoggingCodeSender{Channel: "sms"}
	if cfg.SMS.AccountSID != "" && cfg.SMS.AuthToken != "" {
		smsSender = services.NewTwilioSender(cfg.SMS.AccountSID, cfg.SMS.AuthToken, cfg.SMS.FromPhone)
	} else {
		logger.Warn("SMS sender is not configured, codes are written to the log")
	}

	var emailSender services.CodeSender = LoggingCodeSender{Channel: "email"}
	if cfg.Email.SMTPHost != "" {
		emailSender = services.NewSMTPSender(cfg.Email.SMTPHost, cfg.Email.SMTPPort,
			cfg.Email.SMTPUsername, cfg.Email.SMTPPassword, cfg.Email.FromEmail)
	} else {
		logger.Warn("SMTP sender is not configured, codes are written to the log")
	}

	deps := services.Dependencies{
		Storage:   storageInstance,
		Publisher: publisher,
		Tokens:    auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute),
		Upload: services.UploadConfig{
			MaxFileSize:  cfg.Upload.MaxSize,
			AllowedTypes: cfg.Upload.AllowedTypes,
		},
		Registry: services.RegistryConfig{
			BaseURL: cfg.Registry.BaseURL,
			Key:     cfg.Registry.Key,
			Domain:  cfg.Registry.Domain,
		},
		SMS:   smsSender,
		Email: emailSender,
	}
	cleanup := func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("Failed to close publisher", "error", err)
		}
	}
	return deps, cleanup, nil
}

// SetupRouter собирает сервисы, хэндлеры и gin.Engine
func SetupRouter(cfg *config.Config, db *gorm.DB, deps services.Dependencies) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	serviceContainer := services.NewServiceContainer(deps)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	ginRouter := initializeGinRouter(db, cfg.RequestTimeout())
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeGinRouter(db *gorm.DB, timeout time.Duration) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	if timeout > 0 {
		router.Use(middleware.TimeoutMiddleware(timeout))
	}
	router.Use(middleware.DBMiddleware(db))
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	username := cfg.Admin.Username
	password := cfg.Admin.Password
	if username == "" || password == "" {
		logger.Warn("FIRST_ADMIN_USERNAME or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var existing models.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		logger.Info("Admin user already exists. Skipping creation.", "username", username)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := &models.User{
		Username: username,
		Password: hashed,
		Name:     "admin",
		Nickname: "admin",
		Role:     models.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	logger.Info("Created first admin user", "username", username)
	return nil
}
