package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vetclinic-backend/config"
	deliveryHttp "vetclinic-backend/internal/delivery/http"
	"vetclinic-backend/internal/delivery/http/handler"
	"vetclinic-backend/internal/delivery/http/middleware"
	"vetclinic-backend/internal/infrastructure/cache"
	"vetclinic-backend/internal/infrastructure/database"
	"vetclinic-backend/internal/repository"
	"vetclinic-backend/internal/service"
	"vetclinic-backend/internal/usecase"
	"vetclinic-backend/pkg/jwt"
	"vetclinic-backend/pkg/metrics"
	"vetclinic-backend/pkg/twofa"
	"vetclinic-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Reminder    *service.ReminderService
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Apply migrations before opening the pool
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	if err := app.initialize(); err != nil {
		return nil, err
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initialize wires repositories, usecases, handlers and the HTTP server
func (app *App) initialize() error {
	cfg := app.Config
	db := app.DB
	redisClient := app.RedisClient

	// Shared services
	jwtService := jwt.NewJWTService(cfg.JWT)
	twofaGen := twofa.NewGenerator()
	customValidator := validator.NewValidator()
	cartStore := service.NewCartStore(redisClient)
	log := logrus.StandardLogger()

	// Repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	clientProfileRepo := repository.NewClientProfileRepository()
	vetProfileRepo := repository.NewVeterinarianProfileRepository()
	petRepo := repository.NewPetRepository()
	branchRepo := repository.NewBranchRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	spaGroomingRepo := repository.NewSpaGroomingRepository()
	productRepo := repository.NewProductRepository()
	orderRepo := repository.NewOrderRepository()
	communityRepo := repository.NewCommunityRepository()
	notificationRepo := repository.NewNotificationRepository()
	permissionRepo := repository.NewPermissionRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, clientProfileRepo, auditLogRepo, jwtService, twofaGen, redisClient, cfg.TwoFA.CodeExpiry)
	petUsecase := usecase.NewPetUsecase(db, log, petRepo, clientProfileRepo)
	clientUsecase := usecase.NewClientUsecase(db, log, clientProfileRepo, userRepo)
	vetUsecase := usecase.NewVeterinarianUsecase(db, log, vetProfileRepo, userRepo, branchRepo)
	branchUsecase := usecase.NewBranchUsecase(db, log, branchRepo, auditLogRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, petRepo, branchRepo, notificationRepo, auditLogRepo)
	spaGroomingUsecase := usecase.NewSpaGroomingUsecase(db, log, spaGroomingRepo, petRepo, branchRepo, notificationRepo, auditLogRepo)
	productUsecase := usecase.NewProductUsecase(db, log, productRepo, auditLogRepo)
	cartUsecase := usecase.NewCartUsecase(db, log, cartStore, productRepo)
	orderUsecase := usecase.NewOrderUsecase(db, log, orderRepo, productRepo, notificationRepo, auditLogRepo, cartStore)
	communityUsecase := usecase.NewCommunityUsecase(db, log, communityRepo, userRepo)
	notificationUsecase := usecase.NewNotificationUsecase(db, log, notificationRepo)
	permissionUsecase := usecase.NewPermissionUsecase(db, log, permissionRepo, auditLogRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Install the default permission matrix on first boot
	if err := permissionUsecase.SeedDefaults(context.Background()); err != nil {
		return fmt.Errorf("failed to seed permissions: %w", err)
	}

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	var metricsMiddleware *middleware.MetricsMiddleware
	if cfg.Metrics.Enabled {
		metricsMiddleware = middleware.NewMetricsMiddleware(metrics.New("vetclinic"))
	}

	// Router
	router := deliveryHttp.NewRouter(deliveryHttp.RouterConfig{
		AuthHandler:         handler.NewAuthHandler(authUsecase, customValidator),
		PetHandler:          handler.NewPetHandler(petUsecase, customValidator),
		ClientHandler:       handler.NewClientHandler(clientUsecase, customValidator),
		VeterinarianHandler: handler.NewVeterinarianHandler(vetUsecase, customValidator),
		BranchHandler:       handler.NewBranchHandler(branchUsecase, customValidator),
		AppointmentHandler:  handler.NewAppointmentHandler(appointmentUsecase, customValidator),
		SpaGroomingHandler:  handler.NewSpaGroomingHandler(spaGroomingUsecase, customValidator),
		ProductHandler:      handler.NewProductHandler(productUsecase, customValidator),
		CartHandler:         handler.NewCartHandler(cartUsecase, customValidator),
		OrderHandler:        handler.NewOrderHandler(orderUsecase, customValidator),
		CommunityHandler:    handler.NewCommunityHandler(communityUsecase, customValidator),
		NotificationHandler: handler.NewNotificationHandler(notificationUsecase),
		PermissionHandler:   handler.NewPermissionHandler(permissionUsecase, customValidator),
		AuditLogHandler:     handler.NewAuditLogHandler(auditLogUsecase),

		AuthMiddleware:    authMiddleware,
		CORSMiddleware:    corsMiddleware,
		MetricsMiddleware: metricsMiddleware,
		MetricsPath:       cfg.Metrics.Path,
	})

	// Background jobs
	app.Reminder = service.NewReminderService(db, log, appointmentRepo, notificationRepo)

	app.Server = &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: router.Setup(),
	}

	return nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	if err := app.Reminder.Start(app.Config.Reminder.Schedule); err != nil {
		logrus.Fatalf("Failed to start reminder job: %v", err)
	}

	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Stop background jobs, then close connections
	app.Reminder.Stop()
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
