package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eldercare-api/config"
	deliveryHttp "eldercare-api/internal/delivery/http"
	"eldercare-api/internal/delivery/http/handler"
	"eldercare-api/internal/delivery/http/middleware"
	"eldercare-api/internal/infrastructure/store"
	"eldercare-api/internal/repository"
	"eldercare-api/internal/usecase"
	"eldercare-api/pkg/jwt"
	"eldercare-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	RedisClient *redis.Client
	Server      *http.Server
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

	// Initialize Redis; sessions and OTP codes always live there, and it is
	// the default backing store for the booking collection
	redisClient, err := store.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server, err := initializeServer(cfg, redisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// newBookingStore selects the key-value store backing booking persistence
func newBookingStore(cfg *config.Config, redisClient *redis.Client) store.KeyValueStore {
	if cfg.Store.Driver == "memory" {
		logrus.Warn("Using in-memory booking store; bookings will not survive a restart")
		return store.NewMemoryStore()
	}
	return store.NewRedisStore(redisClient)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, redisClient *redis.Client) (*http.Server, error) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories and registries
	bookingStore := newBookingStore(cfg, redisClient)
	bookingRepo := repository.NewBookingRepository(bookingStore, log, cfg.Booking.StoreKey, cfg.Booking.StrictMode)
	doctorRepo := repository.NewDoctorRepository()
	hospitalRepo := repository.NewHospitalRepository()
	userRepo := repository.NewUserRepository()
	doctorFavorites := repository.NewDoctorFavorites()
	hospitalFavorites := repository.NewHospitalFavorites()

	// Load the persisted booking collection; malformed data means start empty
	loadCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := bookingRepo.Load(loadCtx); err != nil {
		if !errors.Is(err, repository.ErrDeserialization) {
			return nil, fmt.Errorf("failed to load bookings: %w", err)
		}
		log.Warnf("Stored booking data is malformed, starting empty: %+v", err)
	}

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, jwtService, redisClient, cfg.JWT.OTPExpiry)
	bookingUsecase := usecase.NewBookingUsecase(log, bookingRepo, doctorRepo)
	catalogUsecase := usecase.NewCatalogUsecase(doctorRepo, hospitalRepo)
	favoriteUsecase := usecase.NewFavoriteUsecase(log, doctorRepo, hospitalRepo, doctorFavorites, hospitalFavorites)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	doctorHandler := handler.NewDoctorHandler(catalogUsecase)
	hospitalHandler := handler.NewHospitalHandler(catalogUsecase)
	calendarHandler := handler.NewCalendarHandler()
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)
	favoriteHandler := handler.NewFavoriteHandler(favoriteUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		doctorHandler,
		hospitalHandler,
		calendarHandler,
		bookingHandler,
		favoriteHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
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

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
