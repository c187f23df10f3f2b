package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/autoluxe/luxury_cars_backend/internal/adapter/handler/http"
	"github.com/autoluxe/luxury_cars_backend/internal/adapter/logger"
	"github.com/autoluxe/luxury_cars_backend/internal/adapter/postgres"
	"github.com/autoluxe/luxury_cars_backend/internal/adapter/prometheus"
	"github.com/autoluxe/luxury_cars_backend/internal/adapter/redis"
	"github.com/autoluxe/luxury_cars_backend/internal/config"
	"github.com/autoluxe/luxury_cars_backend/internal/core/ports"
	"github.com/autoluxe/luxury_cars_backend/internal/core/services"

	"github.com/go-playground/validator/v10"
	"github.com/pressly/goose"
	redisClient "github.com/redis/go-redis/v9"
)

type App struct {
	Config       *config.Container
	Logger       ports.LoggerPort
	DB           *sql.DB
	RedisClient  *redisClient.Client
	RedisAdapter ports.CachePort
	HTTPRouter   *http.Router
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Set redis
	redisConn := redisClient.NewClient(&redisClient.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisConn.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	cacheAdapter := redis.NewRedisAdapter(redisConn)

	// Connect DB
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("Failed to connect to database:%w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("Failed to ping database:%w", err)
	}

	// Migrate DB
	if err := goose.Up(db, "./internal/adapter/postgres/migrations"); err != nil {
		return nil, fmt.Errorf("Failed to run migrations:%w", err)
	}

	// Validate
	validate := validator.New()

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	// Repositories
	carRepo := postgres.NewCarRepository(db)
	testDriveRepo := postgres.NewTestDriveRepository(db)
	favoriteRepo := postgres.NewFavoriteRepository(db)
	contactRepo := postgres.NewContactRepository(db)
	userRepo := postgres.NewUserRepository(db)
	statsRepo := postgres.NewStatisticsRepository(db)

	// Services
	carService := services.NewCarService(carRepo, loggerAdapter, validate, cacheAdapter)
	testDriveService := services.NewTestDriveService(testDriveRepo, loggerAdapter, validate)
	favoriteService := services.NewFavoriteService(favoriteRepo, loggerAdapter)
	contactService := services.NewContactService(contactRepo, loggerAdapter, validate)
	userService := services.NewUserService(userRepo, loggerAdapter, validate)
	statsService := services.NewStatisticsService(statsRepo, loggerAdapter)

	// HTTP Handlers
	tokenDuration, err := time.ParseDuration(cfg.Token.Duration)
	if err != nil {
		tokenDuration = 24 * time.Hour
	}
	tokenService := http.NewJWTTokenService(cfg.Token.Secret, tokenDuration, loggerAdapter)
	carHandler := http.NewCarHandler(carService, loggerAdapter, metrics)
	testDriveHandler := http.NewTestDriveHandler(testDriveService, loggerAdapter, metrics)
	favoriteHandler := http.NewFavoriteHandler(favoriteService, loggerAdapter, metrics)
	contactHandler := http.NewContactHandler(contactService, loggerAdapter, metrics)
	userHandler := http.NewUserHandler(userService, loggerAdapter, metrics)
	statisticsHandler := http.NewStatisticsHandler(statsService, loggerAdapter, metrics)
	adminHandler := http.NewAdminHandler(
		carService,
		contactService,
		userService,
		tokenService,
		cfg.Admin.Email,
		cfg.Admin.Password,
		loggerAdapter,
		metrics,
	)

	// Init HTTP router
	router, err := http.NewRouter(
		cfg.HTTP,
		tokenService,
		carHandler,
		testDriveHandler,
		favoriteHandler,
		contactHandler,
		userHandler,
		statisticsHandler,
		adminHandler,
	)
	if err != nil {
		db.Close()
		redisConn.Close()
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	return &App{
		Config:       cfg,
		Logger:       loggerAdapter,
		DB:           db,
		RedisClient:  redisConn,
		RedisAdapter: cacheAdapter,
		HTTPRouter:   router,
	}, nil
}

// Runs all services
func (a *App) Run() error {
	listenAddr := fmt.Sprintf("%s:%s", a.Config.HTTP.URL, a.Config.HTTP.Port)
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": listenAddr,
	})

	if err := a.HTTPRouter.Serve(listenAddr); err != nil {
		a.Logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Stops all services
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	// Close database
	if err := a.DB.Close(); err != nil {
		a.Logger.Error("Database close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Close Redis
	if err := a.RedisClient.Close(); err != nil {
		a.Logger.Error("Redis close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	a.Logger.Info("Application stopped successfully", nil)
	return nil
}
