package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lessonforge/backend/docs"
	"github.com/lessonforge/backend/internal/config"
	"github.com/lessonforge/backend/internal/handlers"
	"github.com/lessonforge/backend/internal/logger"
	loggerMiddleware "github.com/lessonforge/backend/internal/logger/middleware"
	"github.com/lessonforge/backend/internal/middleware"
	"github.com/lessonforge/backend/internal/repositories"
	"github.com/lessonforge/backend/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title Lesson Generator API
// @version 1.0.0
// @description API for generating, storing and extending educational lessons

// @host localhost:8080
// @BasePath /api
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting Lesson Generator API",
		zap.String("storage", cfg.Storage.Backend),
		zap.Bool("proxy", cfg.Proxy.Enabled),
	)

	var api apiRoutes
	if cfg.Proxy.Enabled {
		proxyHandler, err := handlers.NewProxyHandler(cfg.Proxy.URL, logger.Logger)
		if err != nil {
			logger.Logger.Fatal("Failed to create proxy", zap.Error(err))
		}
		logger.Logger.Info("Forwarding API requests", zap.String("target", cfg.Proxy.URL))
		api = apiRoutes{proxy: proxyHandler, health: handlers.NewHealthHandler(nil, logger.Logger)}
	} else {
		repo, db, cleanup, err := buildLessonRepository(cfg, logger.Logger)
		if err != nil {
			logger.Logger.Fatal("Failed to initialize lesson storage", zap.Error(err))
		}
		defer cleanup()

		lessonService := services.NewLessonService(repo, logger.Logger)
		if cfg.Storage.SeedExamples {
			if err := lessonService.SeedExamples(context.Background()); err != nil {
				logger.Logger.Error("Failed to seed example lessons", zap.Error(err))
			}
		}

		var pinger handlers.Pinger
		if db != nil {
			pinger = db
		}
		api = apiRoutes{
			lessons: handlers.NewLessonHandler(lessonService, logger.Logger),
			health:  handlers.NewHealthHandler(pinger, logger.Logger),
		}
	}

	r := newRouter(cfg, logger.Logger, api)

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// apiRoutes is what gets mounted under /api: either the local lesson store or the proxy
type apiRoutes struct {
	lessons *handlers.LessonHandler
	proxy   *handlers.ProxyHandler
	health  *handlers.HealthHandler
}

// newRouter builds the chi router with the shared middleware stack
func newRouter(cfg *config.Config, l *zap.Logger, api apiRoutes) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(loggerMiddleware.LoggerMiddleware(l))
	r.Use(middleware.RecoveryMiddleware(l))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.Server.RateLimitPerMinute, time.Minute))
	r.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	api.health.RegisterRootRoutes(r)

	r.Route("/api", func(r chi.Router) {
		if api.proxy != nil {
			api.proxy.RegisterRoutes(r)
			return
		}
		api.health.RegisterRoutes(r)
		api.lessons.RegisterRoutes(r)
	})

	return r
}

// buildLessonRepository creates the configured lesson backend, wrapped with the Redis cache when enabled.
// db is nil for the in-memory backend.
func buildLessonRepository(cfg *config.Config, l *zap.Logger) (services.LessonRepository, *sql.DB, func(), error) {
	var (
		repo    services.LessonRepository
		db      *sql.DB
		closers []func()
	)
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.Storage.Backend {
	case config.StorageMemory:
		repo = repositories.NewMemoryLessonRepository(l)
	default:
		var err error
		db, err = connectDB(cfg.DSN())
		if err != nil {
			return nil, nil, cleanup, err
		}
		closers = append(closers, func() { db.Close() })

		if err := runMigrations(db); err != nil {
			cleanup()
			return nil, nil, func() {}, err
		}
		repo = repositories.NewLessonRepository(db, l)
	}

	if cfg.CacheEnabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		closers = append(closers, func() { rdb.Close() })

		// the cache only ever degrades to the backend, so an unreachable Redis is not fatal
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			l.Warn("Redis is not reachable, lesson cache will be bypassed", zap.Error(err))
		}
		repo = repositories.NewCachedLessonRepository(repo, rdb, cfg.Redis.TTL, l)
		l.Info("Lesson cache enabled", zap.String("addr", cfg.RedisAddr()), zap.Duration("ttl", cfg.Redis.TTL))
	}

	return repo, db, cleanup, nil
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "lessons_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	// Use migrations folder relative to the working directory, or its parent when running from cmd
	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(migrationPath, "mysql", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
