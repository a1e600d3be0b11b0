package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitvibe/fitness-coach/internal/api"
	"fitvibe/fitness-coach/internal/coach"
	"fitvibe/fitness-coach/internal/config"
	"fitvibe/fitness-coach/internal/logger"
	"fitvibe/fitness-coach/internal/session"
	"fitvibe/fitness-coach/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Fatalf("could not load config: %v", err)
	}

	logger.InitWithConfig(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	// A missing Gemini key makes every coaching request impossible, so fail
	// before accepting any.
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}
	logger.Info("configuration loaded", "storage_backend", cfg.Storage.Backend)

	// --- Session Storage Backend ---
	sessionStorage, cleanup, err := buildStorage(cfg.Storage)
	if err != nil {
		logger.Fatalf("could not initialize session storage: %v", err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	// --- Session Store ---
	store := session.NewStore(sessionStorage)
	if err := store.Load(context.Background()); err != nil {
		logger.Fatalf("could not load session state: %v", err)
	}

	// --- Gemini Completer & Coach Service ---
	completer, err := coach.NewGeminiCompleter(context.Background(), cfg.Gemini)
	if err != nil {
		logger.Fatalf("could not initialize Gemini client: %v", err)
	}
	defer completer.Close()

	coachService := coach.NewService(completer)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default()

	// --- Setup Routes ---
	api.SetupRoutes(router, cfg.JWT.Secret, cfg.JWT.Expiration, store, coachService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 2 * time.Minute, // Generation calls can be slow.
		IdleTimeout:  120 * time.Second,
	}

	logger.Info("server starting", "address", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen and serve error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}

	logger.Info("server exiting")
}

// buildStorage picks the configured session storage backend. The returned
// cleanup func, when non-nil, releases backend connections.
func buildStorage(cfg config.StorageConfig) (storage.SessionStorage, func(), error) {
	switch cfg.Backend {
	case "s3":
		st, err := storage.NewS3Storage(cfg.S3)
		return st, nil, err

	case "mongo":
		client, err := storage.ConnectDB(cfg.Mongo.URI)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := storage.DisconnectDB(client); err != nil {
				logger.Error("failed to disconnect MongoDB", "error", err)
			}
		}
		db := client.Database(cfg.Mongo.Name)
		return storage.NewMongoStorage(db, cfg.Mongo.Key), cleanup, nil

	default:
		st, err := storage.NewFileStorage(cfg.File.Path)
		return st, nil, err
	}
}
