package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/wildwave/safaris/internal/auth"
	"github.com/wildwave/safaris/internal/config"
	"github.com/wildwave/safaris/internal/connect"
	"github.com/wildwave/safaris/internal/container"
	"github.com/wildwave/safaris/internal/routes"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg)
	logger.Info("Starting WildWave Safaris API server", "environment", cfg.Environment)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := connect.PostgresConnect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to Postgres", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to Postgres successfully")

	// Cloudinary is optional; without credentials the media endpoint reports
	// uploads as unconfigured instead of blocking startup.
	var cld *cloudinary.Cloudinary
	if os.Getenv("CLOUDINARY_CLOUD_NAME") != "" {
		cld, err = cloudinary.NewFromParams(
			os.Getenv("CLOUDINARY_CLOUD_NAME"),
			os.Getenv("CLOUDINARY_API_KEY"),
			os.Getenv("CLOUDINARY_API_SECRET"),
		)
		if err != nil {
			logger.Error("Failed to initialize Cloudinary", "error", err)
			os.Exit(1)
		}
		logger.Info("Connected to Cloudinary successfully")
	} else {
		logger.Warn("Cloudinary not configured, image uploads disabled")
	}

	codec := auth.NewTokenCodec(cfg.JWTSecret)
	appContainer := container.NewContainer(logger, db, cld, codec)
	router := routes.SetupRoutes(appContainer)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	if err := connect.PostgresDisconnect(db); err != nil {
		logger.Error("Error closing Postgres pool", "error", err)
	}

	logger.Info("Server exited")
}

func setupLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler

	if cfg.IsProduction() {
		// JSON logging for production
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	} else {
		// Human-readable logging for development
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}
