package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/coloringbook/backend/docs"
	"github.com/coloringbook/backend/internal/config"
	"github.com/coloringbook/backend/internal/database"
	"github.com/coloringbook/backend/internal/handlers"
	"github.com/coloringbook/backend/internal/logger"
	"github.com/coloringbook/backend/internal/repositories"
	"github.com/coloringbook/backend/internal/server"
	"github.com/coloringbook/backend/internal/services"
	"go.uber.org/zap"
)

// @title Coloring Book API
// @version 1.0
// @description CRUD backend for a children's coloring-book application

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

	logger.Logger.Info("Starting Coloring Book API")

	if err := run(cfg); err != nil {
		logger.Logger.Error("Server terminated", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// run owns the document store connection so the deferred disconnect
// executes on every exit path, including startup failures
func run(cfg *config.Config) error {
	// Connect to the document store
	client, err := database.Connect(context.Background(), cfg.Mongo.URL)
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Logger.Error("Failed to disconnect from document store", zap.Error(err))
		}
	}()

	db := client.Database(cfg.Mongo.DBName)

	// Create equality-filter indexes for the list endpoints
	if err := database.EnsureIndexes(context.Background(), db); err != nil {
		return err
	}

	// Initialize repositories
	pageRepo := repositories.NewColoringPageRepository(db)
	artworkRepo := repositories.NewArtworkRepository(db)
	stickerRepo := repositories.NewStickerRepository(db)

	// Initialize services
	pageService := services.NewColoringPageService(pageRepo)
	artworkService := services.NewArtworkService(artworkRepo)
	stickerService := services.NewStickerService(stickerRepo)
	seedService := services.NewSeedService(pageRepo, stickerRepo, logger.Logger)

	// Initialize handlers and router
	r := server.NewRouter(cfg, logger.Logger, server.Handlers{
		System:        handlers.NewSystemHandler(seedService, logger.Logger),
		ColoringPages: handlers.NewColoringPagesHandler(pageService, logger.Logger),
		Artworks:      handlers.NewArtworksHandler(artworkService, logger.Logger),
		Stickers:      handlers.NewStickersHandler(stickerService, logger.Logger),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal or server failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-quit:
	}

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Logger.Info("Server exited")
	return nil
}
