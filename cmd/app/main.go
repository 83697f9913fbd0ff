package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Ezio016/MyFridge/internal/chef"
	"github.com/Ezio016/MyFridge/internal/config"
	"github.com/Ezio016/MyFridge/internal/database"
	"github.com/Ezio016/MyFridge/internal/database/postgres"
	"github.com/Ezio016/MyFridge/internal/handler"
	"github.com/Ezio016/MyFridge/internal/inventory"
	"github.com/Ezio016/MyFridge/internal/logger"
	"github.com/Ezio016/MyFridge/internal/recipes"
	"github.com/Ezio016/MyFridge/internal/server"
	"github.com/Ezio016/MyFridge/internal/shopping"
	"github.com/Ezio016/MyFridge/internal/staples"
)

// @title MyFridge API
// @version 1.0
// @description Fridge inventory tracking with recipe readiness suggestions
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		handler.Version,
		cfg.Environment,
		false,
	))

	handler.InitValidator()

	pool, err := database.NewPool(cfg.GetDBConnString(), database.DefaultMaxConnections, 5*time.Minute, 30*time.Minute)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, pool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Staple vocabulary
	stapleLoader := staples.NewLoader()
	stapleConfig, err := stapleLoader.Load(filepath.Join(cfg.ConfigDir, config.StaplesFileName))
	if err != nil {
		slog.Error("Failed to load staple vocabulary", "error", err)
		os.Exit(1)
	}
	if err := stapleLoader.Validate(stapleConfig); err != nil {
		slog.Error("Invalid staple vocabulary", "error", err)
		os.Exit(1)
	}
	classifier, err := staples.NewClassifier(stapleConfig)
	if err != nil {
		slog.Error("Failed to build staple classifier", "error", err)
		os.Exit(1)
	}

	// Recipe catalog
	catalogLoader := recipes.NewLoader()
	catalog, err := catalogLoader.Load(filepath.Join(cfg.ConfigDir, config.RecipesFileName))
	if err != nil {
		slog.Error("Failed to load recipe catalog", "error", err)
		os.Exit(1)
	}
	if err := catalogLoader.Validate(catalog); err != nil {
		slog.Error("Invalid recipe catalog", "error", err)
		os.Exit(1)
	}

	// Services
	inventoryService := inventory.NewService(postgres.NewInventoryRepository(pool), cfg.ExpiringSoonDays)
	recipeService := recipes.NewService(catalog, classifier, inventoryService)
	shoppingService := shopping.NewService(postgres.NewShoppingRepository(pool), recipeService)
	chefService := chef.NewService(chef.Config{
		BaseURL: cfg.ChefBaseURL,
		APIKey:  cfg.ChefAPIKey,
		Model:   cfg.ChefModel,
	}, nil, inventoryService)

	srv := server.NewServer(cfg.Port, pool, inventoryService, recipeService, shoppingService, chefService)

	// Run until interrupted, then drain in-flight requests
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
