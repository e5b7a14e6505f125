// councild — multi-model council orchestrator server. Exposes the HTTP
// tools gateway, runs the council and pipeline engines, and keeps the run
// ledger in PostgreSQL.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/llmcouncil/councild/pkg/api"
	"github.com/llmcouncil/councild/pkg/cache"
	"github.com/llmcouncil/councild/pkg/config"
	"github.com/llmcouncil/councild/pkg/database"
	"github.com/llmcouncil/councild/pkg/llm"
	"github.com/llmcouncil/councild/pkg/services"
	"github.com/llmcouncil/councild/pkg/tools"
	"github.com/llmcouncil/councild/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting councild",
		"version", version.GitCommit,
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database (runs embedded migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	runService := services.NewRunService(dbClient.Client)
	usageService := services.NewUsageService(dbClient.Client, cfg.Pricing)
	authService := services.NewAuthService(dbClient.Client, usageService, cfg.APIKeyPepper)

	// Conversations live in PostgreSQL by default; STORAGE_BACKEND=json
	// switches to the file-backed prototype store (runs and usage stay in
	// the database either way).
	var store services.ConversationStore
	if getEnv("STORAGE_BACKEND", "postgres") == "json" {
		fileStore, err := services.NewFileConversationStore(cfg.DataDir)
		if err != nil {
			slog.Error("Failed to open file conversation store", "dir", cfg.DataDir, "error", err)
			os.Exit(1)
		}
		store = fileStore
		slog.Info("Using file-backed conversation store", "dir", cfg.DataDir)
	} else {
		store = services.NewPostgresConversationStore(dbClient.Client)
	}

	stageCache := cache.New(dbClient.Client, cfg.Cache)
	slog.Info("Services initialized", "cache_enabled", cfg.Cache.Enabled)

	// 4. Upstream client and tool runtime
	llmClient := llm.NewClient(cfg.Upstream)
	handlers := tools.NewHandlers(cfg, llmClient, runService, usageService, store, stageCache)
	runtime := tools.NewRuntime(handlers, runService,
		cfg.Limits.HTTPMaxConcurrentToolCalls, cfg.Limits.HTTPToolTimeout)

	// 5. HTTP server
	httpServer := api.NewServer(cfg, dbClient, authService, store, usageService, runtime)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("councild started successfully",
		"council_models", len(cfg.Council.Models),
		"chairman", cfg.Council.Chairman)

	// 6. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 7. Graceful shutdown: drain in-flight requests, then close the pool.
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
