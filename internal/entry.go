// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/scottidler/obsidian-bookmark/internal/api"
	"github.com/scottidler/obsidian-bookmark/internal/bookmark"
	"github.com/scottidler/obsidian-bookmark/internal/note"
	"github.com/scottidler/obsidian-bookmark/internal/provider"
	"github.com/scottidler/obsidian-bookmark/internal/storage"
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("vault_path", cfg.Vault.Path),
		slog.Int("link_rules", len(cfg.Rules())),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Ensure vault directory exists.
	vaultRoot := storage.ExpandHome(cfg.Vault.Path)
	if err := os.MkdirAll(vaultRoot, 0o755); err != nil {
		return fmt.Errorf("create vault dir: %w", err)
	}

	store, err := storage.NewFS(vaultRoot)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	clock, err := note.NewClock(cfg.App.Timezone)
	if err != nil {
		return fmt.Errorf("init clock: %w", err)
	}

	videos := app.videos
	if videos == nil {
		videos, err = provider.NewYouTube(ctx, cfg.Providers.YouTube.APIKey)
		if err != nil {
			return fmt.Errorf("init youtube provider: %w", err)
		}
	}

	pages := app.pages
	if pages == nil {
		pages, err = provider.NewSummarizer(cfg.Providers.OpenAI.APIKey,
			provider.WithSummarizerModel(cfg.Providers.OpenAI.Model),
			provider.WithSummarizerBaseURL(cfg.Providers.OpenAI.BaseURL))
		if err != nil {
			return fmt.Errorf("init summarizer provider: %w", err)
		}
	}

	svc := bookmark.NewService(cfg.Rules(), cfg.Frontmatter, clock, store, videos, pages)

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Mount("/", api.NewRouter(svc))

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}
