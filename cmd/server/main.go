// Package main is the entry point for the postgen server.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hpn/hpn-postgen/internal/adapter"
	"github.com/hpn/hpn-postgen/internal/config"
	"github.com/hpn/hpn-postgen/internal/handler"
	"github.com/hpn/hpn-postgen/internal/security"
	"github.com/hpn/hpn-postgen/internal/service"
	"github.com/hpn/hpn-postgen/internal/ui"
)

func main() {
	// =========================================================================
	// 1. Bootstrap logger until configuration is available
	// =========================================================================
	logger := setupLogger(os.Stdout, config.LoggingConfig{
		Level:  os.Getenv("POSTGEN_LOGGING_LEVEL"),
		Format: "json",
	})

	// =========================================================================
	// 2. Load configuration (Singleton)
	// =========================================================================
	cfg, err := config.GetConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger = setupLogger(os.Stdout, cfg.Logging)

	if cfg.Logging.Console {
		ui.PrintBanner()
	}

	logger.Info("configuration loaded",
		slog.String("host", cfg.Server.Host),
		slog.Int("port", cfg.Server.Port),
		slog.String("provider", string(cfg.AI.SelectedProvider())),
		slog.String("model", cfg.AI.DefaultModel()),
	)

	// Credentials are validated lazily on the first request; flag gaps early.
	if missing := cfg.AI.MissingFields(); len(missing) > 0 {
		logger.Warn("ai provider is not fully configured",
			slog.String("provider", string(cfg.AI.SelectedProvider())),
			slog.Any("missing", missing),
		)
		if cfg.Logging.Console {
			ui.PrintConfigWarning(fmt.Sprintf("%s is not fully configured, set %s",
				cfg.AI.SelectedProvider(), strings.Join(missing, ", ")))
		}
	}

	// =========================================================================
	// 3. Wire provider selection, services and routes
	// =========================================================================
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router, _ := newRouter(cfg, logger)

	// =========================================================================
	// 4. Start HTTP server with graceful shutdown
	// =========================================================================
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	go func() {
		logger.Info("server starting", slog.String("address", addr))
		if cfg.Logging.Console {
			ui.PrintStartupInfo(cfg.Server.Host, cfg.Server.Port, string(cfg.AI.SelectedProvider()), cfg.AI.DefaultModel())
		}

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// =========================================================================
	// 5. Graceful shutdown on SIGTERM/SIGINT
	// =========================================================================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", slog.String("signal", sig.String()))
	if cfg.Logging.Console {
		ui.PrintShutdown()
	}

	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("server stopped gracefully")
	if cfg.Logging.Console {
		ui.PrintGoodbye()
	}
}

// newRouter wires the provider selector, services and HTTP routes.
// The selector is returned so callers can inspect the cached provider.
func newRouter(cfg *config.Configuration, logger *slog.Logger, selectorOpts ...adapter.SelectorOption) (*gin.Engine, *adapter.Selector) {
	opts := append([]adapter.SelectorOption{adapter.WithSelectorLogger(logger)}, selectorOpts...)
	selector := adapter.NewSelector(cfg.AI, opts...)

	completions := service.NewCompletionService(selector, service.WithCompletionLogger(logger))
	posts := service.NewPostService(completions, service.WithPostLogger(logger))
	postHandler := handler.NewPostHandler(posts, selector, handler.WithLogger(logger))

	router := gin.New()

	// Recovery runs outermost so panics in later middleware are caught.
	router.Use(handler.RecoveryMiddleware(logger))
	router.Use(handler.RequestIDMiddleware())
	router.Use(handler.CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(handler.LoggingMiddleware(logger))
	if cfg.Logging.Console {
		router.Use(handler.ConsoleMiddleware())
	}

	postHandler.Register(router)

	return router, selector
}

// setupLogger creates a structured logger from the logging configuration.
// Every record passes through the redacting handler before it is written.
func setupLogger(w io.Writer, cfg config.LoggingConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}

	var inner slog.Handler
	if cfg.Format == "text" {
		inner = slog.NewTextHandler(w, opts)
	} else {
		inner = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(security.NewRedactedHandler(inner))

	// Set as default logger
	slog.SetDefault(logger)

	return logger
}
