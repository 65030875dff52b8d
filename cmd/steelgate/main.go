// Package main is the entry point for the Steelgate Machinery website.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"steelgate/internal/cache"
	"steelgate/internal/config"
	"steelgate/internal/content"
	"steelgate/internal/handlers"
	"steelgate/internal/mailer"
	"steelgate/internal/media"
	"steelgate/internal/metrics"
	"steelgate/internal/render"
	"steelgate/internal/router"
	"steelgate/internal/seo"
	"steelgate/internal/turnstile"
)

func main() {
	// Structured logger — text output; level debug so cache hits are visible.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"base_url", cfg.BaseURL,
	)

	metrics.Init()

	// Connect to Valkey for the page cache. The site runs without it —
	// every request then re-queries the content store.
	var valkeyClient *redis.Client
	if cfg.ValkeyHost != "" {
		valkeyClient, err = cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
	} else {
		slog.Warn("valkey not configured — page caching disabled")
	}
	pageCache := cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)

	// Parse the embedded page templates.
	renderer, err := render.New()
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Content store client and image URL resolver.
	client := content.New(cfg.ContentAPIURL, cfg.ContentProjectID, cfg.ContentDataset, cfg.ContentAPIVersion)
	resolver := media.NewResolver(cfg.ContentCDNURL, cfg.ContentProjectID, cfg.ContentDataset)

	// SMTP relay for lead notifications; log-only in development when no
	// relay is configured (production requires SMTP_HOST, see config).
	var sender mailer.Sender
	if cfg.SMTPHost != "" {
		sender, err = mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
		if err != nil {
			slog.Error("failed to initialize smtp sender", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("smtp not configured — lead emails will be logged only")
		sender = mailer.LogSender{}
	}

	// Turnstile verification is optional; without a secret the contact
	// endpoint relies on the honeypot alone.
	var verifier turnstile.Verifier
	if cfg.TurnstileSecretKey != "" {
		verifier = turnstile.New(cfg.TurnstileSecretKey)
	} else {
		slog.Warn("turnstile not configured — bot verification disabled")
	}

	generator := seo.NewGenerator(cfg.BaseURL, client, resolver)

	// Create handler groups with their dependencies.
	publicHandlers := handlers.NewPublic(renderer, client, resolver, cfg.SiteName, cfg.BaseURL, cfg.TurnstileSiteKey)
	leadHandlers := handlers.NewLeads(sender, verifier, cfg.SalesEmail)
	seoHandlers := handlers.NewSEO(generator, cfg.BaseURL)

	// Set up the Chi router with all middleware and routes.
	r := router.New(publicHandlers, leadHandlers, seoHandlers, pageCache)

	// Create the HTTP server with sensible timeouts. WriteTimeout covers a
	// cold render that fans out several content store queries plus an SMTP
	// handshake on the lead endpoints.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
