package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/silabogen/silabogen/internal/ai"
	"github.com/silabogen/silabogen/internal/entitlement"
	"github.com/silabogen/silabogen/internal/handoff"
	"github.com/silabogen/silabogen/internal/httpapi"
	"github.com/silabogen/silabogen/internal/platform/cache"
	"github.com/silabogen/silabogen/internal/platform/config"
	"github.com/silabogen/silabogen/internal/preset"
	"github.com/silabogen/silabogen/internal/syllabus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(os.Stdout, cfg.Log))

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	genTimeout := time.Duration(cfg.AI.TimeoutSeconds) * time.Second
	provider := ai.NewGoogleProvider(cfg.AI.Google.APIKey,
		ai.WithGoogleModel(cfg.AI.Model),
		ai.WithGoogleHTTPClient(&http.Client{Timeout: genTimeout}),
	)
	generator := syllabus.NewGenerator(provider, cfg.AI.Model)

	// The cache is optional: without it, entitlement counters and payment
	// handoffs live in process memory.
	var (
		store   entitlement.Store
		mailbox handoff.Mailbox
		c       *cache.Cache
	)
	if cfg.Cache.URL != "" {
		c, err = cache.New(ctx, cfg.Cache.URL)
		if err != nil {
			slog.Warn("cache unavailable, falling back to in-memory state", "error", err)
		}
	}
	if c != nil {
		defer c.Close()
		store = entitlement.NewRedisStore(c.Client)
		mailbox = handoff.NewRedisMailbox(c.Client)
	} else {
		store = entitlement.NewMemoryStore()
		mailbox = handoff.NewMemoryMailbox()
	}

	presets, err := preset.NewLoader(cfg.PresetsPath)
	if err != nil {
		slog.Error("failed to load presets", "path", cfg.PresetsPath, "error", err)
		os.Exit(1)
	}

	api := httpapi.NewServer(httpapi.Config{
		Generator:     generator,
		Gate:          entitlement.NewGate(store, cfg.Entitlement.FreeLimit),
		Mailbox:       mailbox,
		Presets:       presets,
		Cache:         c,
		BaseURL:       cfg.App.BaseURL,
		DevUnlockHash: cfg.Entitlement.DevUnlockHash,
		GenTimeout:    genTimeout,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:        addr,
		Handler:     api.Routes(),
		ReadTimeout: 10 * time.Second,
		// Generation responses can take up to the provider timeout.
		WriteTimeout: genTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "model", cfg.AI.Model)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

// newLogger builds the process logger from the log configuration.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
