package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/leadexchange/leadmarket/internal/config"
	"github.com/leadexchange/leadmarket/internal/db"
	"github.com/leadexchange/leadmarket/internal/handlers"
	"github.com/leadexchange/leadmarket/internal/notify"
	"github.com/leadexchange/leadmarket/internal/ratelimit"
	"github.com/leadexchange/leadmarket/internal/repository"
	"github.com/leadexchange/leadmarket/internal/service"
)

const (
	idempotencyRetention = 24 * time.Hour
	cleanupInterval      = time.Hour
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting lead market api",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"price_schedule", cfg.Market.Schedule.String(),
	)

	ctx := context.Background()
	database, err := db.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.MigrateUp(cfg.Database.URL()); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	notifier, err := newNotifier(&cfg.Notify, logger)
	if err != nil {
		logger.Error("failed to configure notifications", "error", err)
		os.Exit(1)
	}
	emitter := notify.NewEmitter(notifier, cfg.Notify.Timeout, cfg.Notify.MaxInFlight, logger)

	quota, closeQuota := newUploadQuota(ctx, &cfg.RateLimit, logger)
	defer closeQuota()

	router, err := handlers.NewRouter(database, cfg, emitter, quota, logger)
	if err != nil {
		logger.Error("failed to build router", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	cleanupCtx, stopCleanup := context.WithCancel(ctx)
	defer stopCleanup()
	go cleanupIdempotencyKeys(cleanupCtx, repository.NewIdempotencyRepository(database), logger)

	go func() {
		logger.Info("server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	if err := emitter.Shutdown(shutdownCtx); err != nil {
		logger.Warn("pending notifications dropped", "error", err)
	}

	logger.Info("server stopped")
}

// newNotifier builds the outbound notification sinks. With none configured
// events are discarded.
func newNotifier(cfg *config.NotifyConfig, logger *slog.Logger) (notify.Notifier, error) {
	client := &http.Client{Timeout: cfg.Timeout}

	var sinks notify.Multi
	if cfg.BotAPIURL != "" {
		sinks = append(sinks, notify.NewWebhook(cfg.BotAPIURL, client))
		logger.Info("bot webhook notifications enabled", "url", cfg.BotAPIURL)
	}
	if cfg.TelegramBotToken != "" {
		tg, err := notify.NewTelegram(cfg.TelegramBotToken, "", client)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, tg)
		logger.Info("telegram notifications enabled")
	}

	if len(sinks) == 0 {
		logger.Info("notifications disabled")
		return notify.Noop{}, nil
	}
	return sinks, nil
}

// newUploadQuota connects the Redis-backed upload quota. Without REDIS_ADDR
// the quota is disabled and a nil interface is returned.
func newUploadQuota(ctx context.Context, cfg *config.RateLimitConfig, logger *slog.Logger) (service.UploadQuota, func()) {
	if cfg.RedisAddr == "" || cfg.UploadQuotaPerHour == 0 {
		logger.Info("upload quota disabled")
		return nil, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	quota := ratelimit.NewUploadQuota(client, cfg.UploadQuotaPerHour)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := quota.Ping(pingCtx); err != nil {
		logger.Warn("redis unreachable, uploads fail open until it recovers", "addr", cfg.RedisAddr, "error", err)
	} else {
		logger.Info("upload quota enabled", "per_hour", cfg.UploadQuotaPerHour, "addr", cfg.RedisAddr)
	}

	return quota, func() { _ = client.Close() }
}

func cleanupIdempotencyKeys(ctx context.Context, repo repository.IdempotencyRepository, logger *slog.Logger) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := repo.DeleteOlderThan(ctx, time.Now().Add(-idempotencyRetention))
			if err != nil {
				logger.Error("failed to clean up idempotency keys", "error", err)
				continue
			}
			if removed > 0 {
				logger.Debug("idempotency keys cleaned up", "removed", removed)
			}
		}
	}
}
