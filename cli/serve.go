package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"sip-planner/config"
	httpLayer "sip-planner/http"
	"sip-planner/repository"
	"sip-planner/service"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the calculator page and JSON API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, a.cfg)
		},
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	history := repository.NewHistoryRepositoryMemory(cfg.HistorySize)

	var (
		cache   repository.CacheRepository
		limiter httpLayer.Limiter
	)
	if rc := connectRedis(ctx, cfg.RedisAddr); rc != nil {
		defer func() {
			if err := rc.Close(); err != nil {
				slog.Warn("closing redis", "error", err)
			}
		}()
		cache = rc
		limiter = httpLayer.NewRedisRateLimiter(rc.Client(), cfg.RateLimit, cfg.RateWindow)
	} else {
		memoryCache := repository.NewMemoryCache(cfg.CacheSize)
		defer memoryCache.Stop()
		rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		defer rateLimiter.Stop()
		cache, limiter = memoryCache, rateLimiter
	}

	ai := service.NewAIService(service.AIConfig{
		APIKey:   cfg.OpenAIKey,
		URL:      cfg.OpenAIURL,
		Model:    cfg.OpenAIModel,
		Currency: cfg.Currency,
	})

	sipService := service.NewSIPService(history, cache, ai, service.Options{
		Currency: cfg.Currency,
		CacheTTL: cfg.CacheTTL,
	})

	router := httpLayer.NewRouter(httpLayer.Handlers{
		SIP:    httpLayer.NewSIPHandler(sipService),
		Goal:   httpLayer.NewGoalHandler(service.NewGoalService(ai)),
		StepUp: httpLayer.NewStepUpHandler(service.NewStepUpService()),
		Page:   httpLayer.NewPageHandler(sipService),
	}, limiter)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second, // covers the explanation call
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.Addr, "ai_enabled", ai.Enabled())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		slog.Error("server failed", "error", err)
		return err
	case <-ctx.Done():
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("error during server shutdown", "error", err)
		return err
	}

	slog.Info("server exited")
	return nil
}

// connectRedis returns a client when an address is configured and reachable. Otherwise
// the cache and the rate limiter stay in process.
func connectRedis(ctx context.Context, redisAddr string) *repository.RedisCache {
	if redisAddr == "" {
		return nil
	}

	rc := repository.NewRedisCache(redisAddr)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := rc.Ping(pingCtx); err != nil {
		slog.Warn("redis unavailable, using in-memory cache and rate limiter", "addr", redisAddr, "error", err)
		_ = rc.Close()
		return nil
	}

	slog.Info("using redis for cache and rate limiting", "addr", redisAddr)
	return rc
}
