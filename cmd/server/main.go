package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/microcourses/microcourses-web/internal/config"
	"github.com/microcourses/microcourses-web/internal/flash"
	"github.com/microcourses/microcourses-web/internal/handler"
	"github.com/microcourses/microcourses-web/internal/logger"
	"github.com/microcourses/microcourses-web/internal/router"
	"github.com/microcourses/microcourses-web/internal/session"
	"github.com/microcourses/microcourses-web/internal/upstream"
	"github.com/microcourses/microcourses-web/internal/validator"
	"github.com/microcourses/microcourses-web/internal/viewstate"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("api", cfg.APIBaseURL).
		Msg("Starting MicroCourses Web")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	flash.Configure(cfg.CookieSecure)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Session Store ─────────────────────────────────────────────────
	var store session.TokenStore
	if cfg.RedisURL != "" {
		redisStore, err := session.NewRedisStore(ctx, cfg.RedisURL, cfg.SessionTTL, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer redisStore.Close()
		store = redisStore
	} else {
		store = session.NewMemoryStore(cfg.SessionTTL)
	}
	sessions := session.NewManager(store, cfg.SessionTTL)

	// ─── Upstream API Client ───────────────────────────────────────────
	client := upstream.New(cfg.APIBaseURL, log)

	// ─── View State ────────────────────────────────────────────────────
	states := viewstate.NewRegistry()

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:    handler.NewAuthHandler(client, sessions, states, cfg, log),
		Student: handler.NewStudentHandler(client, states, log),
		Creator: handler.NewCreatorHandler(client, states, log),
		Admin:   handler.NewAdminHandler(client, states, log),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.Setup(sessions, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown")
	}

	log.Info().Msg("Server stopped")
}
