package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ktuclinic/portal-auth/internal/api"
	"github.com/ktuclinic/portal-auth/internal/api/metrics"
	"github.com/ktuclinic/portal-auth/internal/core/ports"
	"github.com/ktuclinic/portal-auth/internal/core/service"
	"github.com/ktuclinic/portal-auth/internal/core/session"
	redisdb "github.com/ktuclinic/portal-auth/internal/infrastructure/db/redis"
	"github.com/ktuclinic/portal-auth/internal/infrastructure/registry"
	"github.com/ktuclinic/portal-auth/internal/infrastructure/slot"
	"github.com/ktuclinic/portal-auth/internal/pkg/config"
	"github.com/ktuclinic/portal-auth/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	// --- Session slot backend ---
	var (
		rdb         *redis.Client
		sessionSlot ports.SessionSlot
	)
	switch cfg.Session.Backend {
	case "redis":
		client, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
		}
		defer func() { _ = client.Close() }()
		rdb = client
		sessionSlot = slot.NewRedis(client)
	case "file":
		fileSlot, err := slot.NewFile(cfg.Session.Dir)
		if err != nil {
			log.Fatal().Err(err).Str("dir", cfg.Session.Dir).Msg("failed to open session slot")
		}
		sessionSlot = fileSlot
	default:
		sessionSlot = slot.NewMemory()
	}

	// --- Core wiring ---
	sessions := session.New(sessionSlot, log)
	outcome := sessions.Restore(ctx)
	metrics.SessionRestoresTotal.WithLabelValues(string(outcome)).Inc()

	identities := registry.NewMemory(service.SeedAdminEmail)
	authority := service.NewCredentialAuthority(identities, sessions, log, cfg.Auth.LoginDelay, cfg.Auth.RegisterDelay)

	e := api.NewRouter(authority, sessions, identities, rdb, log)

	srvErrCh := make(chan error, 1)
	go func() {
		srvErrCh <- e.Start(":" + cfg.Port)
	}()
	log.Info().Str("port", cfg.Port).Str("session_backend", cfg.Session.Backend).Msg("clinic portal auth service started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-srvErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
		os.Exit(1)
	}
	log.Info().Msg("server exited cleanly")
}
