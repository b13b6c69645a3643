package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/roommatch/internal/config"
	dbPostgres "github.com/kailas-cloud/roommatch/internal/db/postgres"
	dbRedis "github.com/kailas-cloud/roommatch/internal/db/redis"
	logpkg "github.com/kailas-cloud/roommatch/internal/logger"
	"github.com/kailas-cloud/roommatch/internal/metrics"
	catalogrepo "github.com/kailas-cloud/roommatch/internal/repository/catalog"
	feedstaterepo "github.com/kailas-cloud/roommatch/internal/repository/feedstate"
	matchrepo "github.com/kailas-cloud/roommatch/internal/repository/match"
	rosterrepo "github.com/kailas-cloud/roommatch/internal/repository/roster"
	savedsearchrepo "github.com/kailas-cloud/roommatch/internal/repository/savedsearch"
	amqpTransport "github.com/kailas-cloud/roommatch/internal/transport/amqp"
	chiTransport "github.com/kailas-cloud/roommatch/internal/transport/chi"
	compatuc "github.com/kailas-cloud/roommatch/internal/usecase/compat"
	feeduc "github.com/kailas-cloud/roommatch/internal/usecase/feed"
	healthuc "github.com/kailas-cloud/roommatch/internal/usecase/health"
	propertyuc "github.com/kailas-cloud/roommatch/internal/usecase/property"
	savedsearchuc "github.com/kailas-cloud/roommatch/internal/usecase/savedsearch"
	"github.com/kailas-cloud/roommatch/internal/version"
)

func newServeCmd(env *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), *env)
		},
	}
}

func runServe(ctx context.Context, env string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting roommatch API server",
		zap.String("version", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("redis_addrs", cfg.Redis.Addrs),
		zap.Bool("events_enabled", cfg.Events.Enabled()),
	)

	// Postgres: roster and catalog
	pg, err := dbPostgres.Open(dbPostgres.Config{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetimeSec) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	defer pg.Close()
	if err := pg.WaitForReady(ctx, time.Duration(cfg.Postgres.ReadinessTimeout)*time.Second); err != nil {
		return fmt.Errorf("postgres not ready: %w", err)
	}
	logger.Info("Connected to postgres")

	// Redis: feed states, matches, saved searches
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Redis.Addrs,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("create redis store: %w", err)
	}
	defer store.Close()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Redis.ReadinessTimeout)*time.Second); err != nil {
		return fmt.Errorf("redis not ready: %w", err)
	}
	logger.Info("Connected to redis")

	// Events are optional. Pass nil interfaces, not typed nil pointers.
	var (
		feedEvents   feeduc.EventPublisher
		searchEvents savedsearchuc.EventPublisher
		eventsHealth healthuc.Pinger
	)
	if cfg.Events.Enabled() {
		pub, err := amqpTransport.Dial(amqpTransport.Config{URL: cfg.Events.URL, Exchange: cfg.Events.Exchange})
		if err != nil {
			return fmt.Errorf("connect broker: %w", err)
		}
		defer func() {
			if err := pub.Close(); err != nil {
				logger.Warn("Error closing broker connection", zap.Error(err))
			}
		}()
		feedEvents, searchEvents, eventsHealth = pub, pub, pub
		logger.Info("Connected to broker", zap.String("exchange", cfg.Events.Exchange))
	}

	// Register domain metrics explicitly (no init())
	metrics.RegisterMatchingMetrics()

	// Repositories
	prefix := cfg.Redis.KeyPrefix
	rosterRepo := rosterrepo.New(pg)
	catalogRepo := catalogrepo.New(pg)
	stateRepo := feedstaterepo.New(store, prefix, time.Duration(cfg.Redis.FeedStateTTLSec)*time.Second)
	matchRepo := matchrepo.New(store, prefix)
	searchRepo := savedsearchrepo.New(store, prefix)

	// Use cases
	compatSvc := compatuc.New(rosterRepo)
	feedSvc := feeduc.New(rosterRepo, stateRepo, matchRepo, feedEvents)
	propertySvc := propertyuc.New(catalogRepo, cfg.Search.DefaultPageSize, cfg.Search.MaxPageSize)
	searchSvc := savedsearchuc.New(searchRepo, propertySvc, searchEvents, cfg.Feed.MaxSavedSearches)
	healthSvc := healthuc.New(pg, store, eventsHealth)

	server := chiTransport.NewServer(compatSvc, feedSvc, propertySvc, searchSvc, healthSvc)
	handler := newRouter(logger, cfg, server)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	serveErr := make(chan error, 1)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	case <-quit:
		logger.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
	return nil
}

// newRouter assembles the middleware chain in front of the API routes.
func newRouter(logger *zap.Logger, cfg config.Config, server *chiTransport.Server) http.Handler {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	if len(cfg.HTTP.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.HTTP.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"Location", "X-Request-ID"},
			MaxAge:         300,
		}))
	}
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys, cfg.Auth.PremiumKeys))
	r.Use(metrics.Middleware())
	server.Register(r)
	return r
}
