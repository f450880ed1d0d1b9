package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/clientforge-backend/internal/adapter/broker"
	"github.com/heartmarshall/clientforge-backend/internal/adapter/postgres"
	"github.com/heartmarshall/clientforge-backend/internal/adapter/postgres/adminlog"
	"github.com/heartmarshall/clientforge-backend/internal/adapter/postgres/authuser"
	"github.com/heartmarshall/clientforge-backend/internal/adapter/postgres/metrics"
	"github.com/heartmarshall/clientforge-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/clientforge-backend/internal/adapter/postgres/role"
	"github.com/heartmarshall/clientforge-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/clientforge-backend/internal/auth"
	"github.com/heartmarshall/clientforge-backend/internal/cache"
	"github.com/heartmarshall/clientforge-backend/internal/config"
	"github.com/heartmarshall/clientforge-backend/internal/service/admin"
	authsvc "github.com/heartmarshall/clientforge-backend/internal/service/auth"
	"github.com/heartmarshall/clientforge-backend/internal/service/dashboard"
	"github.com/heartmarshall/clientforge-backend/internal/transport/middleware"
	"github.com/heartmarshall/clientforge-backend/internal/transport/rest"
	"github.com/heartmarshall/clientforge-backend/migrations"
)

type publisher interface {
	Publish(ctx context.Context, queue string, body []byte) error
	Close()
}

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, optionally Redis and RabbitMQ, and serves HTTP until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("cache_backend", cfg.Cache.Backend),
		slog.Bool("broker_enabled", cfg.Broker.Enabled()),
	)

	// Step 1: Database
	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	checks := map[string]rest.Pinger{"database": pool}

	// Step 2: Query cache
	store, closeStore, err := NewCacheStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	if rs, ok := store.(*cache.RedisStore); ok {
		checks["cache"] = rest.PingFunc(rs.Ping)
	}
	queryCache := cache.New(store, logger)

	// Step 3: Mail events
	mail, err := newPublisher(cfg.Broker, logger)
	if err != nil {
		return err
	}
	defer mail.Close()

	// Step 4: Repositories and services
	txm := postgres.NewTxManager(pool)
	users := authuser.New(pool)
	profiles := profile.New(pool)
	roles := role.New(pool)
	tokens := token.New(pool)
	auditLog := adminlog.New(pool)
	metricsRepo := metrics.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, profiles, roles, tokens, txm, jwtManager, mail, cfg.Broker.MailQueue, cfg.Auth)
	dashboardService := dashboard.NewService(logger, metricsRepo, queryCache, cfg.Dashboard)
	adminService := admin.NewService(logger, profiles, roles, auditLog, metricsRepo, txm, queryCache, cfg.Dashboard)

	// Step 5: HTTP
	limiter := middleware.NewRateLimiter(cfg.RateLimit.Idle)

	handler := rest.NewRouter(rest.RouterDeps{
		Auth:          rest.NewAuthHandler(authService, logger),
		Dashboard:     rest.NewDashboardHandler(dashboardService, logger),
		Admin:         rest.NewAdminHandler(adminService, logger),
		Health:        rest.NewHealthHandler(Version, checks),
		Tokens:        authService,
		Roles:         authService,
		Limiter:       limiter,
		CORS:          cfg.CORS,
		AuthPerMinute: cfg.RateLimit.AuthPerMinute,
		Logger:        logger,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("shutdown complete")
	return nil
}

func newPublisher(cfg config.BrokerConfig, logger *slog.Logger) (publisher, error) {
	if !cfg.Enabled() {
		logger.Warn("broker disabled, mail events will only be logged")
		return broker.NewLogPublisher(logger), nil
	}
	p, err := broker.NewRabbitPublisher(cfg.URL, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to broker: %w", err)
	}
	return p, nil
}

// Compile-time interface assertion.
var _ rest.Pinger = (*pgxpool.Pool)(nil)
