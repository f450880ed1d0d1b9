// Command cleanup-tokens deletes expired and revoked refresh tokens and
// used or expired one-time e-mail tokens.
//
// Usage:
//
//	cleanup-tokens
//
// Reads the same configuration as the server (DATABASE_DSN at minimum).
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/clientforge-backend/internal/adapter/broker"
	"github.com/heartmarshall/clientforge-backend/internal/adapter/postgres"
	"github.com/heartmarshall/clientforge-backend/internal/adapter/postgres/authuser"
	"github.com/heartmarshall/clientforge-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/clientforge-backend/internal/adapter/postgres/role"
	"github.com/heartmarshall/clientforge-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/clientforge-backend/internal/app"
	"github.com/heartmarshall/clientforge-backend/internal/auth"
	"github.com/heartmarshall/clientforge-backend/internal/config"
	authsvc "github.com/heartmarshall/clientforge-backend/internal/service/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := authsvc.NewService(logger,
		authuser.New(pool), profile.New(pool), role.New(pool), token.New(pool),
		postgres.NewTxManager(pool),
		auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		broker.NewLogPublisher(logger), cfg.Broker.MailQueue, cfg.Auth,
	)

	res, err := svc.CleanupExpiredTokens(ctx)
	if err != nil {
		logger.Error("cleanup tokens", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("Deleted %d refresh tokens and %d one-time tokens in %s.\n",
		res.RefreshTokens, res.AuthTokens, res.Took.Round(time.Millisecond))
}
