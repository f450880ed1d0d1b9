// Command promote grants the admin role to an existing account by e-mail.
// It is used to bootstrap the first admin user. The change is written to the
// audit log with the promoted user as actor, and the admin lists are dropped
// from the shared redis cache when that backend is configured.
//
// Usage:
//
//	promote --email=user@example.com
//
// Reads the same configuration as the server (DATABASE_DSN at minimum).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/clientforge-backend/internal/adapter/postgres"
	"github.com/heartmarshall/clientforge-backend/internal/adapter/postgres/adminlog"
	"github.com/heartmarshall/clientforge-backend/internal/adapter/postgres/authuser"
	"github.com/heartmarshall/clientforge-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/clientforge-backend/internal/adapter/postgres/role"
	"github.com/heartmarshall/clientforge-backend/internal/app"
	"github.com/heartmarshall/clientforge-backend/internal/cache"
	"github.com/heartmarshall/clientforge-backend/internal/config"
	"github.com/heartmarshall/clientforge-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of user to promote to admin")
	flag.Parse()

	if strings.TrimSpace(*email) == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com")
		os.Exit(1)
	}

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

	users := authuser.New(pool)
	profiles := profile.New(pool)
	roles := role.New(pool)
	audit := adminlog.New(pool)
	txm := postgres.NewTxManager(pool)

	user, err := users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(*email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Printf("No user found with email %q.\n", *email)
			os.Exit(1)
		}
		logger.Error("lookup user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	current, err := roles.EffectiveRole(ctx, user.ID)
	if err != nil {
		logger.Error("resolve role", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if current.IsAdmin() {
		fmt.Printf("User %q is already an admin.\n", *email)
		return
	}

	err = txm.RunInTx(ctx, func(ctx context.Context) error {
		if err := profiles.LockByUserID(ctx, user.ID); err != nil {
			return fmt.Errorf("lock profile: %w", err)
		}
		if err := roles.Replace(ctx, user.ID, domain.UserRoleAdmin); err != nil {
			return fmt.Errorf("replace role: %w", err)
		}
		entry := domain.NewAdminLogEntry(user.ID, domain.AdminActionChangeRole, user.ID, domain.TableUserRoles,
			map[string]any{"new_role": domain.UserRoleAdmin.String(), "source": "promote"})
		return audit.Create(ctx, entry)
	})
	if err != nil {
		logger.Error("promote user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("user promoted", slog.String("user_id", user.ID.String()))

	// Servers on the redis backend would otherwise list the old role for a TTL.
	if done, err := app.InvalidateShared(ctx, cfg, logger, cache.KeyAdminUsers, cache.KeyAuditLogs); err != nil {
		logger.Warn("cache invalidation failed, admin lists refresh after cache.ttl", slog.String("error", err.Error()))
	} else if !done {
		logger.Info("memory cache backend, admin lists refresh after cache.ttl", slog.Duration("ttl", cfg.Cache.TTL))
	}
	fmt.Printf("User %q promoted to admin.\n", *email)
}
