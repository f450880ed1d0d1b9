package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}
	if c.Database.SlowQuery < 0 {
		return fmt.Errorf("database.slow_query must be >= 0 (got %s)", c.Database.SlowQuery)
	}
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		return fmt.Errorf("auth token TTLs must be positive")
	}

	switch c.Cache.Backend {
	case CacheBackendMemory, CacheBackendRedis:
	default:
		return fmt.Errorf("cache.backend must be %q or %q (got %q)", CacheBackendMemory, CacheBackendRedis, c.Cache.Backend)
	}
	if c.Cache.Backend == CacheBackendMemory && c.Cache.Size <= 0 {
		return fmt.Errorf("cache.size must be > 0 (got %d)", c.Cache.Size)
	}

	switch c.Dashboard.ActivityMode {
	case ActivityModePositional, ActivityModeMerge:
	default:
		return fmt.Errorf("dashboard.activity_mode must be %q or %q (got %q)", ActivityModePositional, ActivityModeMerge, c.Dashboard.ActivityMode)
	}
	if c.Dashboard.ActivityLimit <= 0 {
		return fmt.Errorf("dashboard.activity_limit must be > 0 (got %d)", c.Dashboard.ActivityLimit)
	}
	if c.Dashboard.AuditLimit == 0 {
		return fmt.Errorf("dashboard.audit_limit must be > 0")
	}

	if c.RateLimit.AuthPerMinute < 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be >= 0 (got %d)", c.RateLimit.AuthPerMinute)
	}

	return nil
}
