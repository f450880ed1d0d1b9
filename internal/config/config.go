package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Cache     CacheConfig     `yaml:"cache"`
	Redis     RedisConfig     `yaml:"redis"`
	Broker    BrokerConfig    `yaml:"broker"`
	Mail      MailConfig      `yaml:"mail"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
	SlowQuery       time.Duration `yaml:"slow_query"         env:"DATABASE_SLOW_QUERY"         env-default:"250ms"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret"        env:"AUTH_JWT_SECRET"        env-required:"true"`
	JWTIssuer       string        `yaml:"jwt_issuer"        env:"AUTH_JWT_ISSUER"        env-default:"clientforge"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl"  env:"AUTH_ACCESS_TOKEN_TTL"  env-default:"15m"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env:"AUTH_REFRESH_TOKEN_TTL" env-default:"720h"`
	VerificationTTL time.Duration `yaml:"verification_ttl"  env:"AUTH_VERIFICATION_TTL"  env-default:"24h"`
	ResetTTL        time.Duration `yaml:"reset_ttl"         env:"AUTH_RESET_TTL"         env-default:"1h"`
	BcryptCost      int           `yaml:"bcrypt_cost"       env:"AUTH_BCRYPT_COST"       env-default:"12"`
	// AppBaseURL prefixes links sent in verification and reset e-mails.
	AppBaseURL string `yaml:"app_base_url" env:"AUTH_APP_BASE_URL" env-default:"http://localhost:5173"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// CacheConfig selects and sizes the query cache.
type CacheConfig struct {
	Backend string        `yaml:"backend" env:"CACHE_BACKEND" env-default:"memory"`
	TTL     time.Duration `yaml:"ttl"     env:"CACHE_TTL"     env-default:"30s"`
	Size    int           `yaml:"size"    env:"CACHE_SIZE"    env-default:"1024"`
}

// RedisConfig holds Redis connection settings. Used when cache.backend is redis.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
	Prefix   string `yaml:"prefix"   env:"REDIS_PREFIX"   env-default:"clientforge:"`
}

// BrokerConfig holds RabbitMQ settings. An empty URL disables publishing.
type BrokerConfig struct {
	URL        string `yaml:"url"         env:"BROKER_URL"`
	MailQueue  string `yaml:"mail_queue"  env:"BROKER_MAIL_QUEUE"  env-default:"auth.email"`
	ConsumerID string `yaml:"consumer_id" env:"BROKER_CONSUMER_ID" env-default:"mailer"`
}

// Enabled reports whether a broker URL is configured.
func (b BrokerConfig) Enabled() bool {
	return strings.TrimSpace(b.URL) != ""
}

// MailConfig holds SMTP settings for cmd/mailer. An empty host makes the
// mailer log messages instead of sending them.
type MailConfig struct {
	SMTPHost string `yaml:"smtp_host" env:"MAIL_SMTP_HOST"`
	SMTPPort int    `yaml:"smtp_port" env:"MAIL_SMTP_PORT" env-default:"587"`
	Username string `yaml:"username"  env:"MAIL_USERNAME"`
	Password string `yaml:"password"  env:"MAIL_PASSWORD"`
	From     string `yaml:"from"      env:"MAIL_FROM"      env-default:"no-reply@clientforge.local"`
}

// Activity feed modes.
const (
	ActivityModePositional = "positional"
	ActivityModeMerge      = "merge"
)

// DashboardConfig holds dashboard presentation settings.
type DashboardConfig struct {
	ActivityMode  string `yaml:"activity_mode"  env:"DASHBOARD_ACTIVITY_MODE"  env-default:"positional"`
	ActivityLimit int    `yaml:"activity_limit" env:"DASHBOARD_ACTIVITY_LIMIT" env-default:"5"`
	AuditLimit    uint64 `yaml:"audit_limit"    env:"DASHBOARD_AUDIT_LIMIT"    env-default:"100"`
}

// RateLimitConfig limits requests per client IP on the /auth routes.
type RateLimitConfig struct {
	AuthPerMinute int           `yaml:"auth_per_minute" env:"RATE_LIMIT_AUTH_PER_MINUTE" env-default:"20"`
	Idle          time.Duration `yaml:"idle"            env:"RATE_LIMIT_IDLE"            env-default:"5m"`
}
