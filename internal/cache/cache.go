// Package cache provides the keyed query cache that sits between services and
// repositories. Reads go through Fetch; mutations call Invalidate with the key
// prefixes they affect.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Key prefixes.
const (
	KeyAdminUsers  = "admin-users"
	KeyAuditLogs   = "audit-logs"
	KeyLeads       = "leads"
	KeyConversions = "conversions"
	KeyRevenue     = "revenue"
	KeyCampaigns   = "campaigns"
)

var (
	hitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clientforge_cache_hits_total",
		Help: "Query cache hits by key prefix.",
	}, []string{"prefix"})
	missesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clientforge_cache_misses_total",
		Help: "Query cache misses by key prefix.",
	}, []string{"prefix"})
	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clientforge_cache_errors_total",
		Help: "Query cache backend errors by operation.",
	}, []string{"op"})
)

// Store is a byte-oriented cache backend.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	// DeletePrefix removes every key starting with prefix.
	DeletePrefix(ctx context.Context, prefix string) error
}

// Cache wraps a Store. Backend failures are logged and counted but never
// fail a read: a broken cache degrades to a pass-through.
type Cache struct {
	store  Store
	logger *slog.Logger
}

// New creates a Cache over store.
func New(store Store, logger *slog.Logger) *Cache {
	return &Cache{store: store, logger: logger.With("component", "cache")}
}

// Key joins parts with ":".
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}

// Fetch returns the cached value for key, or calls load, caches its result
// and returns it. Errors from load are returned as-is and never cached.
func Fetch[T any](ctx context.Context, c *Cache, key string, load func(ctx context.Context) (T, error)) (T, error) {
	prefix := prefixOf(key)

	if raw, ok, err := c.store.Get(ctx, key); err != nil {
		errorsTotal.WithLabelValues("get").Inc()
		c.logger.WarnContext(ctx, "cache get failed", slog.String("key", key), slog.String("error", err.Error()))
	} else if ok {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			hitsTotal.WithLabelValues(prefix).Inc()
			return v, nil
		}
		errorsTotal.WithLabelValues("decode").Inc()
	}
	missesTotal.WithLabelValues(prefix).Inc()

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	raw, err := json.Marshal(v)
	if err != nil {
		errorsTotal.WithLabelValues("encode").Inc()
		return v, nil
	}
	if err := c.store.Set(ctx, key, raw); err != nil {
		errorsTotal.WithLabelValues("set").Inc()
		c.logger.WarnContext(ctx, "cache set failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	return v, nil
}

// Invalidate drops every entry under each prefix.
func (c *Cache) Invalidate(ctx context.Context, prefixes ...string) {
	for _, p := range prefixes {
		if err := c.store.DeletePrefix(ctx, p); err != nil {
			errorsTotal.WithLabelValues("invalidate").Inc()
			c.logger.ErrorContext(ctx, "cache invalidate failed", slog.String("prefix", p), slog.String("error", err.Error()))
		}
	}
}

func prefixOf(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i]
	}
	return key
}
