package rest

import (
	"context"
	"net/http"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

const healthTimeout = 3 * time.Second

// Pinger is a dependency that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

// Ping calls f.
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	version string
	checks  map[string]Pinger
}

// NewHealthHandler creates a HealthHandler. Readiness requires every named
// component to answer Ping.
func NewHealthHandler(version string, checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{version: version, checks: checks}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 if every component is up, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	overall, _ := h.probe(r.Context())
	writeJSON(w, statusCode(overall), HealthResponse{
		Status:    overall,
		Timestamp: time.Now(),
	})
}

// Health is the full health check with per-component latency and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	overall, components := h.probe(r.Context())
	writeJSON(w, statusCode(overall), HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

// Names returns the registered component names in sorted order.
func (h *HealthHandler) Names() []string {
	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// probe pings every component concurrently.
func (h *HealthHandler) probe(ctx context.Context) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	names := h.Names()
	results := make([]CompStatus, len(names))

	var g errgroup.Group
	for i, name := range names {
		p := h.checks[name]
		g.Go(func() error {
			start := time.Now()
			if err := p.Ping(ctx); err != nil {
				results[i] = CompStatus{Status: "down"}
				return nil
			}
			results[i] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
			return nil
		})
	}
	_ = g.Wait()

	overall := "ok"
	components := make(map[string]CompStatus, len(names))
	for i, name := range names {
		components[name] = results[i]
		if results[i].Status != "ok" {
			overall = "down"
		}
	}
	return overall, components
}

func statusCode(overall string) int {
	if overall != "ok" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
