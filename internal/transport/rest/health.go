package rest

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const probeTimeout = 3 * time.Second

// pinger is anything the health endpoints can check.
type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health endpoints.
// The database is required; other components only degrade /health.
type HealthHandler struct {
	db        pinger
	optional  map[string]pinger
	version   string
	startedAt time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db pinger, version string) *HealthHandler {
	return &HealthHandler{
		db:        db,
		optional:  map[string]pinger{},
		version:   version,
		startedAt: time.Now(),
	}
}

// WithComponent registers an optional dependency such as the reset-token store.
func (h *HealthHandler) WithComponent(name string, p pinger) *HealthHandler {
	h.optional[name] = p
	return h
}

// HealthResponse is the body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the result of one component check.
type CompStatus struct {
	Status   string `json:"status"`
	Latency  string `json:"latency,omitempty"`
	Required bool   `json:"required"`
}

// Live handles GET /live. The process is alive if it can answer.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready handles GET /ready: 200 when the database answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	if check(ctx, h.db, true).Status != "ok" {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health handles GET /health. All components are pinged in parallel; the
// status is "down" with 503 when the database fails and "degraded" when only
// an optional component does.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	names := make([]string, 0, len(h.optional))
	for name := range h.optional {
		names = append(names, name)
	}
	sort.Strings(names)

	var (
		mu         sync.Mutex
		g          errgroup.Group
		components = make(map[string]CompStatus, len(names)+1)
	)
	run := func(name string, p pinger, required bool) {
		g.Go(func() error {
			st := check(ctx, p, required)
			mu.Lock()
			components[name] = st
			mu.Unlock()
			return nil
		})
	}
	run("database", h.db, true)
	for _, name := range names {
		run(name, h.optional[name], false)
	}
	_ = g.Wait()

	overall := "ok"
	for _, c := range components {
		switch {
		case c.Status == "ok":
		case c.Required:
			overall = "down"
		case overall == "ok":
			overall = "degraded"
		}
	}

	status := http.StatusOK
	if overall == "down" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Uptime:     time.Since(h.startedAt).Truncate(time.Second).String(),
		Components: components,
		Timestamp:  time.Now(),
	})
}

func check(ctx context.Context, p pinger, required bool) CompStatus {
	start := time.Now()
	if err := p.Ping(ctx); err != nil {
		return CompStatus{Status: "down", Required: required}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String(), Required: required}
}
