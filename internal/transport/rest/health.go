package rest

import (
	"context"
	"net/http"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

const probeTimeout = 3 * time.Second

// Pinger checks that a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandler serves the liveness, readiness and health endpoints over a
// fixed set of named components (database, redis).
type HealthHandler struct {
	components map[string]Pinger
	names      []string
	version    string
}

func NewHealthHandler(version string, components map[string]Pinger) *HealthHandler {
	names := make([]string, 0, len(components))
	for name := range components {
		names = append(names, name)
	}
	sort.Strings(names)
	return &HealthHandler{components: components, names: names, version: version}
}

// HealthResponse is the body of /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 as soon as any component fails its ping.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	for _, name := range h.names {
		p := h.components[name]
		g.Go(func() error { return p.Ping(gctx) })
	}
	h.write(w, g.Wait() == nil, HealthResponse{})
}

// Health pings every component and reports each one with its latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	statuses := h.probe(ctx)
	components := make(map[string]CompStatus, len(h.names))
	healthy := true
	for i, name := range h.names {
		components[name] = statuses[i]
		healthy = healthy && statuses[i].Status == "ok"
	}
	h.write(w, healthy, HealthResponse{Version: h.version, Components: components})
}

// probe pings all components concurrently. Unlike Ready, a failing component
// does not cancel the others, so every status is filled in.
func (h *HealthHandler) probe(ctx context.Context) []CompStatus {
	statuses := make([]CompStatus, len(h.names))
	var g errgroup.Group
	for i, name := range h.names {
		p := h.components[name]
		g.Go(func() error {
			start := time.Now()
			if err := p.Ping(ctx); err != nil {
				statuses[i] = CompStatus{Status: "down"}
				return nil
			}
			statuses[i] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
			return nil
		})
	}
	_ = g.Wait()
	return statuses
}

func (h *HealthHandler) write(w http.ResponseWriter, healthy bool, resp HealthResponse) {
	resp.Timestamp = time.Now()
	if healthy {
		resp.Status = "ok"
		writeJSON(w, http.StatusOK, resp)
		return
	}
	resp.Status = "down"
	writeJSON(w, http.StatusServiceUnavailable, resp)
}
