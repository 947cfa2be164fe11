package rest

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const healthTimeout = 3 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

type subscriberCounter interface {
	Subscribers() int
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	version string
	db      pinger
	broker  pinger
	events  subscriberCounter
}

// NewHealthHandler creates a HealthHandler. broker is nil when events stay
// in-process; events may be nil in tests.
func NewHealthHandler(version string, db, broker pinger, events subscriberCounter) *HealthHandler {
	return &HealthHandler{version: version, db: db, broker: broker, events: events}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status      string                `json:"status"`
	Version     string                `json:"version,omitempty"`
	Components  map[string]CompStatus `json:"components,omitempty"`
	Subscribers *int                  `json:"subscribers,omitempty"`
	Timestamp   time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live reports liveness. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready reports readiness: 200 when the database answers, 503 if not.
// The broker is left out so that a Redis outage does not take the site
// out of rotation.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health pings every dependency concurrently and reports each with its
// latency, plus the build version and the number of open event streams.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	checks := map[string]pinger{"database": h.db}
	if h.broker != nil {
		checks["redis"] = h.broker
	}

	var (
		mu         sync.Mutex
		components = make(map[string]CompStatus, len(checks))
	)
	g, gctx := errgroup.WithContext(ctx)
	for name, p := range checks {
		g.Go(func() error {
			start := time.Now()
			st := CompStatus{Status: "ok"}
			if err := p.Ping(gctx); err != nil {
				st = CompStatus{Status: "down", Error: err.Error()}
			} else {
				st.Latency = time.Since(start).String()
			}
			mu.Lock()
			components[name] = st
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	}
	for _, c := range components {
		if c.Status != "ok" {
			resp.Status = "down"
		}
	}
	if h.events != nil {
		n := h.events.Subscribers()
		resp.Subscribers = &n
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}
