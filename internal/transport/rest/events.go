package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
	"github.com/heartmarshall/newsqa-backend/internal/event"
)

// DefaultHeartbeat keeps idle event streams open through proxies.
const DefaultHeartbeat = 25 * time.Second

type subscriber interface {
	Subscribe(ctx context.Context, f event.Filter) <-chan domain.Event
}

// EventHandler streams change signals as server-sent events.
type EventHandler struct {
	hub       subscriber
	heartbeat time.Duration
	log       *slog.Logger
}

// NewEventHandler creates an EventHandler. heartbeat <= 0 uses DefaultHeartbeat.
func NewEventHandler(hub subscriber, heartbeat time.Duration, logger *slog.Logger) *EventHandler {
	if heartbeat <= 0 {
		heartbeat = DefaultHeartbeat
	}
	return &EventHandler{hub: hub, heartbeat: heartbeat, log: logger.With("handler", "events")}
}

// Articles handles GET /articles/events: articles:changed for the home page.
func (h *EventHandler) Articles(w http.ResponseWriter, r *http.Request) {
	h.stream(w, r, event.Filter{Kind: domain.EventArticlesChanged})
}

// Article handles GET /articles/{id}/events: qa:posted for one article.
func (h *EventHandler) Article(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.stream(w, r, event.Filter{Kind: domain.EventQAPosted, ArticleID: id})
}

func (h *EventHandler) stream(w http.ResponseWriter, r *http.Request, f event.Filter) {
	rc := http.NewResponseController(w)

	// Streams outlive the server write timeout.
	if err := rc.SetWriteDeadline(time.Time{}); err != nil && err != http.ErrNotSupported {
		h.log.WarnContext(r.Context(), "clear write deadline", slog.String("error", err.Error()))
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	events := h.hub.Subscribe(ctx, f)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if _, err := fmt.Fprint(w, ": connected\n\n"); err != nil {
		return
	}
	if err := rc.Flush(); err != nil {
		h.log.ErrorContext(r.Context(), "streaming unsupported", slog.String("error", err.Error()))
		return
	}

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
		case e, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(e)
			if err != nil {
				h.log.ErrorContext(r.Context(), "encode event", slog.String("error", err.Error()))
				continue
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.Kind, data); err != nil {
				return
			}
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}
