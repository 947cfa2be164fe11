// Package event fans out change notifications to in-process subscribers.
package event

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
)

// DefaultBuffer is the per-subscriber channel capacity.
const DefaultBuffer = 16

// Filter selects the events a subscriber receives.
type Filter struct {
	// Kind restricts delivery to one event kind; empty means all kinds.
	Kind domain.EventKind
	// ArticleID restricts delivery to one article; uuid.Nil means all.
	ArticleID uuid.UUID
}

func (f Filter) match(e domain.Event) bool {
	if f.Kind != "" && f.Kind != e.Kind {
		return false
	}
	if f.ArticleID != uuid.Nil && f.ArticleID != e.ArticleID {
		return false
	}
	return true
}

type subscriber struct {
	ch     chan domain.Event
	filter Filter
}

// Hub is an in-memory publish/subscribe hub. Publish never blocks: an event
// for a subscriber whose buffer is full is dropped.
type Hub struct {
	mu     sync.RWMutex
	subs   map[*subscriber]struct{}
	buffer int
	log    *slog.Logger
}

// NewHub creates a Hub. buffer <= 0 uses DefaultBuffer.
func NewHub(logger *slog.Logger, buffer int) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Hub{
		subs:   make(map[*subscriber]struct{}),
		buffer: buffer,
		log:    logger.With("component", "event_hub"),
	}
}

// Publish delivers e to every matching subscriber without blocking.
func (h *Hub) Publish(ctx context.Context, e domain.Event) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for s := range h.subs {
		if !s.filter.match(e) {
			continue
		}
		select {
		case s.ch <- e:
		default:
			h.log.WarnContext(ctx, "event dropped: subscriber buffer full",
				slog.String("kind", string(e.Kind)),
				slog.String("article_id", e.ArticleID.String()),
			)
		}
	}
	return nil
}

// Subscribe registers a subscriber until ctx is done. The returned channel is
// closed after the subscription ends.
func (h *Hub) Subscribe(ctx context.Context, f Filter) <-chan domain.Event {
	s := &subscriber{ch: make(chan domain.Event, h.buffer), filter: f}

	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.subs, s)
		h.mu.Unlock()
		close(s.ch)
	}()

	return s.ch
}

// Subscribers returns the number of active subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
