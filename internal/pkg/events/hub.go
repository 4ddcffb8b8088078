package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/laupm3/workforce-backend-go/internal/domain/event"
)

// Hub is the in-process fan-out point for domain events. Collaborators
// subscribe once and receive every emitted event; slow subscribers are
// skipped rather than blocking the emitting operation.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan event.Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan event.Event]struct{}),
	}
}

// Subscribe registers a new subscriber and returns the event channel and a
// cleanup function.
func (h *Hub) Subscribe() (chan event.Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan event.Event, 16)
	h.subscribers[ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subscribers[ch]; ok {
			delete(h.subscribers, ch)
			close(ch)
		}
	}

	return ch, cleanup
}

// Emit implements event.Emitter. The event id and timestamp are filled here
// so callers only describe the fact.
func (h *Hub) Emit(_ context.Context, evt event.Event) {
	if evt.ID == "" {
		evt.ID = uuid.NewString()
	}
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now().UTC()
	}

	slog.Info("domain event", "type", string(evt.Type), "id", evt.ID, "actor", evt.ActorID)

	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers {
		select {
		case ch <- evt:
		default:
			// subscriber buffer full, drop rather than block the operation
		}
	}
}
