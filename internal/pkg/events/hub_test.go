package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laupm3/workforce-backend-go/internal/domain/event"
)

func TestHubDeliversToSubscribers(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe()
	defer cleanup()

	hub.Emit(context.Background(), event.Event{
		Type:    event.TypeAbsenceNoteOpened,
		ActorID: "emp-1",
	})

	select {
	case evt := <-ch:
		assert.Equal(t, event.TypeAbsenceNoteOpened, evt.Type)
		assert.NotEmpty(t, evt.ID)
		assert.False(t, evt.OccurredAt.IsZero())
	case <-time.After(time.Second):
		t.Fatal("expected event delivery")
	}
}

func TestHubUnsubscribedChannelIsClosed(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe()
	cleanup()

	_, open := <-ch
	require.False(t, open)

	// emitting after cleanup must not panic on the closed channel
	hub.Emit(context.Background(), event.Event{Type: event.TypeTemplateCreated})
}
