package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/api"
)

func TestRegisterAndBroadcast(t *testing.T) {
	h := NewHub()
	a := h.Register("session-a")
	b := h.Register("session-b")
	assert.Equal(t, 2, h.SubscriberCount())

	h.Broadcast(api.ServerResponse{Tick: 7})

	msg := <-a
	assert.Equal(t, int64(7), msg.Tick)
	msg = <-b
	assert.Equal(t, int64(7), msg.Tick)
}

func TestSendToReachesOnlyOneSession(t *testing.T) {
	h := NewHub()
	a := h.Register("session-a")
	b := h.Register("session-b")

	h.SendTo("session-a", api.ServerResponse{Tick: 3})

	msg := <-a
	assert.Equal(t, int64(3), msg.Tick)
	select {
	case <-b:
		t.Fatal("session-b must not receive a targeted message")
	default:
	}
}

func TestUnregisterClosesChannel(t *testing.T) {
	h := NewHub()
	ch := h.Register("session-a")
	h.Unregister("session-a")

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, h.SubscriberCount())

	// Повторная отписка безвредна
	h.Unregister("session-a")
}

func TestReconnectReplacesChannel(t *testing.T) {
	h := NewHub()
	old := h.Register("session-a")
	fresh := h.Register("session-a")

	_, open := <-old
	assert.False(t, open, "reconnect must close the stale channel")
	assert.Equal(t, 1, h.SubscriberCount())

	h.Broadcast(api.ServerResponse{Tick: 1})
	msg := <-fresh
	assert.Equal(t, int64(1), msg.Tick)
}

func TestBroadcastSkipsFullChannel(t *testing.T) {
	h := NewHub()
	ch := h.Register("slow")

	// Переполняем личный канал: рассылка не должна заблокироваться
	for i := 0; i < 150; i++ {
		h.Broadcast(api.ServerResponse{Tick: int64(i)})
	}

	require.Len(t, ch, 100)
	msg := <-ch
	assert.Equal(t, int64(0), msg.Tick)
}
