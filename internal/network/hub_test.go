package network

import (
	"os"
	"testing"

	"tunnel-server/pkg/api"
	"tunnel-server/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestBroadcaster_RegisterAndBroadcast(t *testing.T) {
	b := NewBroadcaster()
	a := b.Register("a")
	c := b.Register("c")

	b.Broadcast(api.ServerResponse{Type: "UPDATE", Tick: 7})

	require.Len(t, a, 1)
	require.Len(t, c, 1)
	assert.Equal(t, 7, (<-a).Tick)
	assert.Equal(t, 7, (<-c).Tick)
	assert.Equal(t, 2, b.SubscriberCount())
}

func TestBroadcaster_SendTo(t *testing.T) {
	b := NewBroadcaster()
	a := b.Register("a")
	c := b.Register("c")

	b.SendTo("a", api.ServerResponse{Tick: 1})
	b.SendTo("missing", api.ServerResponse{Tick: 2})

	assert.Len(t, a, 1)
	assert.Len(t, c, 0)
}

func TestBroadcaster_ReRegisterClosesOld(t *testing.T) {
	b := NewBroadcaster()
	old := b.Register("a")
	fresh := b.Register("a")

	_, ok := <-old
	assert.False(t, ok, "old channel must be closed")
	assert.True(t, b.HasSubscriber("a"))

	b.Unregister("a")
	_, ok = <-fresh
	assert.False(t, ok)
	assert.False(t, b.HasSubscriber("a"))
}

func TestBroadcaster_DropsWhenFull(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("slow")

	for i := 0; i < subscriberBuffer+5; i++ {
		b.Broadcast(api.ServerResponse{Tick: i})
	}

	assert.Len(t, ch, subscriberBuffer)
	assert.Equal(t, 5, b.Dropped("slow"))
}
