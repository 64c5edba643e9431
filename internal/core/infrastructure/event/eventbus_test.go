package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventconfig "github.com/weisyn/assetbridge/internal/config/event"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/event"
	"github.com/weisyn/assetbridge/pkg/types"
)

func TestEventBusSync(t *testing.T) {
	bus := New(eventconfig.New(nil))

	var received string
	handler := func(data string) { received = data }

	require.NoError(t, bus.Subscribe(event.EventType("psp22:transfer"), handler))
	assert.True(t, bus.HasCallback("psp22:transfer"))

	bus.Publish("psp22:transfer", "hello")
	assert.Equal(t, "hello", received)
	assert.Equal(t, uint64(1), bus.PublishedCount())

	require.NoError(t, bus.Unsubscribe("psp22:transfer", handler))
	assert.False(t, bus.HasCallback("psp22:transfer"))
}

func TestEventBusAsync(t *testing.T) {
	bus := New(eventconfig.New(nil))

	var mu sync.Mutex
	count := 0
	require.NoError(t, bus.SubscribeAsync("psp22:approval", func(n int) {
		mu.Lock()
		count += n
		mu.Unlock()
	}, true))

	for i := 0; i < 10; i++ {
		bus.Publish("psp22:approval", 1)
	}
	bus.WaitAsync()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 10, count)
}

func TestEventBusDisabled(t *testing.T) {
	bus := New(eventconfig.New(&types.UserEventConfig{Enabled: types.BoolPtr(false)}))

	called := false
	require.NoError(t, bus.Subscribe("psp22:transfer", func() { called = true }))
	bus.Publish("psp22:transfer")

	assert.False(t, called)
	assert.Zero(t, bus.PublishedCount())
}
