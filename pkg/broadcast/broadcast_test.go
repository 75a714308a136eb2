package broadcast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_FanOutDeliversToEveryCursor(t *testing.T) {
	hub := NewHub[int]()
	a := hub.Subscribe()
	b := hub.Subscribe()

	hub.Publish(1)
	hub.Publish(2)

	// Draining one cursor must not consume the other's events.
	for _, c := range []*Cursor[int]{a, b} {
		v, ok := c.TryNext()
		require.True(t, ok)
		assert.Equal(t, 1, v)
		v, ok = c.TryNext()
		require.True(t, ok)
		assert.Equal(t, 2, v)
		_, ok = c.TryNext()
		assert.False(t, ok)
	}
}

func TestHub_CursorPreservesPublishOrder(t *testing.T) {
	hub := NewHub[int]()
	c := hub.Subscribe()

	for i := 0; i < 100; i++ {
		hub.Publish(i)
	}
	require.Equal(t, 100, c.Pending())
	for i := 0; i < 100; i++ {
		v, ok := c.TryNext()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

func TestHub_TryNextOnEmptyCursor(t *testing.T) {
	hub := NewHub[string]()
	c := hub.Subscribe()

	v, ok := c.TryNext()
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestHub_LateSubscriberMissesEarlierEvents(t *testing.T) {
	hub := NewHub[int]()
	hub.Publish(1)

	c := hub.Subscribe()
	_, ok := c.TryNext()
	assert.False(t, ok)

	hub.Publish(2)
	v, ok := c.TryNext()
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestHub_CloseDetachesCursor(t *testing.T) {
	hub := NewHub[int]()
	a := hub.Subscribe()
	b := hub.Subscribe()
	require.Equal(t, 2, hub.Subscribers())

	a.Close()
	assert.Equal(t, 1, hub.Subscribers())

	hub.Publish(7)
	assert.Equal(t, 0, a.Pending())
	assert.Equal(t, 1, b.Pending())
}
