package broadcast

import (
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"
)

// Hub fans events out to any number of independent subscribers. Every cursor
// receives every event published after it subscribed, in publish order, and
// draining one cursor never consumes events another cursor would read.
type Hub[T any] struct {
	nextID  atomic.Uint64
	cursors *xsync.Map[uint64, *Cursor[T]]
}

func NewHub[T any]() *Hub[T] {
	return &Hub[T]{cursors: xsync.NewMap[uint64, *Cursor[T]]()}
}

// Publish appends ev to every live cursor's queue. Never blocks.
func (h *Hub[T]) Publish(ev T) {
	h.cursors.Range(func(_ uint64, c *Cursor[T]) bool {
		c.push(ev)
		return true
	})
}

// Subscribe registers a new cursor starting at the current end of the stream.
func (h *Hub[T]) Subscribe() *Cursor[T] {
	c := &Cursor[T]{hub: h, id: h.nextID.Add(1)}
	h.cursors.Store(c.id, c)
	return c
}

// Subscribers reports the number of live cursors.
func (h *Hub[T]) Subscribers() int { return h.cursors.Size() }

// Cursor is one subscriber's private FIFO view of a hub's stream.
type Cursor[T any] struct {
	hub *Hub[T]
	id  uint64

	mu    sync.Mutex
	queue []T
}

func (c *Cursor[T]) push(ev T) {
	c.mu.Lock()
	c.queue = append(c.queue, ev)
	c.mu.Unlock()
}

// TryNext pops the oldest pending event without blocking. The second return
// is false when nothing is pending; that is a normal outcome, not an error.
func (c *Cursor[T]) TryNext() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.queue) == 0 {
		var zero T
		return zero, false
	}
	ev := c.queue[0]
	c.queue = c.queue[1:]
	return ev, true
}

// Pending reports how many events are queued on this cursor.
func (c *Cursor[T]) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

// Close detaches the cursor from its hub. Undrained events are discarded.
func (c *Cursor[T]) Close() { c.hub.cursors.Delete(c.id) }
