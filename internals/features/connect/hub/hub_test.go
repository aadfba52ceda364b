package hub

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/stretchr/testify/assert"
)

// trackingConn records writes and flags any two arriving concurrently.
type trackingConn struct {
	active  int32
	overlap int32
	writes  int32
}

func (c *trackingConn) WriteMessage(_ int, _ []byte) error {
	if atomic.AddInt32(&c.active, 1) > 1 {
		atomic.StoreInt32(&c.overlap, 1)
	}
	time.Sleep(time.Millisecond)
	atomic.AddInt32(&c.active, -1)
	atomic.AddInt32(&c.writes, 1)
	return nil
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	h := New()
	c1 := &websocket.Conn{}
	c2 := &websocket.Conn{}

	h.Subscribe("general", c1)
	h.Subscribe("general", c2)
	assert.Equal(t, 2, h.SubscriberCount("general"))

	h.Unsubscribe("general", c1)
	assert.Equal(t, 1, h.SubscriberCount("general"))

	h.Unsubscribe("general", c2)
	assert.Equal(t, 0, h.SubscriberCount("general"))
}

func TestUnsubscribeUnknownChannelIsNoop(t *testing.T) {
	h := New()
	h.Unsubscribe("missing", &websocket.Conn{})
	assert.Equal(t, 0, h.SubscriberCount("missing"))
}

func TestChannelsAreIsolated(t *testing.T) {
	h := New()
	h.Subscribe("a", &websocket.Conn{})
	h.Subscribe("b", &websocket.Conn{})
	h.Subscribe("b", &websocket.Conn{})

	assert.Equal(t, 1, h.SubscriberCount("a"))
	assert.Equal(t, 2, h.SubscriberCount("b"))
}

func TestConcurrentSubscribes(t *testing.T) {
	h := New()
	var wg sync.WaitGroup
	conns := make([]*websocket.Conn, 50)
	for i := range conns {
		conns[i] = &websocket.Conn{}
	}

	for _, c := range conns {
		wg.Add(1)
		go func(c *websocket.Conn) {
			defer wg.Done()
			h.Subscribe("busy", c)
		}(c)
	}
	wg.Wait()
	assert.Equal(t, len(conns), h.SubscriberCount("busy"))
}

func TestBroadcastSerializesWritesPerConnection(t *testing.T) {
	h := New()
	conn := &trackingConn{}
	h.Subscribe("general", conn)

	const broadcasts = 20
	var wg sync.WaitGroup
	for i := 0; i < broadcasts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Broadcast("general", []byte(`{"message_body":"hi"}`))
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 0, atomic.LoadInt32(&conn.overlap),
		"two writers entered the same connection concurrently")
	assert.EqualValues(t, broadcasts, atomic.LoadInt32(&conn.writes))
}

func TestBroadcastReachesAllSubscribers(t *testing.T) {
	h := New()
	c1 := &trackingConn{}
	c2 := &trackingConn{}
	h.Subscribe("general", c1)
	h.Subscribe("general", c2)
	h.Subscribe("other", &trackingConn{})

	h.Broadcast("general", []byte("x"))

	assert.EqualValues(t, 1, atomic.LoadInt32(&c1.writes))
	assert.EqualValues(t, 1, atomic.LoadInt32(&c2.writes))
}
