package hub

import (
	"bytes"
	"testing"
	"time"
)

// newTestClient builds a client without a websocket connection. The pumps are
// never started, so the hub only ever touches the send channel.
func newTestClient(h *Hub, buffer int) *Client {
	return &Client{hub: h, send: make(chan []byte, buffer)}
}

// waitForCount polls until the hub reports n clients.
func waitForCount(t *testing.T, h *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if h.ClientCount() == n {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("ClientCount = %d, want %d", h.ClientCount(), n)
}

// recv reads one broadcast message from a client's send channel.
func recv(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case msg, ok := <-c.send:
		if !ok {
			t.Fatal("send channel closed before message arrived")
		}
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for broadcast")
	}
	return nil
}

func TestNew(t *testing.T) {
	h := New("events")

	if h == nil {
		t.Fatal("New returned nil")
	}
	if h.ClientCount() != 0 {
		t.Error("ClientCount should be 0 initially")
	}
	if h.IsRunning() {
		t.Error("IsRunning should be false before Run")
	}
}

func TestRegisterUnregister(t *testing.T) {
	h := New("test")
	go h.Run()

	c := newTestClient(h, 4)
	h.register <- c
	waitForCount(t, h, 1)

	if !h.IsRunning() {
		t.Error("IsRunning should be true after Run starts")
	}

	h.unregister <- c
	waitForCount(t, h, 0)

	// The hub closes the send channel on unregister.
	if _, ok := <-c.send; ok {
		t.Error("send channel should be closed after unregister")
	}
}

func TestBroadcastDeliversToAllClients(t *testing.T) {
	h := New("test")
	go h.Run()

	a := newTestClient(h, 4)
	b := newTestClient(h, 4)
	h.register <- a
	h.register <- b
	waitForCount(t, h, 2)

	h.Broadcast([]byte("buzz"))

	for _, c := range []*Client{a, b} {
		if got := recv(t, c); !bytes.Equal(got, []byte("buzz")) {
			t.Errorf("received %q, want %q", got, "buzz")
		}
	}
}

func TestBroadcastJSON(t *testing.T) {
	h := New("test")
	go h.Run()

	c := newTestClient(h, 4)
	h.register <- c
	waitForCount(t, h, 1)

	if err := h.BroadcastJSON(map[string]string{"state": "started"}); err != nil {
		t.Fatalf("BroadcastJSON error: %v", err)
	}
	if got := recv(t, c); !bytes.Contains(got, []byte(`"state":"started"`)) {
		t.Errorf("broadcast payload = %s", got)
	}

	if err := h.BroadcastJSON(make(chan int)); err == nil {
		t.Error("BroadcastJSON should reject unmarshalable values")
	}
}

func TestSlowClientDropped(t *testing.T) {
	h := New("test")
	go h.Run()

	fast := newTestClient(h, 4)
	slow := newTestClient(h, 1)
	h.register <- fast
	h.register <- slow
	waitForCount(t, h, 2)

	// The slow client never drains: its one-slot buffer fills on the first
	// message, so the second drops it from the hub.
	h.Broadcast([]byte("one"))
	h.Broadcast([]byte("two"))
	waitForCount(t, h, 1)

	if got := recv(t, fast); !bytes.Equal(got, []byte("one")) {
		t.Errorf("fast client got %q, want %q", got, "one")
	}
	if got := recv(t, fast); !bytes.Equal(got, []byte("two")) {
		t.Errorf("fast client got %q, want %q", got, "two")
	}

	// The dropped client keeps what it buffered; its channel is then closed
	// so the write pump sends a close frame.
	if got := recv(t, slow); !bytes.Equal(got, []byte("one")) {
		t.Errorf("slow client got %q, want %q", got, "one")
	}
	if _, ok := <-slow.send; ok {
		t.Error("slow client's send channel should be closed after the drop")
	}

	// The surviving client still receives broadcasts.
	h.Broadcast([]byte("three"))
	if got := recv(t, fast); !bytes.Equal(got, []byte("three")) {
		t.Errorf("fast client got %q, want %q", got, "three")
	}
}
