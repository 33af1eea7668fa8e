// Package bridge provides a Go client for a hapticd bridge daemon: REST
// commands over HTTP plus a playback event subscription over WebSocket.
package bridge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/hapticlabs/go-haptics/internal/httpc"
	"github.com/hapticlabs/go-haptics/pkg/actuator"
	"github.com/hapticlabs/go-haptics/pkg/haptic"
	"github.com/hapticlabs/go-haptics/pkg/protocol"
)

// Client talks to one hapticd instance.
type Client struct {
	baseURL string
	wsURL   string
	http    *http.Client

	mu     sync.Mutex
	events *websocket.Conn
	closed bool
}

// New creates a client for the daemon at addr (host:port).
func New(addr string) *Client {
	return &Client{
		baseURL: fmt.Sprintf("http://%s", addr),
		wsURL:   fmt.Sprintf("ws://%s/ws/events", addr),
		http:    httpc.Client,
	}
}

// Play submits a declarative pattern and returns the playback id ("" when the
// pattern compiled to nothing).
func (c *Client) Play(events []haptic.Event) (string, error) {
	var out struct {
		PlaybackID string `json:"playback_id"`
	}
	if err := c.post("/api/play", protocol.FromEvents(events), &out); err != nil {
		return "", err
	}
	return out.PlaybackID, nil
}

// Impact plays an impact preset on the daemon.
func (c *Client) Impact(style haptic.ImpactStyle) error {
	return c.post("/api/impact/"+string(style), nil, nil)
}

// Notification plays a notification preset on the daemon.
func (c *Client) Notification(style haptic.NotificationStyle) error {
	return c.post("/api/notification/"+string(style), nil, nil)
}

// Cancel stops in-flight playback on the daemon.
func (c *Client) Cancel() error {
	return c.post("/api/cancel", nil, nil)
}

// Capabilities queries the daemon's capability probe.
func (c *Client) Capabilities() (actuator.Capabilities, error) {
	var caps actuator.Capabilities
	err := c.get("/api/capabilities", &caps)
	return caps, err
}

// Subscribe opens the playback event stream and invokes onEvent for every
// lifecycle event until the connection drops or Close is called. It blocks;
// run it in a goroutine.
func (c *Client) Subscribe(onEvent func(protocol.PlaybackData)) error {
	dialer := websocket.Dialer{
		HandshakeTimeout: 5 * time.Second,
	}
	conn, _, err := dialer.Dial(c.wsURL, nil)
	if err != nil {
		return fmt.Errorf("bridge: event subscription failed: %w", err)
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		conn.Close()
		return fmt.Errorf("bridge: client closed")
	}
	c.events = conn
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.events = nil
		c.mu.Unlock()
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			c.mu.Lock()
			closed := c.closed
			c.mu.Unlock()
			if closed {
				return nil
			}
			return fmt.Errorf("bridge: event stream closed: %w", err)
		}

		msg, err := protocol.Parse(data)
		if err != nil || msg.Type != protocol.TypePlayback {
			continue
		}
		var ev protocol.PlaybackData
		if err := msg.ParseData(&ev); err != nil {
			continue
		}
		onEvent(ev)
	}
}

// Close tears down the event subscription, if any.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.events != nil {
		return c.events.Close()
	}
	return nil
}

func (c *Client) post(path string, payload, out interface{}) error {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("bridge: marshal payload: %w", err)
		}
	}

	resp, err := c.http.Post(c.baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("bridge: %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	return c.decode(path, resp, out)
}

func (c *Client) get(path string, out interface{}) error {
	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("bridge: %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	return c.decode(path, resp, out)
}

func (c *Client) decode(path string, resp *http.Response, out interface{}) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error != "" {
			return fmt.Errorf("bridge: %s rejected: %s", path, apiErr.Error)
		}
		return fmt.Errorf("bridge: %s rejected: status %d", path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
