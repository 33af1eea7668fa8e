// Package protocol defines the JSON message types for the haptics bridge.
// This package is shared between hapticd (the daemon) and client bindings.
package protocol

import (
	"encoding/json"
	"fmt"
	"time"
)

// MessageType identifies the type of bridge message.
type MessageType string

const (
	// Client → Daemon messages
	TypePlay   MessageType = "play"   // Play a haptic pattern
	TypeCancel MessageType = "cancel" // Cancel in-flight playback
	TypeStatus MessageType = "status" // Request engine status

	// Daemon → Client messages
	TypeAck      MessageType = "ack"      // Command accepted
	TypeError    MessageType = "error"    // Command failed
	TypePlayback MessageType = "playback" // Playback lifecycle event

	// Bidirectional
	TypePing MessageType = "ping" // Health check
	TypePong MessageType = "pong" // Health check response
)

// Message is the base wrapper for all bridge messages.
type Message struct {
	Type      MessageType     `json:"type"`
	Timestamp int64           `json:"ts,omitempty"` // Unix milliseconds
	Data      json.RawMessage `json:"data,omitempty"`
}

// NewMessage creates a new message with the current timestamp.
func NewMessage(msgType MessageType, data interface{}) (*Message, error) {
	var rawData json.RawMessage
	if data != nil {
		var err error
		rawData, err = json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal message data: %w", err)
		}
	}

	return &Message{
		Type:      msgType,
		Timestamp: time.Now().UnixMilli(),
		Data:      rawData,
	}, nil
}

// Parse decodes a wire payload into a Message.
func Parse(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to parse message: %w", err)
	}
	if msg.Type == "" {
		return nil, fmt.Errorf("message missing type")
	}
	return &msg, nil
}

// ParseData unmarshals the message data into the provided struct.
func (m *Message) ParseData(v interface{}) error {
	if m.Data == nil {
		return nil
	}
	return json.Unmarshal(m.Data, v)
}

// Bytes serializes the message for the wire.
func (m *Message) Bytes() ([]byte, error) {
	return json.Marshal(m)
}
