package web

import (
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/hapticlabs/go-haptics/pkg/protocol"
)

// controlConn is one client on the bidirectional control channel.
type controlConn struct {
	id   string
	conn *websocket.Conn

	// Serializes writes; acks and pongs come from the read loop only, but
	// keeping the mutex makes it safe to grow push messages later.
	mu sync.Mutex
}

func (cc *controlConn) send(msg *protocol.Message) error {
	data, err := msg.Bytes()
	if err != nil {
		return err
	}
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.conn.WriteMessage(websocket.TextMessage, data)
}

// newControlHandler returns the fiber handler for /ws/control.
func newControlHandler(s *Server) fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		s.handleControl(c)
	})
}

// handleControl runs the read loop for one control connection. Commands are
// handled inline: play and cancel hit the engine, status returns a snapshot,
// ping answers pong. Every command gets exactly one ack or error reply.
func (s *Server) handleControl(c *websocket.Conn) {
	cc := &controlConn{id: uuid.New().String(), conn: c}
	logger := s.logger.With("control_id", cc.id)
	logger.Debug("control client connected")
	defer logger.Debug("control client disconnected")

	for {
		_, data, err := c.ReadMessage()
		if err != nil {
			return
		}

		msg, err := protocol.Parse(data)
		if err != nil {
			s.replyError(cc, "", err)
			continue
		}

		switch msg.Type {
		case protocol.TypePlay:
			var play protocol.PlayData
			if err := msg.ParseData(&play); err != nil {
				s.replyError(cc, protocol.TypePlay, err)
				continue
			}
			id, err := s.engine.Play(play.ToEvents())
			if err != nil {
				s.replyError(cc, protocol.TypePlay, err)
				continue
			}
			s.reply(cc, protocol.TypeAck, protocol.AckData{
				Command:    protocol.TypePlay,
				PlaybackID: id,
			})

		case protocol.TypeCancel:
			if err := s.engine.Cancel(); err != nil {
				s.replyError(cc, protocol.TypeCancel, err)
				continue
			}
			s.reply(cc, protocol.TypeAck, protocol.AckData{Command: protocol.TypeCancel})

		case protocol.TypeStatus:
			s.reply(cc, protocol.TypeStatus, s.engine.Status())

		case protocol.TypePing:
			s.reply(cc, protocol.TypePong, nil)

		default:
			logger.Debug("ignoring message", "type", msg.Type, "at", time.UnixMilli(msg.Timestamp))
		}
	}
}

func (s *Server) reply(cc *controlConn, msgType protocol.MessageType, data interface{}) {
	msg, err := protocol.NewMessage(msgType, data)
	if err != nil {
		s.logger.Warn("failed to build reply", "type", msgType, "error", err)
		return
	}
	if err := cc.send(msg); err != nil {
		s.logger.Debug("control write failed", "error", err)
	}
}

func (s *Server) replyError(cc *controlConn, command protocol.MessageType, err error) {
	s.reply(cc, protocol.TypeError, protocol.ErrorData{
		Command: command,
		Error:   err.Error(),
	})
}
