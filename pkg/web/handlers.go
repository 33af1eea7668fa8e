package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/hapticlabs/go-haptics/pkg/engine"
	"github.com/hapticlabs/go-haptics/pkg/haptic"
	"github.com/hapticlabs/go-haptics/pkg/protocol"
)

// handleStatus returns the engine status snapshot.
func (s *Server) handleStatus(c *fiber.Ctx) error {
	return c.JSON(s.engine.Status())
}

// handleCapabilities returns the probed hardware capabilities.
func (s *Server) handleCapabilities(c *fiber.Ctx) error {
	return c.JSON(s.engine.Capabilities())
}

// handlePlay compiles and plays a declarative pattern.
func (s *Server) handlePlay(c *fiber.Ctx) error {
	var req protocol.PlayData
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid play payload: " + err.Error(),
		})
	}
	return s.play(c, req.ToEvents())
}

// handleImpact plays an impact preset (light, medium, heavy).
func (s *Server) handleImpact(c *fiber.Ctx) error {
	style := haptic.ImpactStyle(c.Params("style"))
	return s.play(c, haptic.Impact(style))
}

// handleNotification plays a notification preset (success, warning, error).
func (s *Server) handleNotification(c *fiber.Ctx) error {
	style := haptic.NotificationStyle(c.Params("style"))
	return s.play(c, haptic.Notification(style))
}

// handleCancel stops in-flight playback.
func (s *Server) handleCancel(c *fiber.Ctx) error {
	if err := s.engine.Cancel(); err != nil {
		return playError(c, err)
	}
	return c.JSON(fiber.Map{"canceled": true})
}

// play submits events to the engine and renders the outcome.
func (s *Server) play(c *fiber.Ctx, events []haptic.Event) error {
	id, err := s.engine.Play(events)
	if err != nil {
		return playError(c, err)
	}
	return c.JSON(fiber.Map{"playback_id": id})
}

// playError maps engine errors onto HTTP statuses.
func playError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, engine.ErrUnsupported),
		errors.Is(err, engine.ErrNotInitialized),
		errors.Is(err, engine.ErrEngineClosed):
		status = fiber.StatusServiceUnavailable
	default:
		var se *engine.SubmissionError
		if errors.As(err, &se) {
			status = fiber.StatusBadGateway
		}
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// broadcastPlayback forwards engine playback events to /ws/events.
func (s *Server) broadcastPlayback(ev engine.PlaybackEvent) {
	msg, err := protocol.NewMessage(protocol.TypePlayback, protocol.PlaybackData{
		ID:         ev.ID,
		State:      ev.State,
		DurationMs: ev.DurationMs,
		Segments:   ev.Segments,
	})
	if err != nil {
		s.logger.Warn("failed to encode playback event", "error", err)
		return
	}
	data, err := msg.Bytes()
	if err != nil {
		s.logger.Warn("failed to serialize playback event", "error", err)
		return
	}
	s.eventHub.Broadcast(data)
}
