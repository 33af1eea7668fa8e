// Package web provides the HTTP and WebSocket surface of the haptics bridge
// daemon. Clients submit declarative patterns over REST or a bidirectional
// control socket; playback lifecycle events are fanned out on a broadcast
// socket.
package web

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberws "github.com/gofiber/websocket/v2"

	"github.com/hapticlabs/go-haptics/internal/log"
	"github.com/hapticlabs/go-haptics/pkg/engine"
	"github.com/hapticlabs/go-haptics/pkg/hub"
)

// Server is the bridge daemon's network surface.
type Server struct {
	app    *fiber.App
	port   string
	engine *engine.Engine
	logger *slog.Logger

	// eventHub fans playback events out to /ws/events subscribers.
	eventHub *hub.Hub
}

// NewServer wires the engine to a fiber app. The server subscribes to the
// engine's playback events, so construct it before the first Play.
func NewServer(port string, eng *engine.Engine) *Server {
	s := &Server{
		port:     port,
		engine:   eng,
		logger:   log.Component("web"),
		eventHub: hub.New("events"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "hapticd",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	// API routes
	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Get("/capabilities", s.handleCapabilities)
	api.Post("/play", s.handlePlay)
	api.Post("/impact/:style", s.handleImpact)
	api.Post("/notification/:style", s.handleNotification)
	api.Post("/cancel", s.handleCancel)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if fiberws.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	// WebSocket routes: bidirectional control channel plus event broadcast.
	app.Get("/ws/control", newControlHandler(s))
	app.Get("/ws/events", fiberws.New(s.handleEventsWS))

	s.app = app

	eng.OnPlayback(s.broadcastPlayback)

	return s
}

// Start starts the server and blocks until shutdown.
func (s *Server) Start() error {
	go s.eventHub.Run()
	s.logger.Info("bridge listening", "port", s.port)
	return s.app.Listen(":" + s.port)
}

// StartAsync starts the server in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			s.logger.Error("server stopped", "error", err)
		}
	}()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// EventHub returns the playback event hub for external use.
func (s *Server) EventHub() *hub.Hub {
	return s.eventHub
}

// handleEventsWS registers an /ws/events subscriber with the hub.
func (s *Server) handleEventsWS(c *fiberws.Conn) {
	client := hub.NewClient(s.eventHub, c)
	client.Run()
}
