// Package config provides configuration helpers for go-haptics commands.
package config

import "os"

// Defaults for the bridge daemon.
const (
	// DefaultPort is the port hapticd listens on.
	DefaultPort = "9040"

	// DefaultAgentAddr is the device agent address when none is configured.
	DefaultAgentAddr = "127.0.0.1:9041"
)

// Port returns the daemon listen port from HAPTICD_PORT, or the default.
func Port() string {
	if p := os.Getenv("HAPTICD_PORT"); p != "" {
		return p
	}
	return DefaultPort
}

// AgentAddr returns the device agent address from HAPTIC_AGENT_ADDR.
// Falls back to the provided default, then to DefaultAgentAddr.
func AgentAddr(defaultAddr string) string {
	if addr := os.Getenv("HAPTIC_AGENT_ADDR"); addr != "" {
		return addr
	}
	if defaultAddr != "" {
		return defaultAddr
	}
	return DefaultAgentAddr
}

// LogLevel returns the log level from LOG_LEVEL, or "info".
func LogLevel() string {
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		return lvl
	}
	return "info"
}
