// Command hapticd is the haptics bridge daemon. It owns the device actuator
// (directly via a device agent, or a mock for development), runs the playback
// engine, and exposes the REST/WebSocket bridge API.
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/hapticlabs/go-haptics/internal/config"
	"github.com/hapticlabs/go-haptics/internal/log"
	"github.com/hapticlabs/go-haptics/pkg/actuator"
	"github.com/hapticlabs/go-haptics/pkg/engine"
	"github.com/hapticlabs/go-haptics/pkg/web"
)

func main() {
	port := flag.String("port", config.Port(), "Port to listen on")
	agentAddr := flag.String("agent", config.AgentAddr(""), "Device agent address (host:port)")
	useMock := flag.Bool("mock", false, "Use an in-memory mock actuator instead of a device agent")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := config.LogLevel()
	if *debug {
		level = "debug"
	}
	log.Init(level)

	var driver actuator.Driver
	if *useMock {
		log.Info("using mock actuator")
		driver = actuator.NewMock()
	} else {
		agent := actuator.NewHTTPDriver(*agentAddr)
		// If the agent rejects amplitude waveforms, retry quantized to
		// on/off before giving up.
		chain, err := engine.NewChain(agent, actuator.NewOnOff(agent))
		if err != nil {
			log.Error("failed to build driver chain", "error", err)
			os.Exit(1)
		}
		log.Info("using device agent", "addr", *agentAddr)
		driver = chain
	}

	eng := engine.New(driver)
	supported, err := eng.Initialize()
	if err != nil {
		log.Error("engine initialization failed", "error", err)
		os.Exit(1)
	}
	if !supported {
		// Still serve: clients can query capabilities, and play requests
		// fail with a clear error instead of a connection refusal.
		log.Warn("no haptic hardware available, play requests will be rejected")
	}

	server := web.NewServer(*port, eng)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("shutting down")
		if err := server.Shutdown(); err != nil {
			log.Warn("server shutdown failed", "error", err)
		}
	}()

	if err := server.Start(); err != nil {
		log.Error("server stopped", "error", err)
	}
	if err := eng.Close(); err != nil {
		log.Warn("engine close failed", "error", err)
	}
}
