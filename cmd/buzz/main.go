// Command buzz is a small client for a hapticd daemon: play presets or
// pattern files and optionally tail playback events.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/hapticlabs/go-haptics/internal/log"
	"github.com/hapticlabs/go-haptics/pkg/bridge"
	"github.com/hapticlabs/go-haptics/pkg/haptic"
	"github.com/hapticlabs/go-haptics/pkg/protocol"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:9040", "hapticd address (host:port)")
	impact := flag.String("impact", "", "Play an impact preset: light, medium, heavy")
	notify := flag.String("notify", "", "Play a notification preset: success, warning, error")
	pattern := flag.String("pattern", "", "Play a pattern from a JSON file of events")
	cancel := flag.Bool("cancel", false, "Cancel in-flight playback")
	watch := flag.Bool("watch", false, "Tail playback events until interrupted")
	flag.Parse()

	log.Init(os.Getenv("LOG_LEVEL"))
	client := bridge.New(*addr)

	switch {
	case *cancel:
		fail(client.Cancel())

	case *impact != "":
		fail(client.Impact(haptic.ImpactStyle(*impact)))

	case *notify != "":
		fail(client.Notification(haptic.NotificationStyle(*notify)))

	case *pattern != "":
		events, err := loadPattern(*pattern)
		fail(err)
		id, err := client.Play(events)
		fail(err)
		fmt.Println("playback:", id)

	case *watch:
		// handled below

	default:
		caps, err := client.Capabilities()
		fail(err)
		fmt.Printf("vibrator=%v amplitude_control=%v\n", caps.Vibrator, caps.AmplitudeControl)
		return
	}

	if *watch {
		fail(client.Subscribe(func(ev protocol.PlaybackData) {
			fmt.Printf("%s %s duration=%dms segments=%d\n",
				ev.State, ev.ID, ev.DurationMs, ev.Segments)
		}))
	}
}

// loadPattern reads a JSON array of wire events from path.
func loadPattern(path string) ([]haptic.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var wire []protocol.WireEvent
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return protocol.PlayData{Events: wire}.ToEvents(), nil
}

func fail(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
