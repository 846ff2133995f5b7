// Command polyplay is a polygon sketch playground: click to place points,
// drag to pan, scroll to zoom.
//
// Usage:
//
//	polyplay [-config polyplay.yaml]
//	polyplay -headless -replay script.txt -output sketch.png
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/polyplay"
	"github.com/gogpu/polyplay/canvas"
	"github.com/gogpu/polyplay/internal/config"
	"github.com/gogpu/polyplay/internal/replay"
)

func main() {
	var (
		configPath = flag.String("config", "", "config file (json, yaml or toml)")
		headless   = flag.Bool("headless", false, "run the replay script and save a PNG instead of opening a window")
		replayPath = flag.String("replay", "", "replay script (overrides config)")
		output     = flag.String("output", "", "output PNG file (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *replayPath != "" {
		cfg.Replay = *replayPath
	}
	if *output != "" {
		cfg.Output = *output
	}

	polyplay.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Level(),
	})))

	if *headless {
		err = runHeadless(cfg)
	} else {
		err = runWindow(cfg)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// newSession creates a canvas and a session mounted on it, with draw mode
// and wheel zoom enabled.
func newSession(cfg *config.Config) (*polyplay.Session, *canvas.Canvas, error) {
	cv, err := canvas.New(cfg.Window.Width, cfg.Window.Height, cfg.CanvasOptions()...)
	if err != nil {
		return nil, nil, err
	}
	s := polyplay.NewSession(cfg.SessionOptions()...)
	s.Mount(cv)
	s.EnableDraw()
	s.EnableWheelZoom()
	return s, cv, nil
}

func runHeadless(cfg *config.Config) error {
	s, cv, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer s.Unmount()

	if cfg.Replay != "" {
		if err := replayFile(s, cfg.Replay); err != nil {
			return err
		}
	}

	cv.SetStatus(statusLine(s))
	if err := cv.SavePNG(cfg.Output); err != nil {
		return fmt.Errorf("save %s: %w", cfg.Output, err)
	}

	log.Printf("Sketch saved to %s (%d points, zoom %.3f)\n", cfg.Output, s.Len(), s.Zoom())
	return nil
}

func replayFile(s *polyplay.Session, path string) error {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	steps, err := replay.Parse(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	replay.Run(s, steps)
	return nil
}

// statusLine summarises the session for the canvas status line.
func statusLine(s *polyplay.Session) string {
	mode := "draw"
	if s.PanEnabled() {
		mode = "pan"
	} else if !s.DrawEnabled() {
		mode = "idle"
	}
	line := fmt.Sprintf("%s  |  zoom %.1f%%  |  %d points", mode, s.Zoom()*100, s.Len())
	if a := s.Area(); a > 0 {
		line += fmt.Sprintf("  |  area %.0f", a)
	}
	return line
}
