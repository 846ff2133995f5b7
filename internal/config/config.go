// Package config loads polyplay command settings with viper: defaults, an
// optional JSON/YAML/TOML file, and POLYPLAY_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/polyplay"
	"github.com/gogpu/polyplay/canvas"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. POLYPLAY_ZOOM_MODEL.
const EnvPrefix = "POLYPLAY"

var (
	// ErrRead is returned when the config file cannot be read or parsed.
	ErrRead = errors.New("config: read failed")

	// ErrInvalid is returned when a setting has an unsupported value.
	ErrInvalid = errors.New("config: invalid value")
)

// WindowConfig holds window settings.
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// ZoomConfig holds zoom model settings. Zero bounds select the model's
// defaults.
type ZoomConfig struct {
	Model       string  `mapstructure:"model"`
	Min         float64 `mapstructure:"min"`
	Max         float64 `mapstructure:"max"`
	Step        float64 `mapstructure:"step"`
	Base        float64 `mapstructure:"base"`
	Precision   int     `mapstructure:"precision"`
	WheelAnchor string  `mapstructure:"wheelAnchor"`
}

// MarkerConfig holds marker settings.
type MarkerConfig struct {
	Radius float64 `mapstructure:"radius"`
}

// SegmentConfig holds segment settings.
type SegmentConfig struct {
	Width float64   `mapstructure:"width"`
	Dash  []float64 `mapstructure:"dash"`
}

// WorkspaceConfig holds the backdrop rectangle. Zero size disables it.
type WorkspaceConfig struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
	Fill   string  `mapstructure:"fill"`
}

// Config is the full command configuration.
type Config struct {
	LogLevel   string          `mapstructure:"logLevel"`
	Window     WindowConfig    `mapstructure:"window"`
	Zoom       ZoomConfig      `mapstructure:"zoom"`
	Marker     MarkerConfig    `mapstructure:"marker"`
	Segment    SegmentConfig   `mapstructure:"segment"`
	Workspace  WorkspaceConfig `mapstructure:"workspace"`
	StatusSize float64         `mapstructure:"statusSize"`
	Output     string          `mapstructure:"output"`
	Replay     string          `mapstructure:"replay"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "Polygon Playground")

	v.SetDefault("zoom.model", "linear")
	v.SetDefault("zoom.min", 0.0)
	v.SetDefault("zoom.max", 0.0)
	v.SetDefault("zoom.step", polyplay.DefaultZoomStep)
	v.SetDefault("zoom.base", polyplay.DefaultWheelBase)
	v.SetDefault("zoom.precision", polyplay.DefaultZoomPrecision)
	v.SetDefault("zoom.wheelAnchor", "")

	v.SetDefault("marker.radius", polyplay.DefaultMarkerRadius)
	v.SetDefault("segment.width", polyplay.DefaultSegmentWidth)
	v.SetDefault("segment.dash", []float64{5, 5})

	v.SetDefault("workspace.width", 800.0)
	v.SetDefault("workspace.height", 500.0)
	v.SetDefault("workspace.fill", "#ffffff")

	v.SetDefault("statusSize", 14.0)
	v.SetDefault("output", "sketch.png")
	v.SetDefault("replay", "")
}

// Load reads configuration from path (if not empty) on top of the defaults,
// then applies environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRead, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.Zoom.Model) {
	case "linear", "exponential":
	default:
		return fmt.Errorf("%w: zoom.model=%q", ErrInvalid, c.Zoom.Model)
	}
	switch strings.ToLower(c.Zoom.WheelAnchor) {
	case "", "center", "pointer":
	default:
		return fmt.Errorf("%w: zoom.wheelAnchor=%q", ErrInvalid, c.Zoom.WheelAnchor)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	return nil
}

// Level returns the slog level for LogLevel.
func (c *Config) Level() slog.Level {
	l, _ := parseLevel(c.LogLevel)
	return l
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: logLevel=%q", ErrInvalid, s)
	}
	return l, nil
}

// SessionOptions maps the settings to polyplay session options.
func (c *Config) SessionOptions() []polyplay.Option {
	opts := []polyplay.Option{
		polyplay.WithMarkerRadius(c.Marker.Radius),
		polyplay.WithSegmentStyle(c.Segment.Width, c.Segment.Dash...),
		polyplay.WithZoomBounds(c.Zoom.Min, c.Zoom.Max),
		polyplay.WithZoomPrecision(c.Zoom.Precision),
	}
	if strings.EqualFold(c.Zoom.Model, "exponential") {
		opts = append(opts, polyplay.WithExponentialZoom(c.Zoom.Base))
	}
	opts = append(opts, polyplay.WithZoomStep(c.Zoom.Step))

	switch strings.ToLower(c.Zoom.WheelAnchor) {
	case "center":
		opts = append(opts, polyplay.WithWheelAnchor(polyplay.AnchorCenter))
	case "pointer":
		opts = append(opts, polyplay.WithWheelAnchor(polyplay.AnchorPointer))
	}
	return opts
}

// CanvasOptions maps the settings to canvas options.
func (c *Config) CanvasOptions() []canvas.Option {
	var opts []canvas.Option
	if c.Workspace.Width > 0 && c.Workspace.Height > 0 {
		opts = append(opts, canvas.WithWorkspace(c.Workspace.Width, c.Workspace.Height, gg.Hex(c.Workspace.Fill)))
	}
	if c.StatusSize > 0 {
		opts = append(opts, canvas.WithStatusLine(c.StatusSize))
	}
	return opts
}
