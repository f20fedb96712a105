package simplekit

import (
	"os"

	"github.com/agiangrant/simplekit/gesture"
	"github.com/agiangrant/simplekit/retained"
	"github.com/agiangrant/simplekit/tw"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Config represents a simplekit.toml configuration file
type Config struct {
	Gesture GestureConfig  `toml:"gesture"`
	Layout  LayoutConfig   `toml:"layout"`
	Style   retained.Style `toml:"style"`
	Log     LogConfig      `toml:"log"`
	Theme   tw.Theme       `toml:"theme"`
}

// GestureConfig holds the translator thresholds. Distances are pixels and
// times milliseconds.
type GestureConfig struct {
	ClickMovement   float32 `toml:"click_movement"`
	ClickTime       float64 `toml:"click_time"`
	DoubleClickTime float64 `toml:"double_click_time"`
	DragMovement    float32 `toml:"drag_movement"`
	// LongPress is the hold time of the long-press translator; 0 disables it.
	LongPress float64 `toml:"long_press"`
	// Coalesce collapses runs of raw pointer moves before translation.
	Coalesce bool `toml:"coalesce"`
}

type LayoutConfig struct {
	Debug    bool `toml:"debug"`
	Warnings bool `toml:"warnings"`
	// Draw box-model outlines around every widget
	DrawBoxes bool `toml:"draw_boxes"`
}

type LogConfig struct {
	// Level is a logrus level name: "debug", "info", "warn", "error".
	Level string `toml:"level"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() Config {
	th := gesture.DefaultThresholds()
	return Config{
		Gesture: GestureConfig{
			ClickMovement:   th.ClickMovement,
			ClickTime:       th.ClickTime,
			DoubleClickTime: th.DoubleClickTime,
			DragMovement:    th.DragMovement,
			LongPress:       th.LongPress,
		},
		Layout: LayoutConfig{
			Warnings: true,
		},
		Style: retained.DefaultStyle(),
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Thresholds converts the gesture section to translator thresholds.
func (c GestureConfig) Thresholds() gesture.Thresholds {
	return gesture.Thresholds{
		ClickMovement:   c.ClickMovement,
		ClickTime:       c.ClickTime,
		DoubleClickTime: c.DoubleClickTime,
		DragMovement:    c.DragMovement,
		LongPress:       c.LongPress,
	}
}

// ParseConfig decodes TOML over the defaults. Keys missing from data keep
// their default values.
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()
	if err := toml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrap(err, "parse config")
	}
	return config, nil
}

// LoadConfig loads the configuration at path. An empty path returns the
// defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), errors.Wrapf(err, "read config %s", path)
	}
	config, err := ParseConfig(data)
	if err != nil {
		return config, errors.Wrapf(err, "load %s", path)
	}
	return config, nil
}

// SaveConfig writes the configuration to path.
func SaveConfig(path string, config Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
