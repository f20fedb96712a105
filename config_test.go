package simplekit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/agiangrant/simplekit/event"
	"github.com/agiangrant/simplekit/retained"
	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestParseConfigOverlaysDefaults(t *testing.T) {
	config, err := ParseConfig([]byte(`
[gesture]
click_time = 300.0
coalesce = true

[layout]
debug = true

[style]
highlight_colour = "gold"

[theme.colors]
brand = "#1da1f2"
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	want := DefaultConfig()
	want.Gesture.ClickTime = 300
	want.Gesture.Coalesce = true
	want.Layout.Debug = true
	want.Style.HighlightColour = "gold"
	want.Theme.Colors = map[string]string{"brand": "#1da1f2"}

	if diff := cmp.Diff(want, config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigError(t *testing.T) {
	if _, err := ParseConfig([]byte("[gesture]\nclick_time = \"soon\"")); err == nil {
		t.Error("expected error for mistyped value")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty path gives defaults", func(t *testing.T) {
		config, err := LoadConfig("")
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		if diff := cmp.Diff(DefaultConfig(), config); diff != "" {
			t.Errorf("config mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("save and load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "simplekit.toml")
		config := DefaultConfig()
		config.Gesture.LongPress = 600
		config.Log.Level = "debug"
		config.Theme.Colors = map[string]string{"brand": "#123456"}
		config.Theme.Fonts = map[string]string{"display": "monospace"}
		if err := SaveConfig(path, config); err != nil {
			t.Fatalf("SaveConfig: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("stat: %v", err)
		}
		got, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		if diff := cmp.Diff(config, got); diff != "" {
			t.Errorf("config mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestNewLogger(t *testing.T) {
	l, err := NewLogger(LogConfig{Level: "debug"})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if l.Level != logrus.DebugLevel {
		t.Errorf("level = %v, want %v", l.Level, logrus.DebugLevel)
	}
	if _, err := NewLogger(LogConfig{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNew(t *testing.T) {
	logger, hook := test.NewNullLogger()
	defer retained.SetLogger(nil)
	defer retained.SetStyle(retained.DefaultStyle())

	config := DefaultConfig()
	config.Gesture.ClickTime = 200
	tk, err := New(config, Options{Width: 320, Height: 240, Logger: logger})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if w, h := tk.Size(); w != 320 || h != 240 {
		t.Errorf("size = %gx%g, want 320x240", w, h)
	}

	clicks := 0
	button := retained.Button("OK", "")
	button.On(event.Click, func(event.Event) bool {
		clicks++
		return true
	})
	tk.SetRoot(retained.Container("", button.WithPosition(10, 10)))
	tk.RunFrame(nil, 0)

	// A 300ms press exceeds the configured 200ms click time.
	q := event.NewQueue(
		event.Pointer(event.RawPointerDown, 10, 20, 20),
		event.Pointer(event.RawPointerUp, 310, 20, 20),
	)
	tk.RunFrame(q, 310)
	if clicks != 0 {
		t.Errorf("clicks = %d, want 0", clicks)
	}

	// Usage warnings go to the configured logger.
	retained.Label("x", "").On(event.Click, func(event.Event) bool { return true })
	if len(hook.Entries) == 0 {
		t.Error("expected a warning on the configured logger")
	}
}

func TestNewRejectsBadTheme(t *testing.T) {
	config := DefaultConfig()
	config.Theme.Colors = map[string]string{"bad": "#nothex"}
	if _, err := New(config, Options{Logger: logrus.New()}); err == nil {
		t.Error("expected error for invalid theme colour")
	}
}

func TestNewStyleIsProcessWide(t *testing.T) {
	defer retained.SetLogger(nil)
	defer retained.SetStyle(retained.DefaultStyle())

	first := DefaultConfig()
	first.Style.TextPadding = 2
	first.Gesture.ClickTime = 100
	a, err := New(first, Options{Logger: logrus.New()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	second := DefaultConfig()
	second.Style.TextPadding = 9
	if _, err := New(second, Options{Logger: logrus.New()}); err != nil {
		t.Fatalf("New: %v", err)
	}

	// Widget style follows the latest New.
	if got := retained.CurrentStyle().TextPadding; got != 9 {
		t.Errorf("text padding = %g, want 9", got)
	}
	if got := retained.Label("x", "").Box().Padding; got != 9 {
		t.Errorf("label padding = %g, want 9", got)
	}

	// Gesture thresholds stay with the first toolkit: a 150ms press is too
	// slow for its 100ms click time.
	clicks := 0
	button := retained.Button("OK", "").WithPosition(10, 10)
	button.On(event.Click, func(event.Event) bool { clicks++; return true })
	a.SetRoot(retained.Container("", button))
	a.RunFrame(nil, 0)
	a.RunFrame(event.NewQueue(
		event.Pointer(event.RawPointerDown, 10, 20, 20),
		event.Pointer(event.RawPointerUp, 160, 20, 20),
	), 160)
	if clicks != 0 {
		t.Errorf("clicks = %d, want 0", clicks)
	}
}
