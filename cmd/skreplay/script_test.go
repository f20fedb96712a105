package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agiangrant/simplekit/event"
	"github.com/agiangrant/simplekit/retained"
	"github.com/sirupsen/logrus/hooks/test"
)

const sampleScript = `
width = 320.0
height = 240.0

[[frame]]
time = 0.0

[[frame]]
time = 16.0
events = [
  { type = "pointerdown", x = 10.0, y = 12.0 },
  { type = "pointerup", time = 20.0, x = 10.0, y = 12.0 },
]

[[frame]]
time = 32.0
events = [
  { type = "keydown", key = "a" },
  { type = "resize", width = 640.0, height = 480.0 },
]
`

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(sampleScript))
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if s.Width != 320 || s.Height != 240 {
		t.Errorf("size = %gx%g, want 320x240", s.Width, s.Height)
	}
	if len(s.Frames) != 3 {
		t.Fatalf("frames = %d, want 3", len(s.Frames))
	}

	raw := s.Frames[1].Queue().Drain()
	want := []event.RawEvent{
		event.Pointer(event.RawPointerDown, 16, 10, 12),
		event.Pointer(event.RawPointerUp, 20, 10, 12),
	}
	if len(raw) != len(want) {
		t.Fatalf("events = %v, want %v", raw, want)
	}
	for i := range want {
		if raw[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, raw[i], want[i])
		}
	}

	raw = s.Frames[2].Queue().Drain()
	if raw[0] != event.Key(event.RawKeyDown, 32, "a") {
		t.Errorf("key event = %v", raw[0])
	}
	if raw[1] != event.ResizeTo(32, 640, 480) {
		t.Errorf("resize event = %v", raw[1])
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"unknown type", "[[frame]]\ntime = 0.0\nevents = [{ type = \"wheel\" }]", "unknown type"},
		{"time goes backwards", "[[frame]]\ntime = 10.0\n[[frame]]\ntime = 5.0", "backwards"},
		{"bad toml", "[[frame]\n", "parse script"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.script))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.toml")
	if err := os.WriteFile(path, []byte(sampleScript), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScript(path); err != nil {
		t.Errorf("LoadScript: %v", err)
	}
	if _, err := LoadScript(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing script")
	}
}

func TestPointerEntryWithoutPosition(t *testing.T) {
	f := Frame{Time: 5, Events: []RawEntry{{Type: "pointermove"}}}
	raw := f.Queue().Drain()
	if raw[0].IsPointer() {
		t.Errorf("event without coordinates should not be positioned: %v", raw[0])
	}
}

func centre(w *retained.Widget) (float32, float32) {
	b := w.Bounds()
	return b.X + b.Width/2, b.Y + b.Height/2
}

func press(time float64, w *retained.Widget) []Frame {
	x, y := centre(w)
	return []Frame{
		{Time: time, Events: []RawEntry{{Type: "pointerdown", X: &x, Y: &y}}},
		{Time: time + 50, Events: []RawEntry{{Type: "pointerup", X: &x, Y: &y}}},
	}
}

func TestReplayDemo(t *testing.T) {
	logger, hook := test.NewNullLogger()
	config := retained.DefaultLoopConfig()
	config.Log = logger
	config.LayoutWarnings = false
	tk := retained.NewToolkit(config)

	d := buildDemo()
	d.fitWidth(400)
	tk.SetRoot(d.root)
	tk.SetEventListener(eventLogger(logger, d))

	if res := run(tk, nil); !res[0].Relayout {
		t.Fatal("first frame should lay the tree out")
	}

	run(tk, press(100, d.mute))
	if !d.mute.Checked() {
		t.Error("checkbox should be checked after a click")
	}
	if got := d.status.Text(); got != "mute true" {
		t.Errorf("status = %q, want %q", got, "mute true")
	}

	frames := press(200, d.input)
	frames = append(frames,
		Frame{Time: 300, Events: []RawEntry{{Type: "keydown", Key: "h"}, {Type: "keydown", Key: "i"}}},
	)
	run(tk, frames)
	if got := d.input.Text(); got != "hi" {
		t.Errorf("input = %q, want %q", got, "hi")
	}

	run(tk, press(400, tk.Root().Children()[0].Children()[1]))
	if got := d.status.Text(); got != `submitted "hi"` {
		t.Errorf("status = %q, want %q", got, `submitted "hi"`)
	}

	if len(hook.Entries) == 0 {
		t.Error("expected events to be logged")
	}
	for _, e := range hook.AllEntries() {
		if e.Data["type"] == event.Click {
			return
		}
	}
	t.Error("expected a logged click")
}

func TestReplayResizeStretchesRows(t *testing.T) {
	logger, _ := test.NewNullLogger()
	config := retained.DefaultLoopConfig()
	config.Log = logger
	tk := retained.NewToolkit(config)

	d := buildDemo()
	d.fitWidth(400)
	tk.SetRoot(d.root)
	tk.SetEventListener(eventLogger(logger, d))

	run(tk, []Frame{{Time: 0, Events: []RawEntry{{Type: "resize", Width: 600, Height: 300}}}})
	if w, h := tk.Size(); w != 600 || h != 300 {
		t.Errorf("size = %gx%g, want 600x300", w, h)
	}
	for _, c := range d.root.Children() {
		if got := c.Box().LayoutWidth; got != 600 {
			t.Errorf("%s width = %g, want 600", c, got)
		}
	}
}
