package main

import (
	"os"

	"github.com/agiangrant/simplekit/event"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Script is a recorded input session: one entry per frame, each holding the
// raw events the window system delivered before that frame ran.
type Script struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
	Frames []Frame `toml:"frame"`
}

// Frame is one runFrame call.
type Frame struct {
	Time   float64    `toml:"time"`
	Events []RawEntry `toml:"events"`
}

// RawEntry is the TOML form of an event.RawEvent. Pointer entries need x and
// y; key entries need key; resize entries need width and height.
type RawEntry struct {
	Type   string   `toml:"type"`
	Time   *float64 `toml:"time"`
	X      *float32 `toml:"x"`
	Y      *float32 `toml:"y"`
	Key    string   `toml:"key"`
	Width  float32  `toml:"width"`
	Height float32  `toml:"height"`
}

// ParseScript decodes a script and validates every event type.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "parse script")
	}
	last := -1.0
	for i, f := range s.Frames {
		if f.Time < last {
			return nil, errors.Errorf("frame %d: time %g goes backwards", i, f.Time)
		}
		last = f.Time
		for j, e := range f.Events {
			if _, ok := event.ParseRawType(e.Type); !ok {
				return nil, errors.Errorf("frame %d event %d: unknown type %q", i, j, e.Type)
			}
		}
	}
	return &s, nil
}

// LoadScript reads and parses the script at path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read script %s", path)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return s, nil
}

// Queue converts the frame's entries into a raw event queue. Entries without
// a time are stamped with the frame time.
func (f Frame) Queue() *event.Queue {
	q := event.NewQueue()
	for _, e := range f.Events {
		q.Push(e.raw(f.Time))
	}
	return q
}

func (e RawEntry) raw(frameTime float64) event.RawEvent {
	t, _ := event.ParseRawType(e.Type)
	ts := frameTime
	if e.Time != nil {
		ts = *e.Time
	}
	switch t {
	case event.RawPointerDown, event.RawPointerMove, event.RawPointerUp:
		if e.X == nil || e.Y == nil {
			return event.RawEvent{Type: t, Time: ts}
		}
		return event.Pointer(t, ts, *e.X, *e.Y)
	case event.RawKeyDown, event.RawKeyUp:
		return event.Key(t, ts, e.Key)
	case event.RawResize:
		return event.ResizeTo(ts, e.Width, e.Height)
	}
	return event.Null(ts)
}
