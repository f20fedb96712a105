package event

import "fmt"

// RawType identifies a window-system input primitive.
type RawType uint8

const (
	// RawNull is a synthetic tick delivered when a frame had no input.
	RawNull RawType = iota
	RawPointerDown
	RawPointerMove
	RawPointerUp
	RawKeyDown
	RawKeyUp
	RawResize
)

var rawTypeNames = [...]string{
	RawNull:        "null",
	RawPointerDown: "pointerdown",
	RawPointerMove: "pointermove",
	RawPointerUp:   "pointerup",
	RawKeyDown:     "keydown",
	RawKeyUp:       "keyup",
	RawResize:      "resize",
}

func (t RawType) String() string {
	if int(t) < len(rawTypeNames) {
		return rawTypeNames[t]
	}
	return fmt.Sprintf("RawType(%d)", uint8(t))
}

// ParseRawType returns the RawType for its string name.
func ParseRawType(s string) (RawType, bool) {
	for i, name := range rawTypeNames {
		if name == s {
			return RawType(i), true
		}
	}
	return RawNull, false
}

// RawEvent is one input primitive. Positioned is false for events that carry
// no coordinates; pointer translators ignore those.
type RawEvent struct {
	Type       RawType
	Time       float64
	X, Y       float32
	Positioned bool
	Key        string
	Width      float32
	Height     float32
}

// Pointer creates a positioned pointer raw event.
func Pointer(t RawType, time float64, x, y float32) RawEvent {
	return RawEvent{Type: t, Time: time, X: x, Y: y, Positioned: true}
}

// Key creates a keyboard raw event.
func Key(t RawType, time float64, key string) RawEvent {
	return RawEvent{Type: t, Time: time, Key: key}
}

// ResizeTo creates a resize raw event.
func ResizeTo(time float64, width, height float32) RawEvent {
	return RawEvent{Type: RawResize, Time: time, Width: width, Height: height}
}

// Null creates a tick with no payload.
func Null(time float64) RawEvent {
	return RawEvent{Type: RawNull, Time: time}
}

// IsPointer reports whether the event is a pointer primitive with coordinates.
func (r RawEvent) IsPointer() bool {
	switch r.Type {
	case RawPointerDown, RawPointerMove, RawPointerUp:
		return r.Positioned
	}
	return false
}

func (r RawEvent) String() string {
	switch r.Type {
	case RawPointerDown, RawPointerMove, RawPointerUp:
		return fmt.Sprintf("%s(%g,%g)@%g", r.Type, r.X, r.Y, r.Time)
	case RawKeyDown, RawKeyUp:
		return fmt.Sprintf("%s(%q)@%g", r.Type, r.Key, r.Time)
	case RawResize:
		return fmt.Sprintf("resize(%gx%g)@%g", r.Width, r.Height, r.Time)
	}
	return fmt.Sprintf("%s@%g", r.Type, r.Time)
}
