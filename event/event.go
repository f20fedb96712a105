// Package event defines the raw input primitives delivered by a window system
// and the semantic events produced by translators and dispatched to widgets.
package event

// ============================================================================
// Semantic Event Types
// ============================================================================

// Type identifies the kind of semantic event.
type Type string

const (
	// Pointer events
	PointerDown Type = "pointerdown"
	PointerUp   Type = "pointerup"
	PointerMove Type = "pointermove"
	Click       Type = "click"
	DoubleClick Type = "dblclick"
	DragStart   Type = "dragstart"
	Drag        Type = "drag"
	DragEnd     Type = "dragend"
	LongPress   Type = "longpress"
	Enter       Type = "enter"
	Exit        Type = "exit"

	// Keyboard events
	KeyDown  Type = "keydown"
	KeyUp    Type = "keyup"
	FocusIn  Type = "focusin"
	FocusOut Type = "focusout"

	// Window events
	Resize Type = "resize"

	// Widget events
	Action       Type = "action"
	TextChanged  Type = "textchanged"
	ValueChanged Type = "valuechanged"
)

// IsPointer reports whether events of this type carry a pointer position.
func (t Type) IsPointer() bool {
	switch t {
	case PointerDown, PointerUp, PointerMove, Click, DoubleClick,
		DragStart, Drag, DragEnd, LongPress, Enter, Exit:
		return true
	}
	return false
}

// IsKeyboard reports whether events of this type are routed to keyboard focus.
func (t Type) IsKeyboard() bool {
	switch t {
	case KeyDown, KeyUp, FocusIn, FocusOut:
		return true
	}
	return false
}

// ============================================================================
// Event Interface and Base
// ============================================================================

// Event is the interface for all semantic events.
type Event interface {
	// Type returns the event type.
	Type() Type

	// Timestamp returns the event time in milliseconds.
	Timestamp() float64

	// Source returns the widget that emitted the event, or nil for events
	// produced by translators.
	Source() any
}

// Base carries the header shared by every semantic event. It is an Event on
// its own and is used for widget events such as action and textchanged.
type Base struct {
	EventType Type
	Time      float64
	From      any
}

func (b *Base) Type() Type         { return b.EventType }
func (b *Base) Timestamp() float64 { return b.Time }
func (b *Base) Source() any        { return b.From }

// New creates a bare event with no payload.
func New(t Type, time float64, source any) *Base {
	return &Base{EventType: t, Time: time, From: source}
}

// PointerEvent is a semantic event with a pointer position.
type PointerEvent struct {
	Base
	X, Y float32
}

// NewPointer creates a pointer event.
func NewPointer(t Type, time float64, x, y float32) *PointerEvent {
	return &PointerEvent{Base: Base{EventType: t, Time: time}, X: x, Y: y}
}

// WithType returns a copy of the event with a different type. Used for the
// synthetic enter and exit events derived from a pointermove.
func (e *PointerEvent) WithType(t Type) *PointerEvent {
	c := *e
	c.EventType = t
	return &c
}

// KeyEvent is a keyboard or focus event. Key is empty for focus changes.
type KeyEvent struct {
	Base
	Key string
}

// NewKey creates a keyboard event.
func NewKey(t Type, time float64, key string) *KeyEvent {
	return &KeyEvent{Base: Base{EventType: t, Time: time}, Key: key}
}

// ResizeEvent reports the new drawing surface size.
type ResizeEvent struct {
	Base
	Width, Height float32
}

// NewResize creates a resize event.
func NewResize(time float64, width, height float32) *ResizeEvent {
	return &ResizeEvent{Base: Base{EventType: Resize, Time: time}, Width: width, Height: height}
}

// Merge combines two timestamp-ordered event lists into one ordered list.
// On equal timestamps events from a come first. Neither input is modified.
func Merge(a, b []Event) []Event {
	if len(b) == 0 {
		return a
	}
	if len(a) == 0 {
		return b
	}
	out := make([]Event, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].Timestamp() <= b[j].Timestamp() {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}
