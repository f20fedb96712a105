/*
Package gesture implements event translators: small state machines that fold
raw pointer and keyboard primitives into semantic events.

Each translator consumes one raw event per Update call, in arrival order, and
returns at most one semantic event. Translators own their state; two
instances never share it. Pointer translators return nil, without changing
state, for raw events that carry no coordinates.

The default set, in order, is

	Fundamental, Click, DoubleClick, Drag

and LongPress is added when a long-press duration is configured.
*/
package gesture

import (
	"fmt"
	"math"

	"github.com/agiangrant/simplekit/event"
)

// Translator turns raw events into semantic events.
type Translator interface {
	// Update advances the translator by one raw event and returns the
	// semantic event it produced, or nil.
	Update(raw event.RawEvent) event.Event
}

// State is the state of a translator's state machine.
type State uint8

const (
	StateIdle State = iota
	StateDown
	StateReady
	StateDrag
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDown:
		return "Down"
	case StateReady:
		return "Ready"
	case StateDrag:
		return "Drag"
	default:
		panic(fmt.Sprintf("invalid State: %d", s))
	}
}

// Thresholds parameterizes the built-in translators.
type Thresholds struct {
	// ClickMovement is the maximum pointer travel in pixels for a click.
	ClickMovement float32
	// ClickTime is the maximum press duration in milliseconds for a click.
	ClickTime float64
	// DoubleClickTime is the maximum interval in milliseconds between the
	// two clicks of a double click.
	DoubleClickTime float64
	// DragMovement is the travel in pixels that starts a drag.
	DragMovement float32
	// LongPress is the hold duration in milliseconds for a long press.
	// Zero disables the long-press translator.
	LongPress float64
}

// DefaultThresholds returns the stock translator parameters.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ClickMovement:   10,
		ClickTime:       800,
		DoubleClickTime: 500,
		DragMovement:    10,
	}
}

// Default returns a fresh set of the built-in translators.
func Default(th Thresholds) []Translator {
	ts := []Translator{
		Fundamental{},
		NewClick(th.ClickMovement, th.ClickTime),
		NewDoubleClick(th.ClickMovement, th.ClickTime, th.DoubleClickTime),
		NewDrag(th.DragMovement),
	}
	if th.LongPress > 0 {
		ts = append(ts, NewLongPress(th.ClickMovement, th.LongPress))
	}
	return ts
}

func distance(x1, y1, x2, y2 float32) float32 {
	return float32(math.Hypot(float64(x2-x1), float64(y2-y1)))
}

// ============================================================================
// Fundamental
// ============================================================================

// Fundamental maps each raw event one-to-one onto its semantic counterpart.
// Null ticks produce nothing.
type Fundamental struct{}

func (Fundamental) Update(raw event.RawEvent) event.Event {
	switch raw.Type {
	case event.RawPointerDown:
		return event.NewPointer(event.PointerDown, raw.Time, raw.X, raw.Y)
	case event.RawPointerMove:
		return event.NewPointer(event.PointerMove, raw.Time, raw.X, raw.Y)
	case event.RawPointerUp:
		return event.NewPointer(event.PointerUp, raw.Time, raw.X, raw.Y)
	case event.RawKeyDown:
		return event.NewKey(event.KeyDown, raw.Time, raw.Key)
	case event.RawKeyUp:
		return event.NewKey(event.KeyUp, raw.Time, raw.Key)
	case event.RawResize:
		return event.NewResize(raw.Time, raw.Width, raw.Height)
	}
	return nil
}
