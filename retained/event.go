package retained

import "github.com/agiangrant/simplekit/event"

// EventPhase indicates when in the event propagation cycle we are.
type EventPhase uint8

const (
	// PhaseCapture - event travels from root down to target.
	// Parents can intercept before children see it.
	PhaseCapture EventPhase = iota

	// PhaseBubble - event travels from target up to root.
	// Normal handling phase - most handlers use this.
	PhaseBubble
)

func (p EventPhase) String() string {
	if p == PhaseCapture {
		return "capture"
	}
	return "bubble"
}

// Handler handles an event. Return true to stop propagation.
type Handler func(e event.Event) bool

// ListenerID identifies a binding on a widget.
type ListenerID uint64

type binding struct {
	id      ListenerID
	typ     event.Type
	handler Handler
	phase   EventPhase
}

// ============================================================================
// Focus
// ============================================================================

// FocusManager grants exclusive mouse and keyboard focus. The dispatcher
// implements it and passes itself to behaviors.
type FocusManager interface {
	// RequestMouseFocus routes all pointer events to w until the next
	// pointerup. The previous holder is not notified.
	RequestMouseFocus(w *Widget)

	// RequestKeyboardFocus moves keyboard focus to w, sending focusout to
	// the previous holder and focusin to w. nil clears focus.
	RequestKeyboardFocus(w *Widget)
}

// ============================================================================
// Behavior Interface (Composable Event Modifiers)
// ============================================================================

// Behavior allows composable event handling to be attached to widgets.
// Built-in controls implement their interaction through behaviors; custom
// widgets can add their own.
type Behavior interface {
	// HandleEvent processes a bubble-phase event. Return true to stop
	// propagation.
	HandleEvent(fm FocusManager, w *Widget, e event.Event) bool
}

// BehaviorFunc adapts a function to the Behavior interface.
type BehaviorFunc func(fm FocusManager, w *Widget, e event.Event) bool

func (f BehaviorFunc) HandleEvent(fm FocusManager, w *Widget, e event.Event) bool {
	return f(fm, w, e)
}
