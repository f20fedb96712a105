package retained

import (
	"github.com/agiangrant/simplekit/event"
	"github.com/sirupsen/logrus"
)

// ============================================================================
// Event Dispatcher
// ============================================================================

// EventDispatcher routes semantic events into a widget tree. It owns the
// hover and focus state of one toolkit instance.
type EventDispatcher struct {
	entered       *Widget // Topmost widget under the pointer after the last move
	mouseFocus    *Widget // Receives every pointer event until pointerup
	keyboardFocus *Widget // Receives every keyboard event

	// Time of the event being dispatched, used for synthetic focus events.
	now float64

	log logrus.FieldLogger
}

// NewEventDispatcher creates a dispatcher with no hover or focus state.
func NewEventDispatcher(log logrus.FieldLogger) *EventDispatcher {
	if log == nil {
		log = Logger()
	}
	return &EventDispatcher{log: log}
}

// Entered returns the widget the pointer is currently over.
func (d *EventDispatcher) Entered() *Widget { return d.entered }

// MouseFocus returns the widget holding mouse focus.
func (d *EventDispatcher) MouseFocus() *Widget { return d.mouseFocus }

// KeyboardFocus returns the widget holding keyboard focus.
func (d *EventDispatcher) KeyboardFocus() *Widget { return d.keyboardFocus }

// ============================================================================
// Hit Testing
// ============================================================================

// HitTest returns the route of widgets under the point, outermost first.
// Only the topmost child hit at each level is followed, so the route is a
// single chain of ancestors. The route is empty when nothing is hit.
func (d *EventDispatcher) HitTest(root *Widget, x, y float32) []*Widget {
	if root == nil {
		return nil
	}
	return hitTestRecursive(root, x, y, nil)
}

// hitTestRecursive appends w and its hit descendants to route. x and y are in
// the coordinates of w's parent content box.
func hitTestRecursive(w *Widget, x, y float32, route []*Widget) []*Widget {
	if !w.HitTest(x, y) {
		return route
	}
	route = append(route, w)

	// Translate into this widget's content coordinates.
	cx := x - w.box.X - w.box.Margin - w.box.Padding
	cy := y - w.box.Y - w.box.Margin - w.box.Padding

	// Check children in reverse order (last child is drawn on top)
	for i := len(w.children) - 1; i >= 0; i-- {
		n := len(route)
		route = hitTestRecursive(w.children[i], cx, cy, route)
		if len(route) > n {
			break
		}
	}
	return route
}

// ============================================================================
// Pointer Dispatch
// ============================================================================

// DispatchPointer delivers a pointer event. A widget holding mouse focus gets
// the event directly; otherwise it runs capture then bubble along the hit-test
// route. Moves also update enter and exit.
func (d *EventDispatcher) DispatchPointer(root *Widget, e *event.PointerEvent) {
	d.now = e.Time

	if f := d.mouseFocus; f != nil {
		if f.attached {
			f.HandleEvent(d, e, PhaseBubble)
			if e.Type() == event.PointerUp {
				d.mouseFocus = nil
			}
			return
		}
		// Removed from the tree since it took focus.
		d.mouseFocus = nil
	}

	route := acquireRoute()
	defer func() { releaseRoute(route) }()
	if root != nil {
		route = hitTestRecursive(root, e.X, e.Y, route)
	}

	if e.Type() == event.PointerMove {
		var top *Widget
		if len(route) > 0 {
			top = route[len(route)-1]
		}
		d.updateEnterExit(e, top)
	}

	// Capture: outermost to innermost
	for _, w := range route {
		if w.HandleEvent(d, e, PhaseCapture) {
			return
		}
	}

	// Bubble: innermost to outermost
	for i := len(route) - 1; i >= 0; i-- {
		if route[i].HandleEvent(d, e, PhaseBubble) {
			return
		}
	}
}

// updateEnterExit sends exit to the previously entered widget and enter to
// top when they differ.
func (d *EventDispatcher) updateEnterExit(e *event.PointerEvent, top *Widget) {
	if top == d.entered {
		return
	}
	if prev := d.entered; prev != nil && prev.attached {
		d.log.WithField("widget", prev.String()).Debug("exit")
		prev.HandleEvent(d, e.WithType(event.Exit), PhaseBubble)
	}
	if top != nil {
		d.log.WithField("widget", top.String()).Debug("enter")
		top.HandleEvent(d, e.WithType(event.Enter), PhaseBubble)
	}
	d.entered = top
}

// RequestMouseFocus implements FocusManager.
func (d *EventDispatcher) RequestMouseFocus(w *Widget) {
	if d.mouseFocus == w {
		return
	}
	d.mouseFocus = w
	if w != nil {
		d.log.WithField("widget", w.String()).Debug("gained mouse focus")
	}
}

// ============================================================================
// Keyboard Dispatch
// ============================================================================

// DispatchKey delivers a keyboard event to the focused widget, if any.
func (d *EventDispatcher) DispatchKey(e *event.KeyEvent) {
	d.now = e.Time
	f := d.keyboardFocus
	if f == nil {
		return
	}
	if !f.attached {
		d.dropKeyboardFocus()
		return
	}
	f.HandleEvent(d, e, PhaseBubble)
}

// dropKeyboardFocus releases a holder that left the tree. It gets no
// focusout, so its focus state is reset here.
func (d *EventDispatcher) dropKeyboardFocus() {
	d.keyboardFocus.focused = false
	d.keyboardFocus = nil
}

// RequestKeyboardFocus implements FocusManager. A widget that is not part of
// the tree cannot take focus and is treated as nil.
func (d *EventDispatcher) RequestKeyboardFocus(w *Widget) {
	if w != nil && !w.attached {
		w = nil
	}
	if d.keyboardFocus == w {
		return
	}
	if prev := d.keyboardFocus; prev != nil {
		if prev.attached {
			d.keyboardFocus = nil
			prev.HandleEvent(d, event.NewKey(event.FocusOut, d.now, ""), PhaseBubble)
		} else {
			d.dropKeyboardFocus()
		}
	}
	d.keyboardFocus = w
	if w != nil {
		d.log.WithField("widget", w.String()).Debug("gained keyboard focus")
		w.HandleEvent(d, event.NewKey(event.FocusIn, d.now, ""), PhaseBubble)
	}
}

// forget drops references to widgets that are no longer attached.
func (d *EventDispatcher) forget() {
	if d.entered != nil && !d.entered.attached {
		d.entered = nil
	}
	if d.mouseFocus != nil && !d.mouseFocus.attached {
		d.mouseFocus = nil
	}
	if d.keyboardFocus != nil && !d.keyboardFocus.attached {
		d.dropKeyboardFocus()
	}
}
