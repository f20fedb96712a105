// Package retained provides a retained-mode widget tree: a box model, a
// two-pass layout engine with pluggable strategies, capture/bubble event
// dispatch with hover and focus tracking, and a per-frame run loop.
//
// The package is single-threaded. A Toolkit drives one widget tree; the
// window system feeds it raw events and frame ticks and asks it to draw.
package retained

import (
	"fmt"
	"sync/atomic"

	"github.com/agiangrant/simplekit/event"
	"github.com/agiangrant/simplekit/tw"
	"github.com/sirupsen/logrus"
)

// WidgetID uniquely identifies a widget.
type WidgetID uint64

var nextWidgetID atomic.Uint64

func newWidgetID() WidgetID {
	return WidgetID(nextWidgetID.Add(1))
}

// WidgetKind identifies the type of widget.
type WidgetKind string

const (
	KindContainer WidgetKind = "container"
	KindLabel     WidgetKind = "label"
	KindButton    WidgetKind = "button"
	KindTextfield WidgetKind = "textfield"
	KindSlider    WidgetKind = "slider"
	KindCheckbox  WidgetKind = "checkbox"
	KindCustom    WidgetKind = "custom"
)

// WidgetState is the pointer interaction state of a control.
type WidgetState uint8

const (
	StateIdle WidgetState = iota
	StateHover
	StateDown
)

func (s WidgetState) String() string {
	switch s {
	case StateHover:
		return "hover"
	case StateDown:
		return "down"
	}
	return "idle"
}

// TextAlign is the horizontal alignment of text within its box.
type TextAlign uint8

const (
	AlignCentre TextAlign = iota
	AlignLeft
	AlignRight
)

// Widget is a node in the retained tree. Every kind shares the same record;
// kind-specific behaviour is attached as Behaviors when the widget is created.
// Only containers have children and a layout strategy.
type Widget struct {
	id   WidgetID
	kind WidgetKind
	tag  string

	box BoxModel

	// Absolute padding box from the last layout pass.
	bounds Bounds

	// Container fields
	children []*Widget
	layout   Layout

	// Tree membership. A widget is attached when it is reachable from the
	// root installed on a toolkit.
	parented bool
	attached bool
	dirty    bool

	// Event handling
	bindings  []binding
	behaviors []Behavior
	nextBind  ListenerID
	noEvents  bool

	// Content
	text      string
	font      string
	align     TextAlign
	fill      string
	border    string
	textColor string

	// Interaction state
	state   WidgetState
	focused bool
	debug   bool

	// Utility-class styles, set through SetClasses
	classes string
	styles  *tw.ComputedStyles

	// Control data
	buffer   *TextBuffer
	cursorX  float32
	min      float32
	max      float32
	value    float32
	dragging bool
	checked  bool
	measure  func(ctx *LayoutContext) (Size, bool)
	paint    func(w *Widget, s Surface)
}

// NewWidget creates a widget of the given kind with the kind's default
// padding and behaviour. Containers start with a Fixed layout.
func NewWidget(kind WidgetKind) *Widget {
	w := &Widget{
		id:    newWidgetID(),
		kind:  kind,
		font:  currentStyle.Font,
		dirty: true,
	}
	switch kind {
	case KindContainer:
		w.layout = &Fixed{}
	case KindLabel:
		w.box.Padding = currentStyle.TextPadding
		w.noEvents = true
	case KindButton:
		w.box.Padding = currentStyle.TextPadding
		w.align = AlignCentre
		setupButtonHandlers(w)
	case KindTextfield:
		w.box.Padding = currentStyle.TextPadding
		w.align = AlignLeft
		w.buffer = NewTextBuffer("")
		setupTextfieldHandlers(w)
	case KindSlider:
		w.max = 100
		setupSliderHandlers(w)
	case KindCheckbox:
		w.box.Padding = currentStyle.TextPadding
		w.align = AlignLeft
		setupCheckboxHandlers(w)
	}
	return w
}

// ID returns the widget's unique ID.
func (w *Widget) ID() WidgetID { return w.id }

// Kind returns the widget's kind.
func (w *Widget) Kind() WidgetKind { return w.kind }

// Tag returns the identity tag used in logs and debug drawing.
func (w *Widget) Tag() string { return w.tag }

// SetTag sets the identity tag.
func (w *Widget) SetTag(tag string) *Widget {
	w.tag = tag
	return w
}

// Box returns a copy of the widget's box model.
func (w *Widget) Box() BoxModel { return w.box }

// Bounds returns the absolute padding box from the last layout pass.
func (w *Widget) Bounds() Bounds { return w.bounds }

// State returns the pointer interaction state.
func (w *Widget) State() WidgetState { return w.state }

// Focused reports whether the widget holds keyboard focus.
func (w *Widget) Focused() bool { return w.focused }

// Attached reports whether the widget is part of an installed tree.
func (w *Widget) Attached() bool { return w.attached }

// Dirty reports whether a size-affecting property changed since the last
// layout pass.
func (w *Widget) Dirty() bool { return w.dirty }

func (w *Widget) markDirty() {
	w.dirty = true
}

// ============================================================================
// Children
// ============================================================================

// Children returns the child list in paint order. Callers must not modify it.
func (w *Widget) Children() []*Widget { return w.children }

// AddChild appends a child. Only containers accept children; a child that
// already has a parent must be removed from it first.
func (w *Widget) AddChild(child *Widget) *Widget {
	if child == nil {
		return w
	}
	if w.kind != KindContainer {
		Logger().WithField("widget", w.String()).Warn("only containers can have children")
		return w
	}
	if child.parented {
		Logger().WithField("widget", child.String()).Warn("widget already has a parent")
		return w
	}
	child.parented = true
	setAttached(child, w.attached)
	w.children = append(w.children, child)
	w.markDirty()
	return w
}

// RemoveChild removes a child. The child and its subtree are detached and
// may be added to another container.
func (w *Widget) RemoveChild(child *Widget) bool {
	for i, c := range w.children {
		if c == child {
			w.children = append(w.children[:i:i], w.children[i+1:]...)
			child.parented = false
			setAttached(child, false)
			w.markDirty()
			return true
		}
	}
	return false
}

// ClearChildren removes every child.
func (w *Widget) ClearChildren() *Widget {
	for _, c := range w.children {
		c.parented = false
		setAttached(c, false)
	}
	w.children = nil
	w.markDirty()
	return w
}

func setAttached(w *Widget, attached bool) {
	w.attached = attached
	for _, c := range w.children {
		setAttached(c, attached)
	}
}

// LayoutStrategy returns the container's layout strategy.
func (w *Widget) LayoutStrategy() Layout { return w.layout }

// SetLayout sets the container's layout strategy. nil restores Fixed.
func (w *Widget) SetLayout(l Layout) *Widget {
	if w.kind != KindContainer {
		Logger().WithField("widget", w.String()).Warn("only containers have a layout")
		return w
	}
	if l == nil {
		l = &Fixed{}
	}
	w.layout = l
	w.markDirty()
	return w
}

// ============================================================================
// Geometry
// ============================================================================

// SetPosition sets the author-specified position used by the Fixed layout.
func (w *Widget) SetPosition(x, y float32) *Widget {
	if w.box.X != x || w.box.Y != y {
		w.box.X, w.box.Y = x, y
		w.markDirty()
	}
	return w
}

// SetSize sets an explicit padding-box size.
func (w *Widget) SetSize(width, height float32) *Widget {
	return w.SetWidth(width).SetHeight(height)
}

// SetWidth sets an explicit padding-box width.
func (w *Widget) SetWidth(width float32) *Widget {
	width = max(0, width)
	if !w.box.HasWidth || w.box.Width != width {
		w.box.Width, w.box.HasWidth = width, true
		w.markDirty()
	}
	return w
}

// SetHeight sets an explicit padding-box height.
func (w *Widget) SetHeight(height float32) *Widget {
	height = max(0, height)
	if !w.box.HasHeight || w.box.Height != height {
		w.box.Height, w.box.HasHeight = height, true
		w.markDirty()
	}
	return w
}

// ClearSize removes any explicit size so the widget sizes to its content.
func (w *Widget) ClearSize() *Widget {
	w.box.HasWidth, w.box.HasHeight = false, false
	w.markDirty()
	return w
}

// SetMinSize sets a lower bound on the intrinsic padding-box size.
func (w *Widget) SetMinSize(width, height float32) *Widget {
	w.box.MinWidth, w.box.MinHeight = max(0, width), max(0, height)
	w.markDirty()
	return w
}

// SetPadding sets the padding on all sides. Negative values become 0.
func (w *Widget) SetPadding(padding float32) *Widget {
	padding = max(0, padding)
	if w.box.Padding != padding {
		w.box.Padding = padding
		w.markDirty()
	}
	return w
}

// SetMargin sets the margin on all sides. Negative values become 0.
func (w *Widget) SetMargin(margin float32) *Widget {
	margin = max(0, margin)
	if w.box.Margin != margin {
		w.box.Margin = margin
		w.markDirty()
	}
	return w
}

// SetFill sets the proportional growth weights.
func (w *Widget) SetFill(width, height float32) *Widget {
	width, height = max(0, width), max(0, height)
	if w.box.FillWidth != width || w.box.FillHeight != height {
		w.box.FillWidth, w.box.FillHeight = width, height
		w.markDirty()
	}
	return w
}

// place positions the widget's margin box and assigns its full size. It is
// called by layout strategies.
func (w *Widget) place(x, y, fullWidth, fullHeight float32) {
	w.box.X, w.box.Y = x, y
	w.box.assign(fullWidth, fullHeight)
}

// Place is the exported form of place for layout strategies defined outside
// this package.
func (w *Widget) Place(x, y, fullWidth, fullHeight float32) {
	w.place(x, y, fullWidth, fullHeight)
}

// HitTest reports whether a point in the parent's content coordinates falls
// inside the widget's padding box.
func (w *Widget) HitTest(x, y float32) bool {
	return w.box.PaddingBox().Contains(x, y)
}

// ============================================================================
// Content and Style
// ============================================================================

// Text returns the widget's text.
func (w *Widget) Text() string {
	if w.buffer != nil {
		return w.buffer.Text()
	}
	return w.text
}

// SetText sets the widget's text.
func (w *Widget) SetText(text string) *Widget {
	if w.buffer != nil {
		if w.buffer.Text() != text {
			w.buffer.SetText(text)
			w.markDirty()
		}
		return w
	}
	if w.text != text {
		w.text = text
		w.markDirty()
	}
	return w
}

// Font returns the CSS font string.
func (w *Widget) Font() string { return w.font }

// SetFont sets the CSS font string, e.g. "12pt sans-serif".
func (w *Widget) SetFont(font string) *Widget {
	if w.font != font {
		w.font = font
		w.markDirty()
	}
	return w
}

// SetAlign sets the text alignment.
func (w *Widget) SetAlign(align TextAlign) *Widget {
	w.align = align
	return w
}

// SetFillColor sets the background colour. Empty means none.
func (w *Widget) SetFillColor(colour string) *Widget {
	w.fill = colour
	return w
}

// SetBorderColor sets the border colour. Empty means none.
func (w *Widget) SetBorderColor(colour string) *Widget {
	w.border = colour
	return w
}

// SetTextColor sets the text colour.
func (w *Widget) SetTextColor(colour string) *Widget {
	w.textColor = colour
	return w
}

// SetDebug turns box-model debug drawing on or off for this widget.
func (w *Widget) SetDebug(debug bool) *Widget {
	w.debug = debug
	return w
}

// SetPaint installs custom paint logic. The surface origin is the widget's
// content box.
func (w *Widget) SetPaint(fn func(w *Widget, s Surface)) *Widget {
	w.paint = fn
	return w
}

// SetMeasure installs custom content measurement for leaf widgets. Returning
// false keeps the previous size.
func (w *Widget) SetMeasure(fn func(ctx *LayoutContext) (Size, bool)) *Widget {
	w.measure = fn
	w.markDirty()
	return w
}

func (w *Widget) String() string {
	name := string(w.kind)
	if w.tag != "" {
		name += "#" + w.tag
	}
	switch w.kind {
	case KindLabel, KindButton, KindTextfield, KindCheckbox:
		return fmt.Sprintf("%s %q", name, w.Text())
	case KindSlider:
		return fmt.Sprintf("%s [%g,%g]=%g", name, w.min, w.max, w.value)
	}
	return name
}

// ============================================================================
// Event Bindings
// ============================================================================

// AddEventListener binds a handler for one event type in one phase. Labels
// do not accept listeners.
func (w *Widget) AddEventListener(t event.Type, h Handler, phase EventPhase) ListenerID {
	if w.noEvents {
		Logger().WithFields(logrus.Fields{
			"widget": w.String(),
			"event":  t,
		}).Warn("widget does not support event listeners")
		return 0
	}
	w.nextBind++
	w.bindings = append(w.bindings, binding{id: w.nextBind, typ: t, handler: h, phase: phase})
	return w.nextBind
}

// On binds a bubble-phase handler.
func (w *Widget) On(t event.Type, h Handler) *Widget {
	w.AddEventListener(t, h, PhaseBubble)
	return w
}

// RemoveEventListener removes a binding added by AddEventListener.
func (w *Widget) RemoveEventListener(id ListenerID) bool {
	for i, b := range w.bindings {
		if b.id == id {
			w.bindings = append(w.bindings[:i:i], w.bindings[i+1:]...)
			return true
		}
	}
	return false
}

// AddBehavior attaches a behavior to this widget.
func (w *Widget) AddBehavior(b Behavior) *Widget {
	w.behaviors = append(w.behaviors, b)
	return w
}

// HandleEvent delivers an event in one phase. Capture runs only capture
// bindings. Bubble runs the widget's behaviors and then its bubble bindings.
// It returns true when the event was handled.
func (w *Widget) HandleEvent(fm FocusManager, e event.Event, phase EventPhase) bool {
	if w.noEvents {
		return false
	}
	if phase == PhaseCapture {
		return w.sendEvent(e, PhaseCapture)
	}
	handled := false
	for _, b := range w.behaviors {
		if b.HandleEvent(fm, w, e) {
			handled = true
		}
	}
	if w.sendEvent(e, PhaseBubble) {
		handled = true
	}
	return handled
}

// sendEvent runs the bindings matching the event type and phase until one
// reports the event handled.
func (w *Widget) sendEvent(e event.Event, phase EventPhase) bool {
	if len(w.bindings) == 0 {
		return false
	}
	// Handlers may add or remove listeners.
	bindings := append([]binding(nil), w.bindings...)
	for _, b := range bindings {
		if b.typ == e.Type() && b.phase == phase && b.handler(e) {
			return true
		}
	}
	return false
}

// emit sends a widget-level event such as action to the widget's own bubble
// listeners.
func (w *Widget) emit(t event.Type, time float64) bool {
	return w.sendEvent(event.New(t, time, w), PhaseBubble)
}
