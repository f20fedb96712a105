package retained

import (
	"sort"
	"sync/atomic"

	"github.com/agiangrant/simplekit/event"
	"github.com/agiangrant/simplekit/gesture"
	"github.com/agiangrant/simplekit/textmeasure"
	"github.com/sirupsen/logrus"
)

// LoopConfig configures a Toolkit.
type LoopConfig struct {
	// Thresholds parameterise the built-in gesture translators.
	Thresholds gesture.Thresholds

	// Coalesce collapses runs of raw pointermove and resize events to the
	// newest one before translation.
	Coalesce bool

	// Measurer measures label, button and textfield text. Defaults to a
	// textmeasure.CellMeasurer.
	Measurer TextMeasurer

	// Log receives usage and layout warnings. Defaults to Logger().
	Log logrus.FieldLogger

	// LayoutDebug traces measure and layout passes at debug level.
	LayoutDebug bool

	// LayoutWarnings enables overflow warnings from layout strategies.
	LayoutWarnings bool

	// Width and Height are the initial surface size.
	Width, Height float32

	// Debug draws the box model of every widget.
	Debug bool
}

// DefaultLoopConfig returns sensible defaults.
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		Thresholds:     gesture.DefaultThresholds(),
		Measurer:       textmeasure.NewCellMeasurer(),
		LayoutWarnings: true,
		Width:          800,
		Height:         600,
	}
}

// FrameResult reports what one frame did.
type FrameResult struct {
	// Events are the semantic events dispatched this frame, in order.
	Events []event.Event

	// Relayout is true when the layout pass ran.
	Relayout bool

	// Animating is true while widget animations are still running, so the
	// host should keep scheduling frames.
	Animating bool
}

// LoopStats contains runtime counters.
type LoopStats struct {
	Frames  uint64
	Events  uint64
	Layouts uint64
}

// Toolkit runs one widget tree: it translates raw input into semantic
// events, dispatches them, and lays the tree out when something changed.
// All methods except Stats must be called from the frame goroutine.
type Toolkit struct {
	config      LoopConfig
	log         logrus.FieldLogger
	translators []gesture.Translator
	dispatcher  *EventDispatcher

	root          *Widget
	width, height float32

	// Semantic events injected by the application since the last frame.
	injected []event.Event

	listener   func(event.Event)
	animation  func(frameTime float64)
	animations *AnimationRegistry

	layoutRequested bool

	frames  atomic.Uint64
	events  atomic.Uint64
	layouts atomic.Uint64
}

// NewToolkit creates a toolkit with the default translators.
func NewToolkit(config LoopConfig) *Toolkit {
	if config.Log == nil {
		config.Log = Logger()
	}
	if config.Measurer == nil {
		config.Measurer = textmeasure.NewCellMeasurer()
	}
	return &Toolkit{
		config:      config,
		log:         config.Log,
		translators: gesture.Default(config.Thresholds),
		dispatcher:  NewEventDispatcher(config.Log),
		animations:  NewAnimationRegistry(),
		width:       config.Width,
		height:      config.Height,
	}
}

// ============================================================================
// Application Surface
// ============================================================================

// SetRoot installs the widget tree. The previous root, if any, is detached so
// it no longer receives events, and the new tree is laid out next frame.
func (t *Toolkit) SetRoot(root *Widget) {
	if t.root == root {
		return
	}
	if t.root != nil {
		setAttached(t.root, false)
	}
	t.root = root
	if root != nil {
		setAttached(root, true)
	}
	t.dispatcher.forget()
	t.layoutRequested = true
}

// Root returns the installed root widget.
func (t *Toolkit) Root() *Widget { return t.root }

// SetEventListener registers the observer called for every semantic event
// after tree dispatch. nil removes it.
func (t *Toolkit) SetEventListener(fn func(event.Event)) {
	t.listener = fn
}

// SetAnimationCallback registers a function called once per frame after
// dispatch and before layout.
func (t *Toolkit) SetAnimationCallback(fn func(frameTime float64)) {
	t.animation = fn
}

// Animations returns the registry of widget animations ticked every frame.
func (t *Toolkit) Animations() *AnimationRegistry { return t.animations }

// SendEvent injects a semantic event into the next frame. It is merged with
// translated events by timestamp.
func (t *Toolkit) SendEvent(e event.Event) {
	if e == nil {
		return
	}
	t.injected = append(t.injected, e)
}

// InvalidateLayout requests a layout pass at the end of the next frame.
// Repeated calls within a frame collapse into one pass.
func (t *Toolkit) InvalidateLayout() {
	t.layoutRequested = true
}

// AddTranslator appends a translator after the built-in ones.
func (t *Toolkit) AddTranslator(tr gesture.Translator) {
	if tr != nil {
		t.translators = append(t.translators, tr)
	}
}

// Resize changes the surface size and requests a layout pass.
func (t *Toolkit) Resize(width, height float32) {
	if width == t.width && height == t.height {
		return
	}
	t.width, t.height = width, height
	t.layoutRequested = true
}

// Size returns the surface size.
func (t *Toolkit) Size() (width, height float32) {
	return t.width, t.height
}

// Dispatcher returns the toolkit's event dispatcher.
func (t *Toolkit) Dispatcher() *EventDispatcher { return t.dispatcher }

// RequestMouseFocus gives w exclusive pointer delivery until the next
// pointerup.
func (t *Toolkit) RequestMouseFocus(w *Widget) {
	t.dispatcher.RequestMouseFocus(w)
}

// RequestKeyboardFocus moves keyboard focus to w. nil clears it.
func (t *Toolkit) RequestKeyboardFocus(w *Widget) {
	t.dispatcher.RequestKeyboardFocus(w)
}

// SetDebug turns box-model drawing on or off for the whole tree.
func (t *Toolkit) SetDebug(debug bool) {
	t.config.Debug = debug
}

// Stats returns runtime counters. Safe to call from any goroutine.
func (t *Toolkit) Stats() LoopStats {
	return LoopStats{
		Frames:  t.frames.Load(),
		Events:  t.events.Load(),
		Layouts: t.layouts.Load(),
	}
}

// ============================================================================
// Frame
// ============================================================================

// RunFrame processes one frame. It drains q, translates the raw events,
// merges them with injected events, dispatches the result to the tree and
// the event listener, ticks widget animations, runs the animation callback,
// and lays the tree out if anything invalidated it.
func (t *Toolkit) RunFrame(q *event.Queue, frameTime float64) FrameResult {
	t.frames.Add(1)

	var raw []event.RawEvent
	if q != nil {
		raw = q.Drain()
	}
	if t.config.Coalesce {
		raw = event.Coalesce(raw)
	}
	if len(raw) == 0 {
		// Time-driven translators still need to advance.
		raw = append(raw, event.Null(frameTime))
	}

	translated := t.translate(raw)

	injected := t.injected
	t.injected = nil
	sort.SliceStable(injected, func(i, j int) bool {
		return injected[i].Timestamp() < injected[j].Timestamp()
	})
	events := event.Merge(translated, injected)

	for _, e := range events {
		t.dispatch(e)
	}
	t.events.Add(uint64(len(events)))

	animating := t.animations.Tick(frameTime)
	if t.animation != nil {
		t.animation(frameTime)
	}

	relayout := t.layoutIfNeeded()
	t.dispatcher.forget()

	return FrameResult{Events: events, Relayout: relayout, Animating: animating}
}

// translate feeds every raw event to every translator in order.
func (t *Toolkit) translate(raw []event.RawEvent) []event.Event {
	var out []event.Event
	for _, r := range raw {
		for _, tr := range t.translators {
			if e := tr.Update(r); e != nil {
				out = append(out, e)
			}
		}
	}
	return out
}

// dispatch delivers one semantic event to the tree and then the listener.
func (t *Toolkit) dispatch(e event.Event) {
	switch ev := e.(type) {
	case *event.ResizeEvent:
		t.Resize(ev.Width, ev.Height)
	case *event.PointerEvent:
		t.dispatcher.DispatchPointer(t.root, ev)
	case *event.KeyEvent:
		if ev.Type().IsKeyboard() {
			t.dispatcher.DispatchKey(ev)
		}
	}
	if t.listener != nil {
		t.listener(e)
	}
}

// layoutIfNeeded runs the layout pass when it was requested or any widget in
// the tree is dirty.
func (t *Toolkit) layoutIfNeeded() bool {
	if t.root == nil {
		t.layoutRequested = false
		return false
	}
	if !t.layoutRequested && !treeDirty(t.root) {
		return false
	}
	t.layoutRequested = false
	t.Layout()
	return true
}

// Layout runs the measure and layout passes immediately.
func (t *Toolkit) Layout() {
	if t.root == nil {
		return
	}
	ctx := &LayoutContext{
		Measurer: t.config.Measurer,
		Log:      t.log,
		Warnings: t.config.LayoutWarnings,
		Debug:    t.config.LayoutDebug,
	}
	LayoutTree(ctx, t.root, t.width, t.height)
	t.layouts.Add(1)
}

func treeDirty(w *Widget) bool {
	if w.dirty {
		return true
	}
	for _, c := range w.children {
		if treeDirty(c) {
			return true
		}
	}
	return false
}

// Draw paints the tree onto s, back to front.
func (t *Toolkit) Draw(s Surface) {
	if t.root == nil || s == nil {
		return
	}
	t.root.Draw(s, t.config.Debug)
}
