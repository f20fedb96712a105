package retained

import (
	"testing"

	"github.com/agiangrant/simplekit/event"
	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus/hooks/test"
)

// recorder collects "tag:type:phase" strings from widget handlers.
type recorder struct {
	log []string
}

func (r *recorder) watch(w *Widget, handled bool, types ...event.Type) {
	for _, typ := range types {
		for _, phase := range []EventPhase{PhaseCapture, PhaseBubble} {
			w.AddEventListener(typ, func(e event.Event) bool {
				r.log = append(r.log, w.Tag()+":"+string(typ)+":"+phase.String())
				return handled
			}, phase)
		}
	}
}

func (r *recorder) take() []string {
	out := r.log
	r.log = nil
	return out
}

// twoPanes is a 100x100 root with a 50x50 pane at each top corner.
func twoPanes() (root, a, b *Widget) {
	a = Custom("").WithTag("a").WithPosition(0, 0).WithSize(50, 50)
	b = Custom("").WithTag("b").WithPosition(50, 0).WithSize(50, 50)
	root = Container("", a, b).WithTag("root")
	return root, a, b
}

func TestHitTest(t *testing.T) {
	root, _, _ := twoPanes()
	over := Custom("").WithTag("over").WithPosition(25, 25).WithSize(50, 50)
	root.AddChild(over)
	tk, _ := newTestToolkit(root, 100, 100)
	d := tk.Dispatcher()

	tags := func(route []*Widget) []string {
		var out []string
		for _, w := range route {
			out = append(out, w.Tag())
		}
		return out
	}

	tests := []struct {
		name string
		x, y float32
		want []string
	}{
		{"child", 10, 10, []string{"root", "a"}},
		{"topmost of overlapping children", 30, 30, []string{"root", "over"}},
		{"root only", 10, 90, []string{"root"}},
		{"outside everything", 150, 150, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tags(d.HitTest(root, tt.x, tt.y))); diff != "" {
				t.Errorf("route mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if got := d.HitTest(nil, 10, 10); len(got) != 0 {
		t.Errorf("HitTest(nil) = %v, want empty", got)
	}
}

func TestCaptureThenBubble(t *testing.T) {
	root, a, _ := twoPanes()
	var r recorder
	r.watch(root, false, event.PointerDown)
	r.watch(a, false, event.PointerDown)
	tk, _ := newTestToolkit(root, 100, 100)

	tk.Dispatcher().DispatchPointer(root, event.NewPointer(event.PointerDown, 1, 10, 10))
	want := []string{
		"root:pointerdown:capture",
		"a:pointerdown:capture",
		"a:pointerdown:bubble",
		"root:pointerdown:bubble",
	}
	if diff := cmp.Diff(want, r.take()); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestCaptureShortCircuits(t *testing.T) {
	root, a, _ := twoPanes()
	var r recorder
	r.watch(root, true, event.PointerDown)
	r.watch(a, true, event.PointerDown)
	tk, _ := newTestToolkit(root, 100, 100)

	tk.Dispatcher().DispatchPointer(root, event.NewPointer(event.PointerDown, 1, 10, 10))
	if diff := cmp.Diff([]string{"root:pointerdown:capture"}, r.take()); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestBubbleStopsAtHandler(t *testing.T) {
	root, a, _ := twoPanes()
	var r recorder
	r.watch(root, false, event.Click)
	a.On(event.Click, func(event.Event) bool {
		r.log = append(r.log, "a:handled")
		return true
	})
	tk, _ := newTestToolkit(root, 100, 100)

	tk.Dispatcher().DispatchPointer(root, event.NewPointer(event.Click, 1, 10, 10))
	want := []string{"root:click:capture", "a:handled"}
	if diff := cmp.Diff(want, r.take()); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestEnterExit(t *testing.T) {
	root, a, b := twoPanes()
	var r recorder
	for _, w := range []*Widget{a, b} {
		w.On(event.Enter, func(event.Event) bool { r.log = append(r.log, w.Tag()+":enter"); return true })
		w.On(event.Exit, func(event.Event) bool { r.log = append(r.log, w.Tag()+":exit"); return true })
	}
	tk, _ := newTestToolkit(root, 100, 100)
	d := tk.Dispatcher()

	moves := []struct {
		x, y float32
		want []string
	}{
		{10, 10, []string{"a:enter"}},
		{20, 10, nil},
		{60, 10, []string{"a:exit", "b:enter"}},
		{10, 10, []string{"b:exit", "a:enter"}},
		{10, 90, []string{"a:exit"}},
	}
	for i, m := range moves {
		d.DispatchPointer(root, event.NewPointer(event.PointerMove, float64(i), m.x, m.y))
		if diff := cmp.Diff(m.want, r.take()); diff != "" {
			t.Errorf("move %d to (%g,%g) mismatch (-want +got):\n%s", i, m.x, m.y, diff)
		}
	}
	if d.Entered() != root {
		t.Errorf("Entered() = %v, want root", d.Entered())
	}
}

func TestMouseFocus(t *testing.T) {
	root, a, b := twoPanes()
	var r recorder
	a.On(event.PointerDown, func(event.Event) bool { return true })
	r.watch(a, true, event.PointerMove, event.PointerUp)
	r.watch(b, true, event.PointerMove, event.PointerUp)
	tk, _ := newTestToolkit(root, 100, 100)
	d := tk.Dispatcher()

	d.DispatchPointer(root, event.NewPointer(event.PointerDown, 0, 10, 10))
	tk.RequestMouseFocus(a)

	d.DispatchPointer(root, event.NewPointer(event.PointerMove, 1, 60, 10))
	d.DispatchPointer(root, event.NewPointer(event.PointerUp, 2, 60, 10))
	want := []string{"a:pointermove:bubble", "a:pointerup:bubble"}
	if diff := cmp.Diff(want, r.take()); diff != "" {
		t.Errorf("focused delivery mismatch (-want +got):\n%s", diff)
	}
	if d.MouseFocus() != nil {
		t.Errorf("MouseFocus() = %v after pointerup, want nil", d.MouseFocus())
	}

	d.DispatchPointer(root, event.NewPointer(event.PointerMove, 3, 60, 10))
	if diff := cmp.Diff([]string{"b:pointermove:capture"}, r.take()); diff != "" {
		t.Errorf("routed delivery mismatch (-want +got):\n%s", diff)
	}
}

func TestMouseFocusDetached(t *testing.T) {
	root, a, b := twoPanes()
	var r recorder
	r.watch(b, true, event.PointerMove)
	tk, _ := newTestToolkit(root, 100, 100)
	d := tk.Dispatcher()

	tk.RequestMouseFocus(a)
	root.RemoveChild(a)

	d.DispatchPointer(root, event.NewPointer(event.PointerMove, 1, 60, 10))
	if d.MouseFocus() != nil {
		t.Errorf("MouseFocus() = %v, want nil", d.MouseFocus())
	}
	if diff := cmp.Diff([]string{"b:pointermove:capture"}, r.take()); diff != "" {
		t.Errorf("delivery mismatch (-want +got):\n%s", diff)
	}
}

func TestKeyboardFocus(t *testing.T) {
	root, a, b := twoPanes()
	var r recorder
	r.watch(a, false, event.FocusIn, event.FocusOut, event.KeyDown)
	r.watch(b, false, event.FocusIn, event.FocusOut, event.KeyDown)
	tk, _ := newTestToolkit(root, 100, 100)
	d := tk.Dispatcher()

	d.DispatchKey(event.NewKey(event.KeyDown, 0, "x"))
	if got := r.take(); len(got) != 0 {
		t.Errorf("unfocused keydown delivered: %v", got)
	}

	tk.RequestKeyboardFocus(a)
	tk.RequestKeyboardFocus(a)
	if diff := cmp.Diff([]string{"a:focusin:bubble"}, r.take()); diff != "" {
		t.Errorf("focus a mismatch (-want +got):\n%s", diff)
	}

	tk.RequestKeyboardFocus(b)
	d.DispatchKey(event.NewKey(event.KeyDown, 1, "x"))
	want := []string{"a:focusout:bubble", "b:focusin:bubble", "b:keydown:bubble"}
	if diff := cmp.Diff(want, r.take()); diff != "" {
		t.Errorf("focus b mismatch (-want +got):\n%s", diff)
	}

	tk.RequestKeyboardFocus(nil)
	if diff := cmp.Diff([]string{"b:focusout:bubble"}, r.take()); diff != "" {
		t.Errorf("clear focus mismatch (-want +got):\n%s", diff)
	}
	if d.KeyboardFocus() != nil {
		t.Errorf("KeyboardFocus() = %v, want nil", d.KeyboardFocus())
	}
}

func TestKeyboardFocusDetached(t *testing.T) {
	root, a, b := twoPanes()
	var r recorder
	r.watch(a, false, event.FocusOut, event.KeyDown)
	tk, _ := newTestToolkit(root, 100, 100)
	d := tk.Dispatcher()

	t.Run("detached widget cannot take focus", func(t *testing.T) {
		loose := Custom("")
		tk.RequestKeyboardFocus(loose)
		if d.KeyboardFocus() != nil {
			t.Errorf("KeyboardFocus() = %v, want nil", d.KeyboardFocus())
		}
	})

	t.Run("removed focus holder is dropped", func(t *testing.T) {
		tk.RequestKeyboardFocus(a)
		root.RemoveChild(a)
		d.DispatchKey(event.NewKey(event.KeyDown, 1, "x"))
		if got := r.take(); len(got) != 0 {
			t.Errorf("detached widget received %v", got)
		}
		if d.KeyboardFocus() != nil {
			t.Errorf("KeyboardFocus() = %v, want nil", d.KeyboardFocus())
		}
		// b can take focus without a to focusout
		tk.RequestKeyboardFocus(b)
		if d.KeyboardFocus() != b {
			t.Errorf("KeyboardFocus() = %v, want b", d.KeyboardFocus())
		}
	})
}

func TestLabelsIgnoreEvents(t *testing.T) {
	logger, hook := test.NewNullLogger()
	SetLogger(logger)
	defer SetLogger(nil)

	label := Label("x", "")
	if id := label.AddEventListener(event.Click, func(event.Event) bool { return true }, PhaseBubble); id != 0 {
		t.Errorf("listener id = %d, want 0", id)
	}
	if len(warnings(hook)) != 1 {
		t.Errorf("warnings = %v, want one", warnings(hook))
	}
	if label.HandleEvent(nil, event.NewPointer(event.Click, 0, 0, 0), PhaseBubble) {
		t.Error("label handled an event")
	}
}

func TestRemoveEventListener(t *testing.T) {
	w := Custom("")
	calls := 0
	id := w.AddEventListener(event.Click, func(event.Event) bool { calls++; return true }, PhaseBubble)
	w.HandleEvent(nil, event.NewPointer(event.Click, 0, 0, 0), PhaseBubble)
	if !w.RemoveEventListener(id) {
		t.Fatal("RemoveEventListener returned false")
	}
	w.HandleEvent(nil, event.NewPointer(event.Click, 0, 0, 0), PhaseBubble)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if w.RemoveEventListener(id) {
		t.Error("second RemoveEventListener returned true")
	}
}
