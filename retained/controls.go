package retained

import "github.com/agiangrant/simplekit/event"

// Control widgets: Button, Textfield, Checkbox, Slider.
// Each gets its interaction as a behavior when it is created.

const (
	buttonMinWidth     = 80
	checkboxSize       = 16
	sliderHeight       = 20
	sliderThumbWidth   = 20
	sliderDefaultWidth = 100
)

// ============================================================================
// Button
// ============================================================================

// setupButtonHandlers tracks idle/hover/down and emits action when a press
// is released over the button.
func setupButtonHandlers(w *Widget) {
	w.AddBehavior(BehaviorFunc(func(fm FocusManager, w *Widget, e event.Event) bool {
		switch e.Type() {
		case event.PointerDown:
			w.state = StateDown
			fm.RequestMouseFocus(w)
			return true
		case event.PointerUp:
			pe, ok := e.(*event.PointerEvent)
			if !ok {
				return false
			}
			pressed := w.state == StateDown
			if !w.bounds.Contains(pe.X, pe.Y) {
				w.state = StateIdle
				return pressed
			}
			w.state = StateHover
			if pressed {
				return w.emit(event.Action, e.Timestamp())
			}
		case event.Enter:
			if w.state != StateDown {
				w.state = StateHover
			}
			return true
		case event.Exit:
			w.state = StateIdle
			return true
		}
		return false
	}))
}

// ============================================================================
// Textfield
// ============================================================================

// setupTextfieldHandlers takes keyboard focus on press and edits the text on
// keydown while focused, emitting textchanged after each edit.
func setupTextfieldHandlers(w *Widget) {
	w.AddBehavior(BehaviorFunc(func(fm FocusManager, w *Widget, e event.Event) bool {
		switch e.Type() {
		case event.Enter:
			w.state = StateHover
		case event.Exit:
			w.state = StateIdle
		case event.PointerDown:
			fm.RequestKeyboardFocus(w)
			return true
		case event.FocusIn:
			w.focused = true
		case event.FocusOut:
			w.focused = false
		case event.KeyDown:
			ke, ok := e.(*event.KeyEvent)
			if !ok || !w.focused || ke.Key == "" {
				return false
			}
			changed, moved := w.buffer.ApplyKey(ke.Key)
			if changed || moved {
				w.markDirty()
			}
			if changed {
				w.emit(event.TextChanged, e.Timestamp())
				return true
			}
			return moved
		}
		return false
	}))
}

// Buffer returns the textfield's edit buffer, or nil for other kinds.
func (w *Widget) Buffer() *TextBuffer { return w.buffer }

// ============================================================================
// Checkbox
// ============================================================================

// Checkbox creates a checkbox widget with an optional label.
func Checkbox(label string, classes string) *Widget {
	w := NewWidget(KindCheckbox)
	w.text = label
	if classes != "" {
		w.SetClasses(classes)
	}
	return w
}

func setupCheckboxHandlers(w *Widget) {
	w.AddBehavior(BehaviorFunc(func(fm FocusManager, w *Widget, e event.Event) bool {
		switch e.Type() {
		case event.Click:
			w.checked = !w.checked
			w.emit(event.Action, e.Timestamp())
			return true
		case event.Enter:
			w.state = StateHover
			return true
		case event.Exit:
			w.state = StateIdle
			return true
		}
		return false
	}))
}

// Checked reports whether the checkbox is checked.
func (w *Widget) Checked() bool { return w.checked }

// SetChecked sets the checked state.
func (w *Widget) SetChecked(checked bool) *Widget {
	w.checked = checked
	return w
}

// ============================================================================
// Slider
// ============================================================================

// Slider creates a horizontal slider over [min, max].
func Slider(min, max, value float32, classes string) *Widget {
	w := NewWidget(KindSlider)
	w.SetRange(min, max)
	w.SetValue(value)
	if classes != "" {
		w.SetClasses(classes)
	}
	return w
}

func setupSliderHandlers(w *Widget) {
	w.AddBehavior(BehaviorFunc(func(fm FocusManager, w *Widget, e event.Event) bool {
		switch e.Type() {
		case event.PointerDown:
			pe, ok := e.(*event.PointerEvent)
			if !ok {
				return false
			}
			fm.RequestMouseFocus(w)
			w.dragging = true
			w.state = StateDown
			updateSliderFromPointer(w, pe)
			return true
		case event.PointerMove:
			pe, ok := e.(*event.PointerEvent)
			if !ok || !w.dragging {
				return false
			}
			updateSliderFromPointer(w, pe)
			return true
		case event.PointerUp:
			pe, ok := e.(*event.PointerEvent)
			if !ok || !w.dragging {
				return false
			}
			w.dragging = false
			w.state = StateIdle
			if w.bounds.Contains(pe.X, pe.Y) {
				w.state = StateHover
			}
			w.emit(event.Action, e.Timestamp())
			return true
		case event.Enter:
			if !w.dragging {
				w.state = StateHover
			}
			return true
		case event.Exit:
			if !w.dragging {
				w.state = StateIdle
			}
			return true
		case event.FocusIn:
			w.focused = true
		case event.FocusOut:
			w.focused = false
		case event.KeyDown:
			// Arrow keys step 1% when keyboard-focused
			ke, ok := e.(*event.KeyEvent)
			if !ok {
				return false
			}
			step := (w.max - w.min) / 100
			switch ke.Key {
			case "ArrowLeft", "ArrowDown":
				step = -step
			case "ArrowRight", "ArrowUp":
			default:
				return false
			}
			if w.setValue(w.value + step) {
				w.emit(event.ValueChanged, e.Timestamp())
			}
			return true
		}
		return false
	}))
}

// updateSliderFromPointer maps the pointer's x onto the track.
func updateSliderFromPointer(w *Widget, e *event.PointerEvent) {
	localX := e.X - w.bounds.X - w.box.Padding
	track := w.box.ContentWidth - sliderThumbWidth
	ratio := float32(0)
	if track > 0 {
		ratio = (localX - sliderThumbWidth/2) / track
	}
	ratio = min(max(ratio, 0), 1)
	if w.setValue(w.min + ratio*(w.max-w.min)) {
		w.emit(event.ValueChanged, e.Timestamp())
	}
}

// Value returns the slider value.
func (w *Widget) Value() float32 { return w.value }

// Range returns the slider bounds.
func (w *Widget) Range() (min, max float32) { return w.min, w.max }

// SetValue sets the slider value, clamped to the range.
func (w *Widget) SetValue(v float32) *Widget {
	w.setValue(v)
	return w
}

// SetRange sets the slider bounds and clamps the value. max below min is
// raised to min.
func (w *Widget) SetRange(lo, hi float32) *Widget {
	w.min, w.max = lo, max(lo, hi)
	w.setValue(w.value)
	return w
}

func (w *Widget) setValue(v float32) bool {
	v = min(max(v, w.min), w.max)
	if v == w.value {
		return false
	}
	w.value = v
	return true
}

// thumbX returns the thumb's left edge in content coordinates.
func (w *Widget) thumbX() float32 {
	if w.max == w.min {
		return 0
	}
	track := max(w.box.ContentWidth-sliderThumbWidth, 0)
	return (w.value - w.min) / (w.max - w.min) * track
}
