package retained

// Builder helpers for common widget patterns.
// These provide a fluent API for constructing UI trees.

// Container creates a container with a Fixed layout.
func Container(classes string, children ...*Widget) *Widget {
	w := NewWidget(KindContainer)
	if classes != "" {
		w.SetClasses(classes)
	}
	return w.WithChildren(children...)
}

// FillRowContainer creates a container that lays its children out in a
// row, growing children with a fill width into the leftover space.
func FillRowContainer(gap float32, classes string, children ...*Widget) *Widget {
	return Container(classes, children...).SetLayout(&FillRow{Gap: gap})
}

// WrapRowContainer creates a container that wraps its children into rows.
func WrapRowContainer(gap float32, classes string, children ...*Widget) *Widget {
	return Container(classes, children...).SetLayout(&WrapRow{Gap: gap})
}

// CentredContainer creates a container that centres its children.
func CentredContainer(classes string, children ...*Widget) *Widget {
	return Container(classes, children...).SetLayout(Centred{})
}

// Label creates a text label. Labels do not take part in event handling.
func Label(text string, classes string) *Widget {
	w := NewWidget(KindLabel)
	w.text = text
	if classes != "" {
		w.SetClasses(classes)
	}
	return w
}

// Button creates a push button that emits action when clicked.
func Button(text string, classes string) *Widget {
	w := NewWidget(KindButton)
	w.text = text
	if classes != "" {
		w.SetClasses(classes)
	}
	return w
}

// Textfield creates a single-line text input.
func Textfield(text string, classes string) *Widget {
	w := NewWidget(KindTextfield)
	w.buffer.SetText(text)
	if classes != "" {
		w.SetClasses(classes)
	}
	return w
}

// Custom creates a leaf widget whose paint and measure logic are supplied by
// the caller through SetPaint and SetMeasure.
func Custom(classes string) *Widget {
	w := NewWidget(KindCustom)
	if classes != "" {
		w.SetClasses(classes)
	}
	return w
}

// ============================================================================
// Fluent Builder Pattern
// ============================================================================

// With returns the widget for chaining.
func (w *Widget) With(fn func(*Widget)) *Widget {
	fn(w)
	return w
}

// WithChildren adds children to the widget.
func (w *Widget) WithChildren(children ...*Widget) *Widget {
	for _, child := range children {
		w.AddChild(child)
	}
	return w
}

// WithTag sets the identity tag.
func (w *Widget) WithTag(tag string) *Widget {
	return w.SetTag(tag)
}

// WithSize sets width and height.
func (w *Widget) WithSize(width, height float32) *Widget {
	return w.SetSize(width, height)
}

// WithPosition sets x and y.
func (w *Widget) WithPosition(x, y float32) *Widget {
	return w.SetPosition(x, y)
}

// WithFill sets the fill weights.
func (w *Widget) WithFill(width, height float32) *Widget {
	return w.SetFill(width, height)
}

// WithBox sets margin and padding.
func (w *Widget) WithBox(margin, padding float32) *Widget {
	return w.SetMargin(margin).SetPadding(padding)
}

// WithColors sets the background and border colours.
func (w *Widget) WithColors(fill, border string) *Widget {
	return w.SetFillColor(fill).SetBorderColor(border)
}
