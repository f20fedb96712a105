package retained

import (
	"fmt"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

// TextMeasurer returns the size of a string drawn in a CSS font. ok is false
// when the text cannot be measured.
type TextMeasurer interface {
	MeasureText(text, font string) (width, height float32, ok bool)
}

// TextMeasurerFunc adapts a function to the TextMeasurer interface.
type TextMeasurerFunc func(text, font string) (width, height float32, ok bool)

func (f TextMeasurerFunc) MeasureText(text, font string) (float32, float32, bool) {
	return f(text, font)
}

// Layout arranges a container's children. Strategies only touch the
// children's position and laid-out size.
type Layout interface {
	// Measure returns the content size needed to fit the already-measured
	// children.
	Measure(ctx *LayoutContext, children []*Widget) Size

	// Layout positions and sizes the children inside width x height and
	// returns the size actually used.
	Layout(ctx *LayoutContext, width, height float32, children []*Widget) Size
}

// LayoutContext carries the collaborators of one layout run.
type LayoutContext struct {
	Measurer TextMeasurer
	Log      logrus.FieldLogger
	// Warnings enables overflow warnings.
	Warnings bool
	// Debug traces each pass at debug level.
	Debug bool

	container *Widget
}

// Container returns the container whose strategy is running.
func (c *LayoutContext) Container() *Widget { return c.container }

// Warn logs a layout warning for the current container.
func (c *LayoutContext) Warn(msg string, fields logrus.Fields) {
	if !c.Warnings || c.Log == nil {
		return
	}
	entry := c.Log.WithFields(fields)
	if c.container != nil {
		entry = entry.WithField("container", c.container.String())
	}
	entry.Warn(msg)
}

func (c *LayoutContext) debugLog(format string, args ...interface{}) {
	if c.Debug && c.Log != nil {
		c.Log.Debugf(format, args...)
	}
}

// MeasureText measures a string with the context's measurer.
func (c *LayoutContext) MeasureText(text, font string) (Size, bool) {
	if c.Measurer == nil {
		return Size{}, false
	}
	w, h, ok := c.Measurer.MeasureText(text, font)
	if !ok {
		return Size{}, false
	}
	return Size{Width: w, Height: h}, true
}

// ============================================================================
// Passes
// ============================================================================

// LayoutTree runs the measure pass and then the layout pass over the tree
// rooted at root, giving the root width x height.
func LayoutTree(ctx *LayoutContext, root *Widget, width, height float32) {
	if root == nil {
		return
	}
	ctx.debugLog("layout %s in %gx%g", root, width, height)
	measureTree(ctx, root)
	root.place(0, 0, width, height)
	arrange(ctx, root, 0, 0)
}

// measureTree computes intrinsic sizes bottom-up.
func measureTree(ctx *LayoutContext, w *Widget) {
	for _, c := range w.children {
		measureTree(ctx, c)
	}
	if w.kind == KindContainer {
		ctx.container = w
		s := w.layout.Measure(ctx, w.children)
		w.box.MeasuredWidth, w.box.MeasuredHeight = s.Width, s.Height
		ctx.container = nil
	} else {
		measureLeaf(ctx, w)
	}
	ctx.debugLog(" measure %s => %gx%g", w, w.box.FullIntrinsicWidth(), w.box.FullIntrinsicHeight())
}

// arrange applies the parent-assigned size top-down. originX and originY are
// the absolute content origin of the parent.
func arrange(ctx *LayoutContext, w *Widget, originX, originY float32) {
	w.bounds = Bounds{
		X:      originX + w.box.X + w.box.Margin,
		Y:      originY + w.box.Y + w.box.Margin,
		Width:  w.box.LayoutWidth,
		Height: w.box.LayoutHeight,
	}
	if w.kind == KindContainer && len(w.children) > 0 {
		ctx.container = w
		used := w.layout.Layout(ctx, w.box.ContentWidth, w.box.ContentHeight, w.children)
		ctx.container = nil
		ctx.debugLog(" arrange %s used %gx%g of %gx%g", w, used.Width, used.Height,
			w.box.ContentWidth, w.box.ContentHeight)

		cx := w.bounds.X + w.box.Padding
		cy := w.bounds.Y + w.box.Padding
		for _, c := range w.children {
			arrange(ctx, c, cx, cy)
		}
	}
	w.dirty = false
}

// measureLeaf sets the intrinsic content size of a non-container widget.
// On measurement failure the previous size is kept.
func measureLeaf(ctx *LayoutContext, w *Widget) {
	var content Size
	switch w.kind {
	case KindLabel, KindButton:
		text := w.text
		if text == "" {
			text = " "
		}
		m, ok := ctx.MeasureText(text, w.font)
		if !ok {
			warnMeasure(ctx, w)
			return
		}
		content = m
		if w.kind == KindButton && !w.box.HasWidth {
			content.Width = max(content.Width, buttonMinWidth-2*w.box.Padding)
		}

	case KindTextfield:
		text := w.buffer.Text()
		m, ok := ctx.MeasureText(text, w.font)
		line, lok := ctx.MeasureText(" ", w.font)
		if !ok || !lok {
			warnMeasure(ctx, w)
			return
		}
		content = Size{Width: m.Width + 1, Height: line.Height}
		w.cursorX = 0
		if c := w.buffer.Cursor(); c > 0 {
			prefix := string([]rune(text)[:c])
			if p, ok := ctx.MeasureText(prefix, w.font); ok {
				w.cursorX = p.Width
			}
		}

	case KindSlider:
		content = Size{Width: sliderDefaultWidth, Height: sliderHeight}

	case KindCheckbox:
		m, ok := ctx.MeasureText(w.text, w.font)
		if !ok {
			warnMeasure(ctx, w)
			return
		}
		content = Size{Width: checkboxSize + w.box.Padding + m.Width, Height: max(checkboxSize, m.Height)}
		if utf8.RuneCountInString(w.text) == 0 {
			content.Width = checkboxSize
		}

	case KindCustom:
		if w.measure == nil {
			break
		}
		m, ok := w.measure(ctx)
		if !ok {
			warnMeasure(ctx, w)
			return
		}
		content = m
	}
	w.box.MeasuredWidth, w.box.MeasuredHeight = content.Width, content.Height
}

func warnMeasure(ctx *LayoutContext, w *Widget) {
	if ctx.Log != nil {
		ctx.Log.WithFields(logrus.Fields{"widget": w.String(), "font": w.font}).
			Warn("text measurement failed, keeping previous size")
	}
}

func outside(c *Widget, width, height float32) bool {
	return c.box.X < 0 || c.box.Y < 0 ||
		c.box.X+c.box.FullWidth() > width ||
		c.box.Y+c.box.FullHeight() > height
}

// ============================================================================
// Fixed
// ============================================================================

// Fixed keeps the author-specified position of each child and gives it its
// intrinsic size.
type Fixed struct{}

func (Fixed) Measure(ctx *LayoutContext, children []*Widget) Size {
	var s Size
	for _, c := range children {
		s.Width = max(s.Width, c.box.X+c.box.FullIntrinsicWidth())
		s.Height = max(s.Height, c.box.Y+c.box.FullIntrinsicHeight())
	}
	return s
}

func (Fixed) Layout(ctx *LayoutContext, width, height float32, children []*Widget) Size {
	var used Size
	for _, c := range children {
		c.place(c.box.X, c.box.Y, c.box.FullIntrinsicWidth(), c.box.FullIntrinsicHeight())
		if outside(c, width, height) {
			ctx.Warn("element outside parent bounds", logrus.Fields{"widget": c.String(), "strategy": "fixed"})
		}
		used.Width = max(used.Width, c.box.X+c.box.FullWidth())
		used.Height = max(used.Height, c.box.Y+c.box.FullHeight())
	}
	return used
}

func (Fixed) String() string { return "fixed" }

// ============================================================================
// Centred
// ============================================================================

// Centred stacks every child in the centre of the container. A child with a
// fill weight on an axis first expands to the whole of that axis.
type Centred struct{}

func (Centred) Measure(ctx *LayoutContext, children []*Widget) Size {
	var s Size
	for _, c := range children {
		s.Width = max(s.Width, c.box.FullIntrinsicWidth())
		s.Height = max(s.Height, c.box.FullIntrinsicHeight())
	}
	return s
}

func (Centred) Layout(ctx *LayoutContext, width, height float32, children []*Widget) Size {
	var used Size
	for _, c := range children {
		w := c.box.FullIntrinsicWidth()
		if c.box.FillWidth > 0 {
			w = max(w, width)
		}
		h := c.box.FullIntrinsicHeight()
		if c.box.FillHeight > 0 {
			h = max(h, height)
		}
		c.place(width/2-w/2, height/2-h/2, w, h)
		if outside(c, width, height) {
			ctx.Warn("element outside parent bounds", logrus.Fields{"widget": c.String(), "strategy": "centred"})
		}
		used.Width = max(used.Width, c.box.FullWidth())
		used.Height = max(used.Height, c.box.FullHeight())
	}
	return used
}

func (Centred) String() string { return "centred" }

// ============================================================================
// Fill Row
// ============================================================================

// FillRow lays children left to right separated by Gap. Width left over
// after the children's intrinsic widths is shared among children with a
// fill width, in proportion to their weights. Children are never shrunk: if
// the row is too narrow they overflow and a warning is logged.
type FillRow struct {
	Gap float32
}

func (f *FillRow) Measure(ctx *LayoutContext, children []*Widget) Size {
	return rowSize(children, f.Gap)
}

func (f *FillRow) Layout(ctx *LayoutContext, width, height float32, children []*Widget) Size {
	if len(children) == 0 {
		return Size{}
	}
	var basis, fillTotal float32
	for _, c := range children {
		basis += c.box.FullIntrinsicWidth()
		fillTotal += c.box.FillWidth
	}
	remaining := width - float32(len(children)-1)*f.Gap - basis
	ctx.debugLog(" fill-row children:%d basis:%g remaining:%g", len(children), basis, remaining)
	if remaining < 0 {
		ctx.Warn("not enough space in row", logrus.Fields{
			"strategy":  "fill-row",
			"available": width,
			"needed":    width - remaining,
		})
	}

	var x, rowHeight float32
	for _, c := range children {
		w := c.box.FullIntrinsicWidth()
		if fillTotal > 0 && remaining > 0 {
			w += c.box.FillWidth / fillTotal * remaining
		}
		h := c.box.FullIntrinsicHeight()
		if c.box.FillHeight > 0 {
			h = max(h, height)
		}
		c.place(x, 0, w, h)
		rowHeight = max(rowHeight, c.box.FullHeight())
		x += w + f.Gap
	}

	last := children[len(children)-1]
	return Size{Width: last.box.X + last.box.FullWidth(), Height: rowHeight}
}

func (f *FillRow) String() string { return fmt.Sprintf("fill-row(gap=%g)", f.Gap) }

// rowSize is the natural size of the children on one row.
func rowSize(children []*Widget, gap float32) Size {
	var s Size
	for i, c := range children {
		if i > 0 {
			s.Width += gap
		}
		s.Width += c.box.FullIntrinsicWidth()
		s.Height = max(s.Height, c.box.FullIntrinsicHeight())
	}
	return s
}

// ============================================================================
// Wrap Row
// ============================================================================

// WrapRow places children left to right at their intrinsic size and starts
// a new row when the next child would not fit. Overflow in either direction
// is logged, not corrected.
type WrapRow struct {
	Gap float32
}

func (r *WrapRow) Measure(ctx *LayoutContext, children []*Widget) Size {
	return rowSize(children, r.Gap)
}

func (r *WrapRow) Layout(ctx *LayoutContext, width, height float32, children []*Widget) Size {
	var used Size
	var x, y, rowHeight float32
	for _, c := range children {
		w, h := c.box.FullIntrinsicWidth(), c.box.FullIntrinsicHeight()
		if x > 0 && x+w > width {
			x = 0
			y += rowHeight + r.Gap
			rowHeight = 0
		}
		if w > width {
			ctx.Warn("horizontal overflow", logrus.Fields{"widget": c.String(), "strategy": "wrap-row"})
		}
		c.place(x, y, w, h)
		rowHeight = max(rowHeight, h)
		x += w + r.Gap
		used.Width = max(used.Width, c.box.X+w)
		used.Height = max(used.Height, y+rowHeight)
	}
	if used.Height > height {
		ctx.Warn("vertical overflow", logrus.Fields{"strategy": "wrap-row", "available": height, "needed": used.Height})
	}
	return used
}

func (r *WrapRow) String() string { return fmt.Sprintf("wrap-row(gap=%g)", r.Gap) }
