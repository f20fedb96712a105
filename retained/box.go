package retained

import "fmt"

// Size is a width and height pair.
type Size struct {
	Width, Height float32
}

// Bounds is a rectangle in surface coordinates.
type Bounds struct {
	X, Y          float32 // Top-left corner
	Width, Height float32
}

// Contains checks if a point is within the bounds.
func (b Bounds) Contains(x, y float32) bool {
	return x >= b.X && x < b.X+b.Width &&
		y >= b.Y && y < b.Y+b.Height
}

// LocalPoint converts a point to coordinates relative to the bounds origin.
func (b Bounds) LocalPoint(x, y float32) (localX, localY float32) {
	return x - b.X, y - b.Y
}

// ============================================================================
// Box Model
// ============================================================================

// BoxModel is the geometry record of a widget.
//
// The padding box is the area a widget paints its background into. Content
// sits inside the padding; the margin surrounds the padding box and is part of
// the footprint a parent lays out. After layout:
//
//	LayoutWidth  = ContentWidth + 2*Padding
//	full width   = LayoutWidth + 2*Margin
//
// X and Y locate the margin box in the parent's content coordinates.
type BoxModel struct {
	Margin  float32
	Padding float32

	// Explicit padding-box size. Has* reports whether it was set.
	Width     float32
	Height    float32
	HasWidth  bool
	HasHeight bool

	// MinWidth and MinHeight bound the intrinsic padding-box size from below.
	MinWidth  float32
	MinHeight float32

	// Intrinsic content size from the last measure pass.
	MeasuredWidth  float32
	MeasuredHeight float32

	// Proportional growth weights; 0 means fixed.
	FillWidth  float32
	FillHeight float32

	// Position assigned by the parent's layout strategy.
	X, Y float32

	// Size assigned by the last layout pass.
	LayoutWidth   float32
	LayoutHeight  float32
	ContentWidth  float32
	ContentHeight float32
}

// IntrinsicWidth returns the minimum padding-box width.
func (b *BoxModel) IntrinsicWidth() float32 {
	w := b.MeasuredWidth + 2*b.Padding
	if b.HasWidth {
		w = b.Width
	}
	return max(w, b.MinWidth, 2*b.Padding)
}

// IntrinsicHeight returns the minimum padding-box height.
func (b *BoxModel) IntrinsicHeight() float32 {
	h := b.MeasuredHeight + 2*b.Padding
	if b.HasHeight {
		h = b.Height
	}
	return max(h, b.MinHeight, 2*b.Padding)
}

// FullIntrinsicWidth returns the intrinsic width including margins.
func (b *BoxModel) FullIntrinsicWidth() float32 {
	return b.IntrinsicWidth() + 2*b.Margin
}

// FullIntrinsicHeight returns the intrinsic height including margins.
func (b *BoxModel) FullIntrinsicHeight() float32 {
	return b.IntrinsicHeight() + 2*b.Margin
}

// FullWidth returns the laid-out width including margins.
func (b *BoxModel) FullWidth() float32 {
	return b.LayoutWidth + 2*b.Margin
}

// FullHeight returns the laid-out height including margins.
func (b *BoxModel) FullHeight() float32 {
	return b.LayoutHeight + 2*b.Margin
}

// assign sets the laid-out size from a full (margin box) size handed down by
// the parent. The padding box never gets smaller than twice the padding.
func (b *BoxModel) assign(fullWidth, fullHeight float32) {
	b.LayoutWidth = max(fullWidth-2*b.Margin, 2*b.Padding)
	b.LayoutHeight = max(fullHeight-2*b.Margin, 2*b.Padding)
	b.ContentWidth = b.LayoutWidth - 2*b.Padding
	b.ContentHeight = b.LayoutHeight - 2*b.Padding
}

// PaddingBox returns the padding box in the parent's content coordinates.
func (b *BoxModel) PaddingBox() Bounds {
	return Bounds{X: b.X + b.Margin, Y: b.Y + b.Margin, Width: b.LayoutWidth, Height: b.LayoutHeight}
}

func (b *BoxModel) String() string {
	return fmt.Sprintf("pos:%g,%g margin:%g padding:%g intrinsic:%gx%g layout:%gx%g content:%gx%g",
		b.X, b.Y, b.Margin, b.Padding, b.IntrinsicWidth(), b.IntrinsicHeight(),
		b.LayoutWidth, b.LayoutHeight, b.ContentWidth, b.ContentHeight)
}
