package retained

import (
	"fmt"
	"strings"
)

// Dump renders the tree's geometry as an indented listing, one widget per
// line, for debugging and golden tests.
//
//	container#root [0,0 800x600] fixed
//	  button "OK" [10,10 80x29] m=0 p=5
func Dump(root *Widget) string {
	var b strings.Builder
	dumpWidget(&b, root, 0)
	return b.String()
}

func dumpWidget(b *strings.Builder, w *Widget, depth int) {
	if w == nil {
		return
	}
	bx := w.box
	fmt.Fprintf(b, "%s%s [%g,%g %gx%g]", strings.Repeat("  ", depth), w,
		w.bounds.X, w.bounds.Y, bx.LayoutWidth, bx.LayoutHeight)
	if bx.Margin != 0 || bx.Padding != 0 {
		fmt.Fprintf(b, " m=%g p=%g", bx.Margin, bx.Padding)
	}
	if bx.FillWidth != 0 || bx.FillHeight != 0 {
		fmt.Fprintf(b, " fill=%g,%g", bx.FillWidth, bx.FillHeight)
	}
	if w.kind == KindContainer {
		fmt.Fprintf(b, " %v", w.layout)
	}
	b.WriteByte('\n')
	for _, c := range w.children {
		dumpWidget(b, c, depth+1)
	}
}
