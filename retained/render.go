package retained

// Surface is the drawing target supplied by the renderer. Coordinates are
// relative to the current origin, which Translate moves and Save/Restore
// push and pop.
type Surface interface {
	Save()
	Restore()
	Translate(dx, dy float32)
	FillRect(x, y, width, height float32, colour string)
	StrokeRect(x, y, width, height float32, colour string, lineWidth float32)
	// FillText draws text vertically centred on y, anchored at x by align.
	FillText(text string, x, y float32, font, colour string, align TextAlign)
}

// Draw paints the widget and its subtree back to front. The surface origin is
// moved by the widget's position, margin and padding before the widget
// paints, so paint logic works in content-box coordinates.
func (w *Widget) Draw(s Surface, debug bool) {
	s.Save()
	defer s.Restore()

	s.Translate(w.box.X+w.box.Margin+w.box.Padding, w.box.Y+w.box.Margin+w.box.Padding)
	if w.paint != nil {
		w.paint(w, s)
	} else {
		w.paintDefault(s)
	}
	if debug || w.debug {
		w.drawBoxModel(s)
	}
	for _, c := range w.children {
		c.Draw(s, debug)
	}
}

// paintDefault paints the built-in kinds. The origin is the content box; the
// padding box starts at (-padding, -padding).
func (w *Widget) paintDefault(s Surface) {
	p := w.box.Padding
	pw, ph := w.box.LayoutWidth, w.box.LayoutHeight
	cw, ch := w.box.ContentWidth, w.box.ContentHeight
	st := currentStyle

	switch w.kind {
	case KindContainer, KindLabel, KindCustom:
		w.paintBackground(s, w.fill)
		if w.kind == KindLabel {
			w.paintText(s, w.text, cw, ch)
		}

	case KindButton:
		fill := w.fill
		if fill == "" {
			fill = st.DefaultColour
		}
		if w.state == StateDown {
			fill = st.HighlightColour
		}
		if w.state != StateIdle {
			s.StrokeRect(-p-2, -p-2, pw+4, ph+4, st.HighlightColour, 4)
		}
		s.FillRect(-p, -p, pw, ph, w.resolveFill(fill))
		lineWidth := float32(2)
		if w.state == StateDown {
			lineWidth = 4
		}
		s.StrokeRect(-p, -p, pw, ph, w.resolveBorder(orDefault(w.border, "black")), lineWidth)
		w.paintText(s, w.text, cw, ch)

	case KindTextfield:
		if w.state == StateHover {
			s.StrokeRect(-p-2, -p-2, pw+4, ph+4, st.HighlightColour, 4)
		}
		s.FillRect(-p, -p, pw, ph, w.resolveFill(orDefault(w.fill, "white")))
		border := orDefault(w.border, "black")
		if w.focused {
			border = st.FocusColour
		}
		s.StrokeRect(-p, -p, pw, ph, w.resolveBorder(border), 1)
		w.paintText(s, w.buffer.Text(), cw, ch)
		if w.focused {
			s.FillRect(w.cursorX, 0, 1, ch, w.resolveText("black"))
		}

	case KindSlider:
		w.paintBackground(s, w.fill)
		s.FillRect(0, ch/2-2, cw, 4, st.DefaultColour)
		thumb := st.DefaultColour
		if w.state != StateIdle {
			thumb = st.HighlightColour
		}
		s.FillRect(w.thumbX(), 0, sliderThumbWidth, ch, thumb)
		border := "black"
		if w.focused {
			border = st.FocusColour
		}
		s.StrokeRect(w.thumbX(), 0, sliderThumbWidth, ch, border, 1)

	case KindCheckbox:
		w.paintBackground(s, w.fill)
		top := ch/2 - checkboxSize/2
		box := "white"
		if w.state == StateHover {
			box = st.HighlightColour
		}
		s.FillRect(0, top, checkboxSize, checkboxSize, box)
		s.StrokeRect(0, top, checkboxSize, checkboxSize, "black", 1)
		if w.checked {
			s.FillRect(4, top+4, checkboxSize-8, checkboxSize-8, "black")
		}
		if w.text != "" {
			s.FillText(w.text, checkboxSize+p, ch/2, w.font, w.resolveText("black"), AlignLeft)
		}
	}
}

func (w *Widget) paintBackground(s Surface, fill string) {
	p := w.box.Padding
	if fill = w.resolveFill(fill); fill != "" {
		s.FillRect(-p, -p, w.box.LayoutWidth, w.box.LayoutHeight, fill)
	}
	if border := w.resolveBorder(w.border); border != "" {
		s.StrokeRect(-p, -p, w.box.LayoutWidth, w.box.LayoutHeight, border, 1)
	}
}

func (w *Widget) paintText(s Surface, text string, cw, ch float32) {
	colour := w.resolveText("black")
	switch w.align {
	case AlignLeft:
		s.FillText(text, 0, ch/2, w.font, colour, AlignLeft)
	case AlignRight:
		s.FillText(text, cw, ch/2, w.font, colour, AlignRight)
	default:
		s.FillText(text, cw/2, ch/2, w.font, colour, AlignCentre)
	}
}

// drawBoxModel outlines the margin, padding and content boxes and prints the
// widget tag. The origin is the content box.
func (w *Widget) drawBoxModel(s Surface) {
	m, p := w.box.Margin, w.box.Padding
	if m > 0 {
		s.StrokeRect(-p-m, -p-m, w.box.FullWidth(), w.box.FullHeight(), "red", 1)
	}
	if p > 0 {
		s.StrokeRect(-p, -p, w.box.LayoutWidth, w.box.LayoutHeight, "green", 1)
	}
	s.StrokeRect(0, 0, w.box.ContentWidth, w.box.ContentHeight, "blue", 1)
	if w.tag != "" {
		s.FillText(w.tag, -p-m+2, -p-m+6, "7pt sans-serif", "black", AlignLeft)
	}
}

func orDefault(colour, def string) string {
	if colour == "" {
		return def
	}
	return colour
}
