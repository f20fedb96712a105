package retained

import (
	"sync"

	"github.com/agiangrant/simplekit/tw"
)

// styleCache caches parsed styles for repeated class strings.
// Builders reuse the same class strings across many widgets.
var (
	styleCache   = make(map[string]*tw.ComputedStyles)
	styleCacheMu sync.RWMutex
)

// resolveStyles returns cached or freshly parsed styles for a class string.
func resolveStyles(classes string) *tw.ComputedStyles {
	if classes == "" {
		return nil
	}

	styleCacheMu.RLock()
	if cached, ok := styleCache[classes]; ok {
		styleCacheMu.RUnlock()
		return cached
	}
	styleCacheMu.RUnlock()

	styleCacheMu.Lock()
	defer styleCacheMu.Unlock()

	// Double-check after acquiring write lock
	if cached, ok := styleCache[classes]; ok {
		return cached
	}

	styles := tw.ParseClasses(classes)
	styleCache[classes] = &styles
	return &styles
}

// resetStyleCache drops cached parses, e.g. after a theme change.
func resetStyleCache() {
	styleCacheMu.Lock()
	styleCache = make(map[string]*tw.ComputedStyles)
	styleCacheMu.Unlock()
}

// SetTheme registers process-wide tw theme overrides and drops cached class
// parses so widgets styled afterwards see the new palette.
func SetTheme(t tw.Theme) error {
	if err := tw.SetTheme(t); err != nil {
		return err
	}
	resetStyleCache()
	return nil
}

// Classes returns the utility-class string last passed to SetClasses.
func (w *Widget) Classes() string { return w.classes }

// SetClasses styles the widget from Tailwind-style utility classes, e.g.
// "bg-blue-500 hover:bg-blue-600 p-2 m-1 text-lg flex-1". Base classes are
// applied to the widget immediately; hover:, active: and focus: variants
// take effect while the widget is in that state.
func (w *Widget) SetClasses(classes string) *Widget {
	w.classes = classes
	w.styles = resolveStyles(classes)
	if w.styles != nil {
		w.applyStyleProperties(&w.styles.Base)
	}
	return w
}

// applyStyleProperties applies a StyleProperties to widget fields.
func (w *Widget) applyStyleProperties(props *tw.StyleProperties) {
	if props.BackgroundColor != nil {
		w.SetFillColor(*props.BackgroundColor)
	}
	if props.BorderColor != nil {
		w.SetBorderColor(*props.BorderColor)
	}
	if props.TextColor != nil {
		w.SetTextColor(*props.TextColor)
	}

	if props.Padding != nil {
		w.SetPadding(*props.Padding)
	}
	if props.Margin != nil {
		w.SetMargin(*props.Margin)
	}
	if props.Width != nil {
		w.SetWidth(*props.Width)
	}
	if props.Height != nil {
		w.SetHeight(*props.Height)
	}
	if props.MinWidth != nil || props.MinHeight != nil {
		minW, minH := w.box.MinWidth, w.box.MinHeight
		if props.MinWidth != nil {
			minW = *props.MinWidth
		}
		if props.MinHeight != nil {
			minH = *props.MinHeight
		}
		w.SetMinSize(minW, minH)
	}
	if props.FillWidth != nil || props.FillHeight != nil {
		fw, fh := w.box.FillWidth, w.box.FillHeight
		if props.FillWidth != nil {
			fw = *props.FillWidth
		}
		if props.FillHeight != nil {
			fh = *props.FillHeight
		}
		w.SetFill(fw, fh)
	}

	if props.FontSize != nil || props.FontWeight != nil || props.FontFamily != nil {
		base, err := tw.ParseFont(w.font)
		if err != nil {
			base, _ = tw.ParseFont(DefaultStyle().Font)
		}
		w.SetFont(base.Apply(*props).String())
	}

	if props.TextAlign != nil {
		switch *props.TextAlign {
		case "left":
			w.SetAlign(AlignLeft)
		case "right":
			w.SetAlign(AlignRight)
		default:
			w.SetAlign(AlignCentre)
		}
	}
}

// variantStyles returns the state variants that currently apply, most
// specific first: active while pressed, then hover, then keyboard focus.
func (w *Widget) variantStyles() []*tw.StyleProperties {
	if w.styles == nil {
		return nil
	}
	var out []*tw.StyleProperties
	if w.state == StateDown {
		out = append(out, &w.styles.Active)
	}
	if w.state != StateIdle {
		out = append(out, &w.styles.Hover)
	}
	if w.focused {
		out = append(out, &w.styles.Focus)
	}
	return out
}

// resolveFill returns the background colour to paint: a matching variant's
// colour if one is set, otherwise def.
func (w *Widget) resolveFill(def string) string {
	for _, p := range w.variantStyles() {
		if p.BackgroundColor != nil {
			return *p.BackgroundColor
		}
	}
	return def
}

// resolveBorder is resolveFill for the border colour.
func (w *Widget) resolveBorder(def string) string {
	for _, p := range w.variantStyles() {
		if p.BorderColor != nil {
			return *p.BorderColor
		}
	}
	return def
}

// resolveText returns the text colour to paint. The widget's own text colour
// wins over def.
func (w *Widget) resolveText(def string) string {
	for _, p := range w.variantStyles() {
		if p.TextColor != nil {
			return *p.TextColor
		}
	}
	if w.textColor != "" {
		return w.textColor
	}
	return def
}
