package retained

// Style holds the toolkit-wide look of the built-in widgets.
type Style struct {
	Font            string  `toml:"font"`
	TextPadding     float32 `toml:"text_padding"`
	WidgetHeight    float32 `toml:"widget_height"`
	DefaultColour   string  `toml:"default_colour"`
	HighlightColour string  `toml:"highlight_colour"`
	FocusColour     string  `toml:"focus_colour"`
	MinElementSize  float32 `toml:"min_element_size"`
}

// DefaultStyle returns the stock style.
func DefaultStyle() Style {
	return Style{
		Font:            "12pt sans-serif",
		TextPadding:     5,
		WidgetHeight:    32,
		DefaultColour:   "lightgrey",
		HighlightColour: "lightskyblue",
		FocusColour:     "mediumblue",
		MinElementSize:  32,
	}
}

var currentStyle = DefaultStyle()

// SetStyle replaces the style used by widgets created afterwards and by
// painting. The style is process-wide, shared by every Toolkit. Empty fields
// keep their defaults.
func SetStyle(s Style) {
	d := DefaultStyle()
	if s.Font == "" {
		s.Font = d.Font
	}
	if s.TextPadding == 0 {
		s.TextPadding = d.TextPadding
	}
	if s.WidgetHeight == 0 {
		s.WidgetHeight = d.WidgetHeight
	}
	if s.DefaultColour == "" {
		s.DefaultColour = d.DefaultColour
	}
	if s.HighlightColour == "" {
		s.HighlightColour = d.HighlightColour
	}
	if s.FocusColour == "" {
		s.FocusColour = d.FocusColour
	}
	if s.MinElementSize == 0 {
		s.MinElementSize = d.MinElementSize
	}
	currentStyle = s
}

// CurrentStyle returns the style in effect.
func CurrentStyle() Style { return currentStyle }
