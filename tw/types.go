package tw

// State represents widget interaction state
type State int

const (
	StateDefault State = iota
	StateHover
	StateFocus
	StateActive
)

// StyleProperties represents concrete style values. A nil field was not
// set by any class.
type StyleProperties struct {
	// Colors, as CSS colour strings ("#3b82f6", "white")
	TextColor       *string
	BackgroundColor *string
	BorderColor     *string

	// Typography
	FontFamily *string // "sans", "serif", "mono", or custom name from the theme
	FontSize   *float32
	FontWeight *int
	TextAlign  *string // "left", "center", "right"

	// Spacing, uniform on all four sides
	Padding *float32
	Margin  *float32

	// Sizing
	Width     *float32
	Height    *float32
	MinWidth  *float32
	MinHeight *float32

	// Fill weights for Fill-Row children
	FillWidth  *float32
	FillHeight *float32
}

// IsZero reports whether no property is set.
func (s StyleProperties) IsZero() bool {
	return s == StyleProperties{}
}

// ComputedStyles represents styles organized by state
type ComputedStyles struct {
	// Base styles (always apply)
	Base StyleProperties

	// State variants
	Hover  StyleProperties
	Focus  StyleProperties
	Active StyleProperties
}

// ParsedClass represents a class with its variant modifiers
type ParsedClass struct {
	State          State
	BaseClass      string
	ArbitraryValue *ArbitraryValue // For arbitrary values like w-[120px]
	Unsupported    bool            // variant the toolkit has no bucket for (dark:, md:, ...)
}

// ArbitraryValue represents a runtime-parsed arbitrary value
type ArbitraryValue struct {
	Property string // e.g., "w", "bg", "text"
	Value    string // e.g., "120px", "#1da1f2", "22px"
}

// Merge merges p into these StyleProperties.
// Later values override earlier ones (last class wins)
func (s *StyleProperties) Merge(p StyleProperties) {
	if p.TextColor != nil {
		s.TextColor = p.TextColor
	}
	if p.BackgroundColor != nil {
		s.BackgroundColor = p.BackgroundColor
	}
	if p.BorderColor != nil {
		s.BorderColor = p.BorderColor
	}
	if p.FontFamily != nil {
		s.FontFamily = p.FontFamily
	}
	if p.FontSize != nil {
		s.FontSize = p.FontSize
	}
	if p.FontWeight != nil {
		s.FontWeight = p.FontWeight
	}
	if p.TextAlign != nil {
		s.TextAlign = p.TextAlign
	}
	if p.Padding != nil {
		s.Padding = p.Padding
	}
	if p.Margin != nil {
		s.Margin = p.Margin
	}
	if p.Width != nil {
		s.Width = p.Width
	}
	if p.Height != nil {
		s.Height = p.Height
	}
	if p.MinWidth != nil {
		s.MinWidth = p.MinWidth
	}
	if p.MinHeight != nil {
		s.MinHeight = p.MinHeight
	}
	if p.FillWidth != nil {
		s.FillWidth = p.FillWidth
	}
	if p.FillHeight != nil {
		s.FillHeight = p.FillHeight
	}
}

func strPtr(s string) *string   { return &s }
func f32Ptr(f float32) *float32 { return &f }
func intPtr(i int) *int         { return &i }
