package tw

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Font is a parsed CSS font shorthand such as "italic bold 12pt sans-serif".
type Font struct {
	Italic bool
	Weight int     // 100..900, 400 is normal
	Size   float32 // pixels
	Family string
}

// ParseFont parses the subset of the CSS font shorthand widgets use:
// optional style and weight keywords, a size in px or pt, then a family.
// Point sizes are converted at 96dpi (1pt = 4/3 px).
func ParseFont(s string) (Font, error) {
	f := Font{Weight: 400}
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return f, errors.New("empty font")
	}

	i := 0
	for ; i < len(fields); i++ {
		word := strings.ToLower(fields[i])
		switch {
		case word == "italic" || word == "oblique":
			f.Italic = true
			continue
		case word == "normal":
			continue
		case word == "bold":
			f.Weight = 700
			continue
		case word == "lighter":
			f.Weight = 300
			continue
		case word == "bolder":
			f.Weight = 900
			continue
		}
		if w, err := strconv.Atoi(word); err == nil && w >= 100 && w <= 900 {
			f.Weight = w
			continue
		}
		break
	}
	if i == len(fields) {
		return f, errors.Errorf("font %q: missing size", s)
	}

	// "12px/1.5" carries a line height we do not use.
	sizeStr, _, _ := strings.Cut(fields[i], "/")
	size := parseDimension(sizeStr)
	if size == nil || *size <= 0 {
		return f, errors.Errorf("font %q: invalid size %q", s, fields[i])
	}
	f.Size = *size

	f.Family = strings.Trim(strings.Join(fields[i+1:], " "), `"'`)
	if f.Family == "" {
		return f, errors.Errorf("font %q: missing family", s)
	}
	return f, nil
}

// String formats the font back into CSS shorthand with a pixel size.
func (f Font) String() string {
	var b strings.Builder
	if f.Italic {
		b.WriteString("italic ")
	}
	if f.Weight != 0 && f.Weight != 400 {
		fmt.Fprintf(&b, "%d ", f.Weight)
	}
	fmt.Fprintf(&b, "%spx %s", strconv.FormatFloat(float64(f.Size), 'f', -1, 32), f.Family)
	return b.String()
}

// Apply overlays the typography of p onto f.
func (f Font) Apply(p StyleProperties) Font {
	if p.FontSize != nil {
		f.Size = *p.FontSize
	}
	if p.FontWeight != nil {
		f.Weight = *p.FontWeight
	}
	if p.FontFamily != nil {
		f.Family = FontFamily(*p.FontFamily)
	}
	return f
}
