// Package textmeasure provides text measurers for the layout engine: an
// OpenType measurer backed by the Go fonts and a fixed-cell measurer for
// terminal-like or test surfaces.
package textmeasure

import (
	"strings"
	"sync"

	"github.com/agiangrant/simplekit/tw"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultCacheSize is the number of measurements a FaceMeasurer keeps.
const DefaultCacheSize = 10000

type faceKey struct {
	ttf  string
	size float32
}

// FaceMeasurer measures text with OpenType faces. CSS families map onto the
// Go fonts: monospace families use Go Mono, everything else Go Regular, with
// bold and italic variants picked from the weight and style.
//
// A FaceMeasurer is safe for concurrent use.
type FaceMeasurer struct {
	mu    sync.Mutex
	fonts map[string]*opentype.Font
	faces map[faceKey]font.Face
	cache *sizeCache
}

// NewFaceMeasurer creates a measurer with an LRU cache of the given size.
// A size below 1 uses DefaultCacheSize.
func NewFaceMeasurer(cacheSize int) *FaceMeasurer {
	if cacheSize < 1 {
		cacheSize = DefaultCacheSize
	}
	return &FaceMeasurer{
		fonts: make(map[string]*opentype.Font),
		faces: make(map[faceKey]font.Face),
		cache: newSizeCache(cacheSize),
	}
}

var ttfs = map[string][]byte{
	"regular":        goregular.TTF,
	"bold":           gobold.TTF,
	"italic":         goitalic.TTF,
	"bolditalic":     gobolditalic.TTF,
	"mono":           gomono.TTF,
	"monobold":       gomonobold.TTF,
	"monoitalic":     gomonoitalic.TTF,
	"monobolditalic": gomonobolditalic.TTF,
}

// ttfName picks the Go font file for a parsed CSS font.
func ttfName(f tw.Font) string {
	var name string
	family := strings.ToLower(f.Family)
	if strings.Contains(family, "mono") || strings.Contains(family, "courier") {
		name = "mono"
	}
	if f.Weight >= 600 {
		name += "bold"
	}
	if f.Italic {
		name += "italic"
	}
	if name == "" {
		return "regular"
	}
	return name
}

// Face returns the font face for a CSS font string. Sizes are in pixels,
// so faces are created at 72dpi. Faces are shared and must only be used
// while no other goroutine measures with this FaceMeasurer.
func (m *FaceMeasurer) Face(cssFont string) (font.Face, error) {
	f, err := tw.ParseFont(cssFont)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.face(f)
}

// face must be called with m.mu held.
func (m *FaceMeasurer) face(f tw.Font) (font.Face, error) {
	key := faceKey{ttf: ttfName(f), size: f.Size}
	if face, ok := m.faces[key]; ok {
		return face, nil
	}

	otf, ok := m.fonts[key.ttf]
	if !ok {
		var err error
		otf, err = opentype.Parse(ttfs[key.ttf])
		if err != nil {
			return nil, errors.Wrapf(err, "parse font %s", key.ttf)
		}
		m.fonts[key.ttf] = otf
	}

	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    float64(f.Size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "face %s %gpx", key.ttf, f.Size)
	}
	m.faces[key] = face
	return face, nil
}

// MeasureText implements retained.TextMeasurer. Each newline starts a new
// line; the width is that of the widest line.
func (m *FaceMeasurer) MeasureText(text, cssFont string) (width, height float32, ok bool) {
	key := cacheKey{font: cssFont, text: text}
	if w, h, ok := m.cache.get(key); ok {
		return w, h, true
	}

	f, err := tw.ParseFont(cssFont)
	if err != nil {
		return 0, 0, false
	}

	m.mu.Lock()
	face, err := m.face(f)
	if err != nil {
		m.mu.Unlock()
		return 0, 0, false
	}
	var widest fixed.Int26_6
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		if adv := font.MeasureString(face, line); adv > widest {
			widest = adv
		}
	}
	lineHeight := face.Metrics().Height
	m.mu.Unlock()

	width = fixedToFloat(widest)
	height = fixedToFloat(lineHeight) * float32(len(lines))
	m.cache.put(key, width, height)
	return width, height, true
}

// ClearCache drops all cached measurements.
func (m *FaceMeasurer) ClearCache() {
	m.cache.clear()
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
