package tw

import (
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Theme extends the built-in palette and font families.
//
//	[colors]
//	brand = "#1da1f2"
//
//	[fonts]
//	display = "monospace"
//
// With that theme "bg-brand" and "font-display" become valid classes.
type Theme struct {
	Colors map[string]string `toml:"colors"`
	Fonts  map[string]string `toml:"fonts"`
}

var defaultFamilies = map[string]string{
	"sans":  "sans-serif",
	"serif": "serif",
	"mono":  "monospace",
}

var (
	themeMu      sync.RWMutex
	currentTheme Theme
)

// SetTheme registers theme overrides. It should be called at startup
// before any classes are parsed; widgets keep the styles they resolved
// before the call.
func SetTheme(t Theme) error {
	for name, value := range t.Colors {
		if _, ok := ParseColor(value); !ok {
			return errors.Errorf("theme colour %q: invalid value %q", name, value)
		}
	}
	themeMu.Lock()
	currentTheme = t
	themeMu.Unlock()
	return nil
}

// CurrentTheme returns the registered theme.
func CurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// DecodeTheme reads a theme from TOML.
func DecodeTheme(data []byte) (Theme, error) {
	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return Theme{}, errors.Wrap(err, "decode theme")
	}
	return t, nil
}

// FontFamily returns the CSS family for a class family name: "sans",
// "serif", "mono" or a theme font. Unknown names are returned unchanged.
func FontFamily(name string) string {
	if family, ok := lookupFamily(name); ok {
		return family
	}
	return name
}

func lookupFamily(name string) (string, bool) {
	if family, ok := CurrentTheme().Fonts[name]; ok {
		return family, true
	}
	family, ok := defaultFamilies[name]
	return family, ok
}
