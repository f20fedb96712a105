package tw

import (
	"image/color"
	"strconv"
	"strings"
)

// palette holds the Tailwind colour scales the toolkit ships with.
var palette = map[string][10]string{
	"slate":  {"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a"},
	"gray":   {"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280", "#4b5563", "#374151", "#1f2937", "#111827"},
	"red":    {"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d"},
	"yellow": {"#fefce8", "#fef9c3", "#fef08a", "#fde047", "#facc15", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12"},
	"green":  {"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d"},
	"sky":    {"#f0f9ff", "#e0f2fe", "#bae6fd", "#7dd3fc", "#38bdf8", "#0ea5e9", "#0284c7", "#0369a1", "#075985", "#0c4a6e"},
	"blue":   {"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a"},
}

// shades maps a Tailwind shade suffix to its palette index.
var shades = map[string]int{
	"50": 0, "100": 1, "200": 2, "300": 3, "400": 4,
	"500": 5, "600": 6, "700": 7, "800": 8, "900": 9,
}

// namedColors is the subset of CSS named colours widgets commonly use.
var namedColors = map[string]string{
	"black":        "#000000",
	"white":        "#ffffff",
	"red":          "#ff0000",
	"green":        "#008000",
	"blue":         "#0000ff",
	"yellow":       "#ffff00",
	"orange":       "#ffa500",
	"purple":       "#800080",
	"navy":         "#000080",
	"teal":         "#008080",
	"gray":         "#808080",
	"grey":         "#808080",
	"silver":       "#c0c0c0",
	"darkgray":     "#a9a9a9",
	"darkgrey":     "#a9a9a9",
	"lightgray":    "#d3d3d3",
	"lightgrey":    "#d3d3d3",
	"gainsboro":    "#dcdcdc",
	"whitesmoke":   "#f5f5f5",
	"skyblue":      "#87ceeb",
	"lightskyblue": "#87cefa",
	"lightblue":    "#add8e6",
	"mediumblue":   "#0000cd",
	"darkblue":     "#00008b",
	"pink":         "#ffc0cb",
	"gold":         "#ffd700",
	"beige":        "#f5f5dc",
	"lightgreen":   "#90ee90",
	"maroon":       "#800000",
	"olive":        "#808000",
	"cyan":         "#00ffff",
	"magenta":      "#ff00ff",
}

// paletteHex resolves a class colour suffix ("blue-500", "white", or a
// theme colour name) to a hex string.
func paletteHex(name string) (string, bool) {
	if c, ok := CurrentTheme().Colors[name]; ok {
		return c, true
	}
	if name == "white" || name == "black" {
		return namedColors[name], true
	}
	scale, shade, ok := strings.Cut(name, "-")
	if !ok {
		return "", false
	}
	colors, ok := palette[scale]
	if !ok {
		return "", false
	}
	i, ok := shades[shade]
	if !ok {
		return "", false
	}
	return colors[i], true
}

// ParseColor parses a CSS colour string: #rgb, #rrggbb, #rrggbbaa,
// rgb()/rgba(), CSS names, Tailwind palette names ("blue-500") and
// "transparent".
func ParseColor(value string) (color.RGBA, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return color.RGBA{}, false
	}
	if value == "transparent" {
		return color.RGBA{}, true
	}

	if strings.HasPrefix(value, "#") {
		return parseHex(value[1:])
	}
	if strings.HasPrefix(value, "rgb") {
		return parseRGBFunc(value)
	}
	if hex, ok := namedColors[value]; ok {
		return parseHex(hex[1:])
	}
	if hex, ok := paletteHex(value); ok {
		if hex == value {
			return color.RGBA{}, false
		}
		return ParseColor(hex)
	}
	return color.RGBA{}, false
}

func parseHex(hex string) (color.RGBA, bool) {
	// Expand shorthand: #RGB → #RRGGBB
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, true
}

// parseRGBFunc parses rgb(r, g, b) and rgba(r, g, b, a) with a in [0,1].
func parseRGBFunc(value string) (color.RGBA, bool) {
	open := strings.Index(value, "(")
	if open < 0 || !strings.HasSuffix(value, ")") {
		return color.RGBA{}, false
	}
	parts := strings.Split(value[open+1:len(value)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.RGBA{}, false
	}
	var c [4]uint8
	c[3] = 255
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return color.RGBA{}, false
		}
		if i == 3 {
			f *= 255
		}
		if f < 0 {
			f = 0
		}
		if f > 255 {
			f = 255
		}
		c[i] = uint8(f + 0.5)
	}
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}, true
}
