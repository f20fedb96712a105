package tw

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClasses parses a Tailwind class string and returns computed styles
// Example: "bg-blue-500 hover:bg-blue-600 p-2 flex-1 w-[120px]"
func ParseClasses(classStr string) ComputedStyles {
	var computed ComputedStyles

	for _, class := range strings.Fields(classStr) {
		parsed := parseClass(class)
		if parsed.Unsupported {
			continue
		}

		var partial StyleProperties
		if parsed.ArbitraryValue != nil {
			partial = parseArbitraryValue(parsed.ArbitraryValue)
		} else {
			var ok bool
			partial, ok = lookupClass(parsed.BaseClass)
			if !ok {
				// Unknown class, silently ignore (like Tailwind CSS)
				continue
			}
		}

		target := getTargetProperties(&computed, parsed)
		target.Merge(partial)
	}

	return computed
}

// parseClass splits a class into variant modifiers and base utility
// "hover:bg-blue-500" → ParsedClass{State: Hover, BaseClass: "bg-blue-500"}
// "w-[120px]" → ParsedClass{ArbitraryValue: {Property: "w", Value: "120px"}}
func parseClass(class string) ParsedClass {
	parts := strings.Split(class, ":")

	pc := ParsedClass{
		State:     StateDefault,
		BaseClass: parts[len(parts)-1], // Last part is always the base utility
	}

	for i := 0; i < len(parts)-1; i++ {
		switch parts[i] {
		case "hover":
			pc.State = StateHover
		case "focus":
			pc.State = StateFocus
		case "active":
			pc.State = StateActive
		default:
			pc.Unsupported = true
		}
	}

	if strings.Contains(pc.BaseClass, "[") && strings.HasSuffix(pc.BaseClass, "]") {
		pc.ArbitraryValue = extractArbitraryValue(pc.BaseClass)
		pc.BaseClass = ""
	}

	return pc
}

// extractArbitraryValue parses arbitrary value syntax
// "w-[33px]" → ArbitraryValue{Property: "w", Value: "33px"}
// "bg-[#1da1f2]" → ArbitraryValue{Property: "bg", Value: "#1da1f2"}
func extractArbitraryValue(class string) *ArbitraryValue {
	bracketIdx := strings.Index(class, "[")
	if bracketIdx == -1 {
		return nil
	}

	property := strings.TrimSuffix(class[:bracketIdx], "-")
	value := strings.TrimSuffix(class[bracketIdx+1:], "]")
	// Tailwind uses underscores for spaces inside brackets
	value = strings.ReplaceAll(value, "_", " ")

	return &ArbitraryValue{
		Property: property,
		Value:    value,
	}
}

// parseArbitraryValue converts arbitrary value to StyleProperties at runtime
func parseArbitraryValue(arb *ArbitraryValue) StyleProperties {
	var partial StyleProperties

	switch arb.Property {
	case "w":
		partial.Width = parseDimension(arb.Value)
	case "h":
		partial.Height = parseDimension(arb.Value)
	case "min-w":
		partial.MinWidth = parseDimension(arb.Value)
	case "min-h":
		partial.MinHeight = parseDimension(arb.Value)
	case "p":
		partial.Padding = parseDimension(arb.Value)
	case "m":
		partial.Margin = parseDimension(arb.Value)
	case "flex", "grow":
		partial.FillWidth = parseFloat(arb.Value)

	case "bg":
		partial.BackgroundColor = parseColor(arb.Value)
	case "border":
		partial.BorderColor = parseColor(arb.Value)
	case "text":
		// text-[#fff] is a colour, text-[22px] a font size
		if c := parseColor(arb.Value); c != nil {
			partial.TextColor = c
		} else {
			partial.FontSize = parseDimension(arb.Value)
		}
	case "font":
		if w := parseInt(arb.Value); w != nil {
			partial.FontWeight = w
		} else {
			partial.FontFamily = strPtr(arb.Value)
		}
	}

	return partial
}

// lookupClass resolves a plain utility class. Spacing, sizing and colour
// classes are computed from their suffix rather than enumerated.
func lookupClass(class string) (StyleProperties, bool) {
	var partial StyleProperties

	if p, ok := staticClasses[class]; ok {
		return p, true
	}

	prefix, rest, found := strings.Cut(class, "-")
	if !found {
		return partial, false
	}

	switch prefix {
	case "p", "m", "w", "h":
		v := spacing(rest)
		if v == nil {
			return partial, false
		}
		switch prefix {
		case "p":
			partial.Padding = v
		case "m":
			partial.Margin = v
		case "w":
			partial.Width = v
		case "h":
			partial.Height = v
		}
		return partial, true

	case "min":
		// min-w-8, min-h-8
		axis, n, ok := strings.Cut(rest, "-")
		v := spacing(n)
		if !ok || v == nil {
			return partial, false
		}
		switch axis {
		case "w":
			partial.MinWidth = v
		case "h":
			partial.MinHeight = v
		default:
			return partial, false
		}
		return partial, true

	case "bg":
		if c, ok := paletteHex(rest); ok {
			partial.BackgroundColor = strPtr(c)
			return partial, true
		}
	case "border":
		if c, ok := paletteHex(rest); ok {
			partial.BorderColor = strPtr(c)
			return partial, true
		}
	case "text":
		if size, ok := fontSizes[rest]; ok {
			partial.FontSize = f32Ptr(size)
			return partial, true
		}
		if c, ok := paletteHex(rest); ok {
			partial.TextColor = strPtr(c)
			return partial, true
		}
	case "font":
		if weight, ok := fontWeights[rest]; ok {
			partial.FontWeight = intPtr(weight)
			return partial, true
		}
		if _, ok := lookupFamily(rest); ok {
			partial.FontFamily = strPtr(rest)
			return partial, true
		}
	case "flex", "grow":
		// flex-2, grow-0
		if v := parseFloat(rest); v != nil {
			partial.FillWidth = v
			return partial, true
		}
	}

	return partial, false
}

// spacing converts a Tailwind spacing step to pixels: one step is 4px,
// "px" is a single pixel and fractional steps like "0.5" are allowed.
func spacing(step string) *float32 {
	if step == "px" {
		return f32Ptr(1)
	}
	f, err := strconv.ParseFloat(step, 32)
	if err != nil || f < 0 {
		return nil
	}
	return f32Ptr(float32(f) * 4)
}

var staticClasses = map[string]StyleProperties{
	"flex-1":         {FillWidth: f32Ptr(1)},
	"flex-none":      {FillWidth: f32Ptr(0)},
	"grow":           {FillWidth: f32Ptr(1)},
	"w-full":         {FillWidth: f32Ptr(1)},
	"h-full":         {FillHeight: f32Ptr(1)},
	"self-stretch":   {FillHeight: f32Ptr(1)},
	"text-left":      {TextAlign: strPtr("left")},
	"text-center":    {TextAlign: strPtr("center")},
	"text-right":     {TextAlign: strPtr("right")},
	"bg-transparent": {BackgroundColor: strPtr("transparent")},
}

var fontSizes = map[string]float32{
	"xs":   12,
	"sm":   14,
	"base": 16,
	"lg":   18,
	"xl":   20,
	"2xl":  24,
	"3xl":  30,
	"4xl":  36,
}

var fontWeights = map[string]int{
	"thin":     100,
	"light":    300,
	"normal":   400,
	"medium":   500,
	"semibold": 600,
	"bold":     700,
	"black":    900,
}

// parseDimension parses CSS dimension values (px, rem, em, pt)
func parseDimension(value string) *float32 {
	value = strings.TrimSpace(value)

	var numStr string
	var multiplier, divisor float32 = 1.0, 1.0

	switch {
	case strings.HasSuffix(value, "px"):
		numStr = strings.TrimSuffix(value, "px")
	case strings.HasSuffix(value, "rem"):
		numStr = strings.TrimSuffix(value, "rem")
		multiplier = 16.0 // 1rem = 16px
	case strings.HasSuffix(value, "em"):
		numStr = strings.TrimSuffix(value, "em")
		multiplier = 16.0
	case strings.HasSuffix(value, "pt"):
		numStr = strings.TrimSuffix(value, "pt")
		multiplier, divisor = 4.0, 3.0 // 96dpi
	default:
		numStr = value
	}

	var num float32
	if _, err := fmt.Sscanf(numStr, "%f", &num); err == nil {
		result := num * multiplier / divisor
		return &result
	}

	return nil
}

// parseColor validates a colour value and returns it as written.
func parseColor(value string) *string {
	value = strings.TrimSpace(value)
	if _, ok := ParseColor(value); !ok {
		return nil
	}
	return &value
}

func parseFloat(value string) *float32 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 32)
	if err != nil {
		return nil
	}
	return f32Ptr(float32(f))
}

func parseInt(value string) *int {
	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil
	}
	return &i
}

// getTargetProperties returns the appropriate StyleProperties to apply to
func getTargetProperties(computed *ComputedStyles, parsed ParsedClass) *StyleProperties {
	switch parsed.State {
	case StateHover:
		return &computed.Hover
	case StateFocus:
		return &computed.Focus
	case StateActive:
		return &computed.Active
	default:
		return &computed.Base
	}
}
