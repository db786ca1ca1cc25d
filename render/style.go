package render

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// styleValue extracts one property value from an inline style attribute,
// e.g. styleValue("fill:none;stroke:#000000", "stroke") returns "#000000".
func styleValue(style, key string) (string, bool) {
	for _, decl := range strings.Split(style, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if strings.TrimSpace(k) == key {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

// parseColor parses a #rgb or #rrggbb hex color or an SVG named color.
// It reports false for "none", the empty string, and anything unparseable.
func parseColor(s string) (color.RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" {
		return color.RGBA{}, false
	}
	if h, ok := strings.CutPrefix(s, "#"); ok {
		return parseHexColor(h)
	}
	if c, ok := colornames.Map[s]; ok {
		return c, true
	}
	return color.RGBA{}, false
}

func parseHexColor(hex string) (color.RGBA, bool) {
	switch len(hex) {
	case 3:
		var expanded [6]byte
		for i := 0; i < 3; i++ {
			expanded[2*i] = hex[i]
			expanded[2*i+1] = hex[i]
		}
		hex = string(expanded[:])
	case 6:
		// Already the full form.
	default:
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, true
}

// parseNumber parses a numeric style value, tolerating a trailing unit
// such as "3px".
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
