package turtle

import (
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// penColors is the fixed named-color table accepted by SetPenColor.
var penColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#00ff00",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
}

// Glyph colors.
var (
	glyphFill    = gg.Hex("#4CAF50")
	glyphFillAlt = gg.Hex("#45a049")
	glyphOutline = gg.Hex("#2e7d32")
)

// PenColorValue maps a SETPC argument to the stored pen color string.
// Names from the fixed table become their hex value; anything else is
// passed through unchanged. An empty name yields DefaultPenColor.
func PenColorValue(name string) string {
	if hex, ok := penColors[strings.ToLower(name)]; ok {
		return hex
	}
	if name == "" {
		return DefaultPenColor
	}
	return name
}

// resolveColor turns a stored color string into something drawable.
// It reports false when the string is neither a valid hex color nor a
// CSS color name.
func resolveColor(s string) (gg.RGBA, bool) {
	if strings.HasPrefix(s, "#") {
		if !isHex(s[1:]) {
			return gg.RGBA{}, false
		}
		return gg.Hex(s), true
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return gg.FromColor(c), true
	}
	return gg.RGBA{}, false
}

// isHex reports whether s is a 3, 4, 6 or 8 digit hex string, the lengths
// gg.Hex understands.
func isHex(s string) bool {
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}
