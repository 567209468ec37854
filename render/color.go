package render

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a #RRGGBB colour, falling back to fallback when hex is
// not a valid colour.
func ParseColor(hex, fallback string) color.Color {
	if c, err := colorful.Hex(hex); err == nil {
		return c
	}
	c, err := colorful.Hex(fallback)
	if err != nil {
		return color.Black
	}
	return c
}

// ValidColor reports whether hex is a #RRGGBB colour.
func ValidColor(hex string) bool {
	_, err := colorful.Hex(hex)
	return err == nil
}

// NormalizeColor returns hex in upper-case #RRGGBB form, or "" if invalid.
func NormalizeColor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return ""
	}
	return strings.ToUpper(c.Hex())
}
