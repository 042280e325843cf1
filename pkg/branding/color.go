// Package branding holds the brand color palette and the color helpers
// charts use to keep bar labels legible.
package branding

import (
	"math"
	"strconv"
	"strings"
)

// Brand palette.
const (
	Navy    = "#0B1F3A"
	Slate   = "#2F3C48"
	Mist    = "#F4F6FA"
	Cloud   = "#E8ECF3"
	Gold    = "#C9A227"
	Sky     = "#4D7EA8"
	Teal    = "#6AA5A9"
	Crimson = "#B03038"
	White   = "#FFFFFF"
)

// Colorway is the default trace color cycle.
var Colorway = []string{Navy, Sky, "#8FAACF", Teal, Gold, "#7B8C9E"}

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// ParseHex converts a 3- or 6-digit hex color string (with or without a
// leading #) to an RGB value. The second return value reports whether the
// string was parseable.
func ParseHex(color string) (RGB, bool) {
	cleaned := strings.TrimPrefix(strings.TrimSpace(color), "#")
	if len(cleaned) == 3 {
		var b strings.Builder
		for _, ch := range cleaned {
			b.WriteRune(ch)
			b.WriteRune(ch)
		}
		cleaned = b.String()
	}
	if len(cleaned) != 6 {
		return RGB{}, false
	}
	value, err := strconv.ParseUint(cleaned, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
	}, true
}

// ContrastingTextColor returns a text color (white or navy) that contrasts
// with the given fill color. Unparseable input yields navy.
func ContrastingTextColor(color string) string {
	rgb, ok := ParseHex(color)
	if !ok {
		return Navy
	}

	luminance := 0.2126*toLinear(rgb.R) + 0.7152*toLinear(rgb.G) + 0.0722*toLinear(rgb.B)
	if luminance < 0.55 {
		return White
	}
	return Navy
}

// toLinear applies the sRGB piecewise transform to a single channel.
func toLinear(channel uint8) float64 {
	c := float64(channel) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}
