package tokens

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	oneThird = 1.0 / 3.0
	oneSixth = 1.0 / 6.0
	twoThird = 2.0 / 3.0
)

var hslRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s+(\d+(?:\.\d+)?)%\s+(\d+(?:\.\d+)?)%`)

// HSL is a color in the space-separated form used by shadcn-style stylesheets:
// hue in degrees, saturation and lightness in percent.
type HSL struct {
	H, S, L float64
}

// ParseHSL parses values such as "240 6% 7%". Anything after the lightness
// component (e.g. an alpha suffix) is ignored. ok is false when value does not
// start with an HSL triple.
func ParseHSL(value string) (hsl HSL, ok bool) {
	m := hslRe.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return HSL{}, false
	}

	// The pattern guarantees well-formed decimals.
	hsl.H, _ = strconv.ParseFloat(m[1], 64)
	hsl.S, _ = strconv.ParseFloat(m[2], 64)
	hsl.L, _ = strconv.ParseFloat(m[3], 64)
	return hsl, true
}

// Hex returns the color as "#rrggbb".
func (c HSL) Hex() string {
	return HSLToHex(c.H, c.S, c.L)
}

// HSLToHex converts hue (degrees), saturation and lightness (percent) to a
// lowercase "#rrggbb" string. Channels are truncated, not rounded.
func HSLToHex(h, s, l float64) string {
	r, g, b := hlsToRGB(h/360, l/100, s/100)
	return fmt.Sprintf("#%02x%02x%02x", channel(r), channel(g), channel(b))
}

// hlsToRGB takes all components in [0,1]. The float64 conversions prevent
// fused multiply-add so truncated channels are identical on every platform.
func hlsToRGB(h, l, s float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}

	var m2 float64
	if l <= 0.5 {
		m2 = float64(l * (1 + s))
	} else {
		m2 = l + s - float64(l*s)
	}
	m1 := float64(2*l) - m2

	return hueToChannel(m1, m2, h+oneThird), hueToChannel(m1, m2, h), hueToChannel(m1, m2, h-oneThird)
}

func hueToChannel(m1, m2, hue float64) float64 {
	hue = math.Mod(hue, 1)
	if hue < 0 {
		hue += 1
	}

	switch {
	case hue < oneSixth:
		return m1 + float64(float64((m2-m1)*hue)*6)
	case hue < 0.5:
		return m2
	case hue < twoThird:
		return m1 + float64(float64((m2-m1)*(twoThird-hue))*6)
	default:
		return m1
	}
}

func channel(v float64) int {
	n := int(v * 255)
	switch {
	case n < 0:
		return 0
	case n > 255:
		return 255
	}
	return n
}
