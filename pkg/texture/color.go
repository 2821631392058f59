package texture

import (
	"image/color"
	"math"
)

// Theme is a small HSL color scheme: a base hue plus the saturation and
// lightness the generator samples around. It plays the role the teacher's
// genre-keyed ColorScheme plays, without the genre registry lookup.
type Theme struct {
	BaseHue    float64
	Saturation float64
	Lightness  float64
}

// DefaultTheme is a cool stone-and-moss scheme suitable for a generic
// dungeon; callers can supply their own to NewGenerator.
func DefaultTheme() Theme {
	return Theme{BaseHue: 200, Saturation: 0.18, Lightness: 0.32}
}

// hslToColor converts a hue in degrees plus saturation/lightness in [0,1]
// into an opaque RGBA color.
func hslToColor(h, s, l float64) color.RGBA {
	h = math.Mod(h, 360) / 360

	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToRGB(p, q, h+1.0/3.0)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3.0)
	}

	return color.RGBA{
		R: uint8(clamp(r*255, 0, 255)),
		G: uint8(clamp(g*255, 0, 255)),
		B: uint8(clamp(b*255, 0, 255)),
		A: 255,
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// harmonyHue returns the hue offsetDegrees away from base, wrapped into
// [0,360) — the single-neighbour case of the teacher palette generator's
// getHarmonyHues, used here to derive the door wood-grain hue from the
// theme's base hue instead of a multi-color harmony scheme.
func harmonyHue(base, offsetDegrees float64) float64 {
	return math.Mod(base+offsetDegrees+360, 360)
}

func darkenColor(c color.RGBA, amount float64) color.RGBA {
	factor := 1.0 - amount
	return color.RGBA{
		R: uint8(clamp(float64(c.R)*factor, 0, 255)),
		G: uint8(clamp(float64(c.G)*factor, 0, 255)),
		B: uint8(clamp(float64(c.B)*factor, 0, 255)),
		A: c.A,
	}
}

func lightenColor(c color.RGBA, amount float64) color.RGBA {
	factor := 1.0 + amount
	return color.RGBA{
		R: uint8(clamp(float64(c.R)*factor, 0, 255)),
		G: uint8(clamp(float64(c.G)*factor, 0, 255)),
		B: uint8(clamp(float64(c.B)*factor, 0, 255)),
		A: c.A,
	}
}
