package render

import (
	"image/color"
	"math"

	"go-endless-runner/internal/config"
)

// HSLToRGBA converts hue, saturation and lightness in [0, 1] to an opaque color.
// Hue wraps, so 1.0 and 0.0 are the same red.
func HSLToRGBA(h, s, l float64) color.RGBA {
	h = h - math.Floor(h)
	if s == 0 {
		v := toByte(l)
		return color.RGBA{R: v, G: v, B: v, A: 255}
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return color.RGBA{
		R: toByte(hueToRGB(p, q, h+1.0/3)),
		G: toByte(hueToRGB(p, q, h)),
		B: toByte(hueToRGB(p, q, h-1.0/3)),
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
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func toByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// BonusColor returns the display color of a bonus with the given hue.
func BonusColor(hue float64) color.RGBA {
	return HSLToRGBA(hue, config.BonusSaturation, config.BonusLightness)
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Fade scales alpha by f in [0, 1], used for distance fog.
func Fade(c color.RGBA, f float64) color.RGBA {
	f = math.Max(0, math.Min(1, f))
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
