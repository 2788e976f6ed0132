package chipview

import "image/color"

// RGBA represents a display tint with red, green, blue, and alpha
// components. Each component is in the range [0, 1].
//
// The tint is presentation state only: the GUI layer multiplies it into the
// drawn quad. It never changes the bytes uploaded to the texture.
type RGBA struct {
	R, G, B, A float64
}

// DefaultTint is the phosphor-green tint applied to the display when no
// other tint is configured.
var DefaultTint = RGBA{R: 0.19, G: 0.66, B: 0.38, A: 1.0}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBAFrom8 creates a color from 8-bit channel values.
func RGBAFrom8(r, g, b, a uint8) RGBA {
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// Array returns the color as four float32 components in RGBA order, the
// layout GUI frameworks expect for per-draw tinting.
func (c RGBA) Array() [4]float32 {
	return [4]float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
