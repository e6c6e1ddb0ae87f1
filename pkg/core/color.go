package core

import "math"

// Color is an RGBA color. Channels are unbounded; only AddColors floors
// its operands at zero.
type Color struct {
	R, G, B, A float64
}

// NewColor creates a new Color
func NewColor(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Palette
var (
	White        = Color{1.0, 1.0, 1.0, 1.0}
	Black        = Color{0.0, 0.0, 0.0, 1.0}
	DarkGray     = Color{0.2, 0.2, 0.2, 1.0}
	Red          = Color{1.0, 0.0, 0.0, 1.0}
	Green        = Color{0.0, 1.0, 0.0, 1.0}
	Blue         = Color{0.0, 0.0, 1.0, 1.0}
	Cyan         = Color{0.0, 1.0, 1.0, 1.0}
	Magenta      = Color{1.0, 0.0, 1.0, 1.0}
	Yellow       = Color{1.0, 1.0, 0.0, 1.0}
	Orange       = Color{1.0, 0.7, 0.0, 1.0}
	Indigo       = Color{75.0 / 255.0, 0.0, 130.0 / 255.0, 1.0}
	Violet       = Color{143.0 / 255.0, 0.0, 1.0, 1.0}
	YellowOrange = Color{1.0, 0.88, 0.0, 1.0}
	OffWhite     = Color{0.99, 0.99, 0.95, 1.0}
)

// MultiplyColors returns the component-wise product of two colors
func MultiplyColors(one, two Color) Color {
	return Color{
		R: one.R * two.R,
		G: one.G * two.G,
		B: one.B * two.B,
		A: one.A * two.A,
	}
}

// AddColors sums two colors after flooring every channel of both at zero
func AddColors(one, two Color) Color {
	return Color{
		R: math.Max(0, one.R) + math.Max(0, two.R),
		G: math.Max(0, one.G) + math.Max(0, two.G),
		B: math.Max(0, one.B) + math.Max(0, two.B),
		A: math.Max(0, one.A) + math.Max(0, two.A),
	}
}

// AddColors3 is AddColors(AddColors(a, b), c)
func AddColors3(a, b, c Color) Color {
	return AddColors(AddColors(a, b), c)
}

// ScaleColor multiplies every channel by scale
func ScaleColor(scale float64, c Color) Color {
	return Color{
		R: c.R * scale,
		G: c.G * scale,
		B: c.B * scale,
		A: c.A * scale,
	}
}

// Clamp returns a color with channels clamped to [min, max]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
		A: max(minVal, min(maxVal, c.A)),
	}
}
