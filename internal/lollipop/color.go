package lollipop

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// MaxIntensity is the largest channel value a Color can hold.
const MaxIntensity float32 = 1.0

// ColorBlack is used for outlines and labels.
var ColorBlack = Color{0, 0, 0, 1}

// RGB creates a color from 8-bit RGB values with full alpha.
func RGB(r, g, b uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: 1.0,
	}
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Brighten scales the RGB channels by gain, saturating at MaxIntensity.
// Alpha is left alone.
func (c Color) Brighten(gain float32) Color {
	return Color{
		R: brightenChannel(c.R, gain),
		G: brightenChannel(c.G, gain),
		B: brightenChannel(c.B, gain),
		A: c.A,
	}
}

func brightenChannel(v, gain float32) float32 {
	// Compare against the threshold rather than the product so channels at or
	// above MaxIntensity/gain land on MaxIntensity exactly.
	if gain > 0 && v >= MaxIntensity/gain {
		return MaxIntensity
	}
	return min(MaxIntensity, v*gain)
}

// Axis colors, indexed by Axis.
var (
	axisColorsPos = [3]Color{
		RGB(255, 54, 83),
		RGB(138, 219, 0),
		RGB(44, 142, 254),
	}
	axisColorsNeg = [3]Color{
		RGB(155, 57, 7),
		RGB(98, 137, 34),
		RGB(51, 100, 155),
	}
)

// signThreshold treats tiny negative values as positive so the color does not
// flicker around zero.
const signThreshold = -0.001

// AxisColor returns the color for axis when the signed component is z.
func AxisColor(axis Axis, z float32) Color {
	if z >= signThreshold {
		return axisColorsPos[axis]
	}
	return axisColorsNeg[axis]
}

// FaceColor returns the base (unhovered) color of a face.
func FaceColor(f Face) Color {
	if f.Positive {
		return AxisColor(f.Axis, 1)
	}
	return AxisColor(f.Axis, -1)
}
