package types

import "golang.org/x/image/math/f32"

// A linear RGB triple. Channels are not clamped: the lighting sum may push
// values above 1 (or below 0 after subtraction) and the output writers clamp
// only at quantization time.
type Color f32.Vec3

// Define a color from individual channels.
func RGB(r, g, b float32) Color {
	return Color{r, g, b}
}

// Define a gray color with all channels set to w.
func Gray(w float32) Color {
	return Color{w, w, w}
}

// Add a color channel-wise.
func (c Color) Add(c2 Color) Color {
	return Color{c[0] + c2[0], c[1] + c2[1], c[2] + c2[2]}
}

// Subtract a color channel-wise.
func (c Color) Sub(c2 Color) Color {
	return Color{c[0] - c2[0], c[1] - c2[1], c[2] - c2[2]}
}

// Multiply two colors channel-wise.
func (c Color) Mul(c2 Color) Color {
	return Color{c[0] * c2[0], c[1] * c2[1], c[2] * c2[2]}
}

// Divide two colors channel-wise.
func (c Color) Div(c2 Color) Color {
	return Color{c[0] / c2[0], c[1] / c2[1], c[2] / c2[2]}
}

// Scale all channels with a scalar.
func (c Color) Scale(s float32) Color {
	return Color{c[0] * s, c[1] * s, c[2] * s}
}

// Perceived brightness of the color (BT.601 luma weights).
func (c Color) Brightness() float32 {
	return 0.299*c[0] + 0.587*c[1] + 0.114*c[2]
}
