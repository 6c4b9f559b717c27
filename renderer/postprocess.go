package renderer

import (
	"github.com/chewxy/math32"

	"github.com/ikskuh/weekend-raytracer/types"
)

// A PixelOp transforms a single framebuffer pixel.
type PixelOp func(types.Color) types.Color

// Gamma returns a pixel op that encodes linear colors for display using the
// given gamma value.
func Gamma(gamma float32) PixelOp {
	inv := 1 / gamma
	return func(c types.Color) types.Color {
		return types.RGB(
			math32.Pow(c[0], inv),
			math32.Pow(c[1], inv),
			math32.Pow(c[2], inv),
		)
	}
}

// Reinhard returns a tone mapping pixel op that compresses unbounded colors
// into [0, 1).
func Reinhard() PixelOp {
	return func(c types.Color) types.Color {
		return c.Div(c.Add(types.Gray(1)))
	}
}

// Exposure returns a tone mapping pixel op that compresses unbounded colors
// into [0, 1) with an adjustable exposure value.
func Exposure(exposure float32) PixelOp {
	return func(c types.Color) types.Color {
		return types.Gray(1).Sub(types.RGB(
			math32.Exp(-c[0]*exposure),
			math32.Exp(-c[1]*exposure),
			math32.Exp(-c[2]*exposure),
		))
	}
}
