package renderer

import (
	"github.com/ikskuh/weekend-raytracer/types"
)

// A Framebuffer holds one rendered frame as unclamped linear colors, stored
// in row major order.
type Framebuffer struct {
	width  uint32
	height uint32
	pixels []types.Color
}

func NewFramebuffer(width, height uint32) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]types.Color, width*height),
	}
}

// Frame width in pixels.
func (fb *Framebuffer) Width() uint32 {
	return fb.width
}

// Frame height in pixels.
func (fb *Framebuffer) Height() uint32 {
	return fb.height
}

// Get the color of the pixel at (x, y).
func (fb *Framebuffer) At(x, y uint32) types.Color {
	return fb.pixels[y*fb.width+x]
}

// Set the color of the pixel at (x, y).
func (fb *Framebuffer) Set(x, y uint32, color types.Color) {
	fb.pixels[y*fb.width+x] = color
}

// Fill every pixel with the given color.
func (fb *Framebuffer) Clear(color types.Color) {
	for index := range fb.pixels {
		fb.pixels[index] = color
	}
}

// Run a pixel op over every pixel, in place.
func (fb *Framebuffer) Apply(op PixelOp) {
	for index, color := range fb.pixels {
		fb.pixels[index] = op(color)
	}
}
