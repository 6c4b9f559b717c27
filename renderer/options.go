package renderer

import (
	"github.com/ikskuh/weekend-raytracer/tracer"
)

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of reflection bounces per primary ray.
	MaxDepth uint32

	// Gamma value for the display encoding pass.
	Gamma float32
}

// DefaultOptions returns the built-in render settings.
func DefaultOptions() Options {
	return Options{
		FrameW:   512,
		FrameH:   512,
		MaxDepth: tracer.DefaultMaxDepth,
		Gamma:    2.2,
	}
}
