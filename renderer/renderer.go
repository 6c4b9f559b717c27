package renderer

import (
	"time"

	"github.com/ikskuh/weekend-raytracer/scene"
	"github.com/ikskuh/weekend-raytracer/tracer"
	"github.com/ikskuh/weekend-raytracer/types"
)

// A Renderer drives a tracer over every pixel of a frame and applies the
// display encoding to the result. Pixels are traced one at a time in raster
// order, so repeated renders of the same scene produce identical frames.
type Renderer struct {
	scene   *scene.Scene
	tracer  tracer.Tracer
	options Options
	frame   *Framebuffer
	stats   FrameStats
}

// Create a renderer for the given scene. The scene must carry a camera and
// the options must describe a frame of at least 2x2 pixels.
func New(sc *scene.Scene, opts Options) (*Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera == nil {
		return nil, ErrCameraNotDefined
	}
	// The screen space mapping divides by dim-1.
	if opts.FrameW < 2 || opts.FrameH < 2 {
		return nil, ErrFrameTooSmall
	}
	if opts.Gamma <= 0 {
		return nil, ErrInvalidGamma
	}

	whitted := tracer.NewWhitted(sc)
	whitted.MaxDepth = opts.MaxDepth

	return &Renderer{
		scene:   sc,
		tracer:  whitted,
		options: opts,
		frame:   NewFramebuffer(opts.FrameW, opts.FrameH),
	}, nil
}

// Render traces one frame and returns the framebuffer holding it. The
// buffer is owned by the renderer and reused across calls.
func (r *Renderer) Render() *Framebuffer {
	start := time.Now()
	r.tracer.ResetStats()
	r.frame.Clear(types.Gray(0))

	camera := r.scene.Camera
	lastX := float32(r.options.FrameW - 1)
	lastY := float32(r.options.FrameH - 1)

	for y := uint32(0); y < r.options.FrameH; y++ {
		sy := 1 - 2*float32(y)/lastY
		for x := uint32(0); x < r.options.FrameW; x++ {
			sx := 2*float32(x)/lastX - 1

			// Escaped rays leave the cleared black pixel in place.
			if color, ok := r.tracer.Trace(camera.Position, camera.ProjectRay(sx, sy)); ok {
				r.frame.Set(x, y, color)
			}
		}
	}

	r.frame.Apply(Gamma(r.options.Gamma))

	tracerStats := r.tracer.Stats()
	r.stats = FrameStats{
		PrimaryRays:    tracerStats.PrimaryRays,
		ShadowRays:     tracerStats.ShadowRays,
		ReflectionRays: tracerStats.ReflectionRays,
		RenderTime:     time.Since(start),
	}

	return r.frame
}

// Retrieve statistics for the most recently rendered frame.
func (r *Renderer) Stats() FrameStats {
	return r.stats
}
