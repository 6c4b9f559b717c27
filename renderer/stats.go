package renderer

import "time"

type FrameStats struct {
	// Rays cast by the tracer, grouped by kind.
	PrimaryRays    uint64
	ShadowRays     uint64
	ReflectionRays uint64

	// Total render time for entire frame.
	RenderTime time.Duration
}
