package tracer

import (
	"github.com/ikskuh/weekend-raytracer/scene"
	"github.com/ikskuh/weekend-raytracer/types"
)

// The default number of reflection bounces allowed per primary ray.
const DefaultMaxDepth = 10

const (
	// A shadow ray is expected to reach the surface it was cast at; the
	// tiny delta absorbs float imprecision in that comparison.
	shadowBias = 1e-3

	// Reflected rays start slightly off the surface so they cannot
	// immediately re-hit it.
	reflectionBias = 1e-4
)

// Tracer statistics.
type Stats struct {
	// Rays cast into the scene via Trace.
	PrimaryRays uint64

	// Rays cast from a light towards a surface to test for occlusion.
	ShadowRays uint64

	// Rays spawned off reflective surfaces.
	ReflectionRays uint64
}

// A Tracer shades rays cast into a scene.
type Tracer interface {
	// Trace a ray and return the shaded color of the nearest surface.
	// The flag is false if the ray does not hit anything.
	Trace(origin, dir types.Vec3) (types.Color, bool)

	// Retrieve the ray counters accumulated since the last reset.
	Stats() Stats

	// Zero the ray counters.
	ResetStats()
}

// Whitted is a recursive tracer. It shades the nearest surface along a ray
// with an ambient term plus the contribution of each visible point light and
// follows mirror reflections up to MaxDepth bounces.
type Whitted struct {
	// The scene to cast rays against.
	Scene *scene.Scene

	// The number of reflection bounces allowed per primary ray.
	MaxDepth uint32

	// The base lighting term picked up by every lit surface.
	Ambient types.Color

	stats Stats
}

// Create a whitted tracer for the given scene using the default recursion
// budget and ambient term.
func NewWhitted(sc *scene.Scene) *Whitted {
	return &Whitted{
		Scene:    sc,
		MaxDepth: DefaultMaxDepth,
		Ambient:  types.Gray(0.1),
	}
}

// Trace a primary ray through the scene.
func (w *Whitted) Trace(origin, dir types.Vec3) (types.Color, bool) {
	w.stats.PrimaryRays++
	return w.trace(origin, dir, w.MaxDepth)
}

// trace shades the nearest surface along the ray. budget is the number of
// reflection bounces this ray may still spawn.
func (w *Whitted) trace(origin, dir types.Vec3, budget uint32) (types.Color, bool) {
	hit, ok := w.Scene.Intersect(origin, dir)
	if !ok {
		return types.Color{}, false
	}

	color := hit.Material.Albedo
	if color.Brightness() > 0 {
		color = color.Mul(w.lighting(hit))
	}

	if budget > 0 && hit.Material.Reflectivity > 0 {
		reflDir := dir.Reflect(hit.Normal)
		reflOrigin := hit.Position.Add(reflDir.Mul(reflectionBias))

		w.stats.ReflectionRays++
		if reflected, ok := w.trace(reflOrigin, reflDir, budget-1); ok {
			color = color.Add(reflected)
		}
	}

	return color, true
}

// lighting sums the ambient term and each light's falloff-scaled color at
// the hit point. Occluded lights contribute nothing. The occlusion ray runs
// from the light towards the surface; a blocker must sit strictly between
// the two.
func (w *Whitted) lighting(hit scene.Intersection) types.Color {
	lighting := w.Ambient
	for _, light := range w.Scene.Lights {
		delta := hit.Position.Sub(light.Position)
		distance := delta.Len()

		w.stats.ShadowRays++
		if blocker, ok := w.Scene.Intersect(light.Position, delta.Normalize()); ok {
			if blocker.Distance < distance-shadowBias {
				continue
			}
		}

		lighting = lighting.Add(light.Color.Scale(light.Power / distance))
	}
	return lighting
}

// Retrieve the ray counters accumulated since the last reset.
func (w *Whitted) Stats() Stats {
	return w.stats
}

// Zero the ray counters. Called before rendering a new frame.
func (w *Whitted) ResetStats() {
	w.stats = Stats{}
}
