package scene

import "github.com/ikskuh/weekend-raytracer/types"

// A point light emitting uniformly in all directions. Its contribution to a
// surface is Color * (Power / distance); the falloff is linear in distance,
// not quadratic.
type PointLight struct {
	Position types.Vec3
	Power    float32
	Color    types.Color
}
